package quaero

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/twpayne/go-geom"
)

// Comparison is a filter comparison operator.
type Comparison int

// Comparison operators, rendered as their two-letter filter-language tokens.
const (
	Eq Comparison = iota // eq
	Ne                   // ne
	Gt                   // gt
	Lt                   // lt
	Ge                   // ge
	Le                   // le
)

// token returns the operator token used in compiled expressions.
func (c Comparison) token() string {
	switch c {
	case Eq:
		return "eq"
	case Ne:
		return "ne"
	case Gt:
		return "gt"
	case Lt:
		return "lt"
	case Ge:
		return "ge"
	case Le:
		return "le"
	default:
		panic(fmt.Sprintf("quaero: unknown comparison %d", int(c)))
	}
}

func (c Comparison) String() string { return c.token() }

// Literal is a comparison operand in a field filter.
// A nil Literal makes the comparison a no-op: the filter compiles to "true".
type Literal interface {
	render() string
}

type textLiteral string

// Embedded single quotes are doubled, the filter language's escape form.
func (l textLiteral) render() string {
	return "'" + strings.ReplaceAll(string(l), "'", "''") + "'"
}

type numberLiteral float64

// Minimal form: integers without a decimal point, floats with full precision.
func (l numberLiteral) render() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

type boolLiteral bool

func (l boolLiteral) render() string { return strconv.FormatBool(bool(l)) }

type timeLiteral time.Time

func (l timeLiteral) render() string {
	return time.Time(l).UTC().Format(time.RFC3339)
}

// Text creates a string literal. It renders single-quoted with embedded
// quotes doubled.
func Text(v string) Literal { return textLiteral(v) }

// Number creates a numeric literal.
func Number(v float64) Literal { return numberLiteral(v) }

// Bool creates a boolean literal.
func Bool(v bool) Literal { return boolLiteral(v) }

// Time creates a timestamp literal, rendered as unquoted RFC 3339 in UTC.
func Time(v time.Time) Literal { return timeLiteral(v) }

// Filter is a boolean predicate over indexed fields. Filters are immutable
// values built with Where, WhereGeoDistance, And, Or and Combine; Compile
// renders the predicate in the service's filter language.
//
// Compilation inserts no parentheses: operator grouping is exactly the
// nesting shape of the filter as constructed.
type Filter interface {
	// Compile renders the predicate. It is total and pure.
	Compile() string

	filterNode()
}

type fieldFilter struct {
	field string
	cmp   Comparison
	value Literal // nil means the filter is the identity and compiles to "true"
}

func (f fieldFilter) filterNode() {}

func (f fieldFilter) Compile() string {
	if f.value == nil {
		return "true"
	}
	return f.field + " " + f.cmp.token() + " " + f.value.render()
}

type geoDistanceFilter struct {
	field      string
	point      geom.Coord // {lon, lat}, WKT axis order
	cmp        Comparison
	distanceKm float64
}

func (f geoDistanceFilter) filterNode() {}

func (f geoDistanceFilter) Compile() string {
	return fmt.Sprintf("geo.distance(%s, %s) %s %f",
		f.field, wktPoint(f.point), f.cmp.token(), f.distanceKm)
}

type binaryFilter struct {
	left  Filter
	op    string // "and" or "or"
	right Filter
}

func (f binaryFilter) filterNode() {}

func (f binaryFilter) Compile() string {
	return f.left.Compile() + " " + f.op + " " + f.right.Compile()
}

// wktPoint renders a geography point literal with fixed six-digit
// fractional precision, matching the service's coordinate precision.
func wktPoint(p geom.Coord) string {
	return fmt.Sprintf("geography'POINT(%f %f)'", p.X(), p.Y())
}

// Where creates a single field comparison filter. A nil value yields the
// identity filter, which compiles to "true" regardless of field and
// comparison. An empty field name with a present value is a programming
// error and panics.
func Where(field string, cmp Comparison, value Literal) Filter {
	if field == "" && value != nil {
		panic("quaero: filter field name is required")
	}
	return fieldFilter{field: field, cmp: cmp, value: value}
}

// WhereEq creates an equality filter, shorthand for Where(field, Eq, value).
func WhereEq(field string, value Literal) Filter {
	return Where(field, Eq, value)
}

// WhereGeoDistance creates a filter on the geodesic distance in kilometers
// between the field's stored point and point ({lon, lat}).
func WhereGeoDistance(field string, point geom.Coord, cmp Comparison, distanceKm float64) Filter {
	if field == "" {
		panic("quaero: filter field name is required")
	}
	return geoDistanceFilter{field: field, point: point, cmp: cmp, distanceKm: distanceKm}
}

// And combines two filters with the and operator.
func And(a, b Filter) Filter { return binaryFilter{left: a, op: "and", right: b} }

// Or combines two filters with the or operator.
func Or(a, b Filter) Filter { return binaryFilter{left: a, op: "or", right: b} }

// MatchAll returns the identity filter. It compiles to "true" and is the
// seed for Combine.
func MatchAll() Filter { return fieldFilter{} }

// Combine AND-folds filters left to right, seeded with MatchAll. The result
// compiles to "true and f1 and ... and fn"; with no filters it compiles to
// "true". The leading "true and" is kept so that combining is a plain fold
// with a fixed seed.
func Combine(filters ...Filter) Filter {
	combined := MatchAll()
	for _, f := range filters {
		combined = And(combined, f)
	}
	return combined
}
