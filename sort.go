package quaero

import "github.com/twpayne/go-geom"

// geoSortField is the service's canonical geo field for distance sorting.
const geoSortField = "Geo"

// Direction orders a sort key.
type Direction int

// Sort directions, rendered as asc/desc.
const (
	Ascending Direction = iota
	Descending
)

func (d Direction) token() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (d Direction) String() string { return d.token() }

// SortKey is a single order-by key: either a field sort or a geo-distance
// sort. The remote service applies keys in the given order as a tie-break
// chain, so lists of keys compile in order.
type SortKey struct {
	field string
	point geom.Coord // nil for plain field sorts
	dir   Direction
}

// ByField sorts on a field's stored value.
func ByField(field string, dir Direction) SortKey {
	return SortKey{field: field, dir: dir}
}

// ByDistance sorts on geodesic distance from point ({lon, lat}) using the
// service's canonical geo field.
func ByDistance(point geom.Coord, dir Direction) SortKey {
	return ByDistanceField(geoSortField, point, dir)
}

// ByDistanceField is ByDistance with an explicit geo field name, for
// indexes carrying more than one geo field.
func ByDistanceField(field string, point geom.Coord, dir Direction) SortKey {
	return SortKey{field: field, point: point, dir: dir}
}

// Compile renders the order-by fragment. It is total and pure.
func (k SortKey) Compile() string {
	if k.point != nil {
		return "geo.distance(" + k.field + ", " + wktPoint(k.point) + ") " + k.dir.token()
	}
	return k.field + " " + k.dir.token()
}

// compileSortKeys renders keys in order, order preserved exactly.
func compileSortKeys(keys []SortKey) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.Compile()
	}
	return out
}
