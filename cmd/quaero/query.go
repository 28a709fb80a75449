package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quaero-io/quaero"
)

// parseWhere turns a "Field op value" clause into a filter. The value is
// typed by shape: numbers become numeric literals, true/false become
// booleans, everything else is text.
func parseWhere(clause string) (quaero.Filter, error) {
	parts := strings.SplitN(strings.TrimSpace(clause), " ", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("where clause %q: want \"Field op value\"", clause)
	}

	cmp, err := parseComparison(parts[1])
	if err != nil {
		return nil, fmt.Errorf("where clause %q: %w", clause, err)
	}

	return quaero.Where(parts[0], cmp, parseLiteral(parts[2])), nil
}

func parseComparison(token string) (quaero.Comparison, error) {
	switch token {
	case "eq":
		return quaero.Eq, nil
	case "ne":
		return quaero.Ne, nil
	case "gt":
		return quaero.Gt, nil
	case "lt":
		return quaero.Lt, nil
	case "ge":
		return quaero.Ge, nil
	case "le":
		return quaero.Le, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", token)
	}
}

func parseLiteral(token string) quaero.Literal {
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return quaero.Number(n)
	}
	if b, err := strconv.ParseBool(token); err == nil {
		return quaero.Bool(b)
	}
	return quaero.Text(strings.Trim(token, "'"))
}

// parseOrderBy turns a "Field [asc|desc]" clause into a sort key.
// Direction defaults to ascending.
func parseOrderBy(clause string) (quaero.SortKey, error) {
	parts := strings.Fields(clause)
	switch len(parts) {
	case 1:
		return quaero.ByField(parts[0], quaero.Ascending), nil
	case 2:
		switch parts[1] {
		case "asc":
			return quaero.ByField(parts[0], quaero.Ascending), nil
		case "desc":
			return quaero.ByField(parts[0], quaero.Descending), nil
		default:
			return quaero.SortKey{}, fmt.Errorf("order-by %q: direction must be asc or desc", clause)
		}
	default:
		return quaero.SortKey{}, fmt.Errorf("order-by %q: want \"Field [asc|desc]\"", clause)
	}
}

// buildRequest assembles the query from the search command's flags.
func buildRequest(opts searchOptions) (quaero.Request, error) {
	b := quaero.NewQuery()

	if opts.query != "" {
		b.FullText(opts.query)
	}
	if len(opts.where) > 0 {
		filters := make([]quaero.Filter, len(opts.where))
		for i, clause := range opts.where {
			f, err := parseWhere(clause)
			if err != nil {
				return quaero.Request{}, err
			}
			filters[i] = f
		}
		b.Filter(quaero.Combine(filters...))
	}
	if len(opts.orderBy) > 0 {
		keys := make([]quaero.SortKey, len(opts.orderBy))
		for i, clause := range opts.orderBy {
			k, err := parseOrderBy(clause)
			if err != nil {
				return quaero.Request{}, err
			}
			keys[i] = k
		}
		b.OrderBy(keys...)
	}
	if opts.skip >= 0 {
		b.Skip(opts.skip)
	}
	if opts.top >= 0 {
		b.Top(opts.top)
	}
	if len(opts.facets) > 0 {
		b.Facets(opts.facets...)
	}
	if opts.count {
		b.IncludeTotalCount()
	}

	return b.Build(), nil
}
