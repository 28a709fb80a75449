// Package quaero is a Go client for an OData-style full-text/geo search
// service. It models search requests as typed, composable values — a
// filter predicate AST, sort keys, paging, facets, free text — and
// compiles them into the textual filter and order-by fragments the
// service expects.
//
// # Building queries
//
//	filter := quaero.And(
//	    quaero.Where("Age", quaero.Ge, quaero.Number(18)),
//	    quaero.WhereEq("Town", quaero.Text("London")),
//	)
//	req := quaero.NewQuery().
//	    FullText("coffee").
//	    Filter(filter).
//	    OrderBy(quaero.ByField("Age", quaero.Descending)).
//	    Skip(10).Top(5).
//	    Facets("Town").
//	    IncludeTotalCount().
//	    Build()
//
// Filters compile with no implicit parenthesization: grouping is exactly
// the nesting of And/Or as constructed. A Where with a nil value is the
// identity filter and compiles to "true"; Combine AND-folds a list of
// filters over that identity.
//
// # Executing searches
//
//	client, _ := quaero.New("https://search.example.com",
//	    quaero.WithAPIKey(key),
//	)
//	resp, _ := client.Search("people").Do(ctx, req)
//
// Or typed, via the generic index handle:
//
//	type Person struct {
//	    Name string `json:"Name"`
//	    Age  int    `json:"Age"`
//	}
//
//	idx := quaero.NewIndex[Person](client, "people")
//	page, _ := idx.Search().
//	    Query("coffee").
//	    Filter(quaero.WhereEq("Town", quaero.Text("London"))).
//	    Top(5).
//	    Do(ctx)
package quaero
