package quaero

import "fmt"

// Request is an immutable, fully assembled description of a single search
// call, independent of transport. Build one with a QueryBuilder; a built
// Request is a plain value safe to hand to any number of concurrent
// searches.
type Request struct {
	fullText  string
	hasText   bool
	filter    string
	hasFilter bool
	orderBy   []string
	skip      int
	hasSkip   bool
	top       int
	hasTop    bool
	facets    []string
	withCount bool
}

// FullText returns the free-text query, if one was set. When absent the
// remote service applies its match-all semantics.
func (r Request) FullText() (string, bool) { return r.fullText, r.hasText }

// Filter returns the compiled filter string, if a filter was set.
func (r Request) Filter() (string, bool) { return r.filter, r.hasFilter }

// OrderBy returns the compiled sort fragments in application order.
func (r Request) OrderBy() []string {
	return append([]string(nil), r.orderBy...)
}

// Skip returns the paging offset, if one was set.
func (r Request) Skip() (int, bool) { return r.skip, r.hasSkip }

// Top returns the page size bound, if one was set.
func (r Request) Top() (int, bool) { return r.top, r.hasTop }

// Facets returns the facet field names in the order given, duplicates
// preserved.
func (r Request) Facets() []string {
	return append([]string(nil), r.facets...)
}

// IncludeTotalCount reports whether the service should compute the total
// hit count.
func (r Request) IncludeTotalCount() bool { return r.withCount }

// QueryBuilder accumulates search options into a Request. Every setter
// returns the builder for chaining and overwrites any previous value; no
// setter combines with earlier calls. The builder performs no validation
// beyond setter contracts — conflicting or nonsensical combinations are
// forwarded as-is, the remote service is authoritative.
//
// A builder is not safe for concurrent mutation; use one per query.
type QueryBuilder struct {
	req Request
}

// NewQuery creates an empty query builder.
func NewQuery() *QueryBuilder { return &QueryBuilder{} }

// FullText sets the free-text query.
func (b *QueryBuilder) FullText(text string) *QueryBuilder {
	b.req.fullText = text
	b.req.hasText = true
	return b
}

// Filter compiles f and stores the filter string. Calling it again
// replaces the previous filter.
func (b *QueryBuilder) Filter(f Filter) *QueryBuilder {
	b.req.filter = f.Compile()
	b.req.hasFilter = true
	return b
}

// OrderBy compiles keys in order and stores the sort fragments.
func (b *QueryBuilder) OrderBy(keys ...SortKey) *QueryBuilder {
	b.req.orderBy = compileSortKeys(keys)
	return b
}

// Skip sets the paging offset. Negative values are a programming error and
// panic; no upper bound is enforced locally.
func (b *QueryBuilder) Skip(n int) *QueryBuilder {
	if n < 0 {
		panic(fmt.Sprintf("quaero: skip must be non-negative, got %d", n))
	}
	b.req.skip = n
	b.req.hasSkip = true
	return b
}

// Top sets the page size bound. Negative values panic; zero is forwarded
// as-is.
func (b *QueryBuilder) Top(n int) *QueryBuilder {
	if n < 0 {
		panic(fmt.Sprintf("quaero: top must be non-negative, got %d", n))
	}
	b.req.top = n
	b.req.hasTop = true
	return b
}

// Facets stores the facet field list verbatim, order preserved, duplicates
// allowed.
func (b *QueryBuilder) Facets(fields ...string) *QueryBuilder {
	b.req.facets = append([]string(nil), fields...)
	return b
}

// IncludeTotalCount asks the service to report the total hit count. There
// is no corresponding unset; the default is off.
func (b *QueryBuilder) IncludeTotalCount() *QueryBuilder {
	b.req.withCount = true
	return b
}

// Build returns the accumulated Request. It is a pure projection of the
// builder state: calling it repeatedly without intervening setters yields
// structurally equal values, and later builder mutation does not affect
// requests already built.
func (b *QueryBuilder) Build() Request {
	req := b.req
	req.orderBy = append([]string(nil), b.req.orderBy...)
	req.facets = append([]string(nil), b.req.facets...)
	return req
}
