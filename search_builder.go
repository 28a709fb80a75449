package quaero

import (
	"context"
	"fmt"
)

// SearchBuilder is a fluent builder for typed search queries. It wraps a
// QueryBuilder and decodes the shaped response into T.
type SearchBuilder[T any] struct {
	idx *Index[T]
	q   *QueryBuilder
}

// Query sets the free-text query.
func (b *SearchBuilder[T]) Query(text string) *SearchBuilder[T] {
	b.q.FullText(text)
	return b
}

// Filter sets the filter predicate, replacing any previous one.
func (b *SearchBuilder[T]) Filter(f Filter) *SearchBuilder[T] {
	b.q.Filter(f)
	return b
}

// OrderBy sets the sort keys, applied in the given order.
func (b *SearchBuilder[T]) OrderBy(keys ...SortKey) *SearchBuilder[T] {
	b.q.OrderBy(keys...)
	return b
}

// Skip sets the paging offset.
func (b *SearchBuilder[T]) Skip(n int) *SearchBuilder[T] {
	b.q.Skip(n)
	return b
}

// Top sets the page size bound.
func (b *SearchBuilder[T]) Top(n int) *SearchBuilder[T] {
	b.q.Top(n)
	return b
}

// Facets selects the fields to facet on.
func (b *SearchBuilder[T]) Facets(fields ...string) *SearchBuilder[T] {
	b.q.Facets(fields...)
	return b
}

// WithTotalCount asks the service to report the total hit count.
func (b *SearchBuilder[T]) WithTotalCount() *SearchBuilder[T] {
	b.q.IncludeTotalCount()
	return b
}

// Do executes the search and returns a typed page.
func (b *SearchBuilder[T]) Do(ctx context.Context) (*Page[T], error) {
	resp, err := b.idx.client.Search(b.idx.name).Do(ctx, b.q.Build())
	if err != nil {
		return nil, err
	}
	items, err := Documents[T](resp)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", b.idx.name, err)
	}
	return &Page[T]{
		Items:      items,
		Facets:     resp.Facets,
		TotalCount: resp.TotalCount,
	}, nil
}
