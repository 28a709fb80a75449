package quaero

// Index is a typed handle on one index of the search service. T is the
// caller's document shape; payloads are decoded into it after shaping.
type Index[T any] struct {
	name   string
	client *Client
}

// NewIndex creates a typed index handle for the given index name.
func NewIndex[T any](client *Client, name string) *Index[T] {
	return &Index[T]{name: name, client: client}
}

// Name returns the index name.
func (idx *Index[T]) Name() string { return idx.name }

// Search returns a fluent search builder for this index.
func (idx *Index[T]) Search() *SearchBuilder[T] {
	return &SearchBuilder[T]{idx: idx, q: NewQuery()}
}

// Page is a typed page of search results.
type Page[T any] struct {
	Items      []T
	Facets     map[string][]string
	TotalCount *int64
}
