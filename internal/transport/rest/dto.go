package rest

import "encoding/json"

// SearchRequest is the wire form of a search call. Absent options are
// omitted so the service applies its own defaults.
type SearchRequest struct {
	Search  *string  `json:"search,omitempty"`
	Filter  *string  `json:"filter,omitempty"`
	OrderBy []string `json:"orderby,omitempty"`
	Skip    *int     `json:"skip,omitempty"`
	Top     *int     `json:"top,omitempty"`
	Facets  []string `json:"facets,omitempty"`
	Count   bool     `json:"count,omitempty"`
}

// Entry is one search hit: the document payload plus per-hit metadata.
type Entry struct {
	Score    float64         `json:"score"`
	Document json.RawMessage `json:"document"`
}

// FacetBucket is one value bucket of a facet aggregation. Value is a
// string, number or bool depending on the faceted field.
type FacetBucket struct {
	Value any   `json:"value"`
	Count int64 `json:"count"`
}

// Envelope is the service's search response.
type Envelope struct {
	Results []Entry                  `json:"results"`
	Count   *int64                   `json:"count,omitempty"`
	Facets  map[string][]FacetBucket `json:"facets,omitempty"`
}
