package quaero

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/quaero-io/quaero/internal/transport/rest"
)

// Response is the shaped outcome of a search call: ordered document
// payloads, flattened facet labels, and the optional total hit count.
type Response struct {
	// Documents holds the raw document payloads in result order.
	// Per-hit metadata such as the relevance score is dropped here.
	Documents []json.RawMessage

	// Facets maps each faceted field to its value labels in the order the
	// service returned them. Empty (never nil) when the service computed
	// no facets.
	Facets map[string][]string

	// TotalCount is the total hit count, present only when the request
	// asked for it via IncludeTotalCount.
	TotalCount *int64
}

// Documents decodes the response's document payloads into a typed slice.
func Documents[T any](resp *Response) ([]T, error) {
	out := make([]T, len(resp.Documents))
	for i, raw := range resp.Documents {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return nil, fmt.Errorf("decode document %d: %w", i, err)
		}
	}
	return out, nil
}

// SearchService executes search queries against a single index.
type SearchService struct {
	index  string
	client *Client
}

// Do executes the request and shapes the service's response. Remote
// failures surface as *ServiceError (service-side) or wrapped transport
// errors, uninterpreted.
func (s *SearchService) Do(ctx context.Context, req Request) (resp *Response, err error) {
	start := time.Now()
	defer func() { s.client.obs.observe("search", s.index, start, err) }()

	env, err := s.client.rest.Search(ctx, s.index, toWireRequest(req))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", s.index, err)
	}
	return shapeResponse(env), nil
}

func toWireRequest(req Request) rest.SearchRequest {
	var wire rest.SearchRequest
	if text, found := req.FullText(); found {
		wire.Search = &text
	}
	if filter, found := req.Filter(); found {
		wire.Filter = &filter
	}
	wire.OrderBy = req.OrderBy()
	if skip, found := req.Skip(); found {
		wire.Skip = &skip
	}
	if top, found := req.Top(); found {
		wire.Top = &top
	}
	wire.Facets = req.Facets()
	wire.Count = req.IncludeTotalCount()
	return wire
}

// shapeResponse projects the wire envelope to the three decoupled outputs.
// An absent facet section yields an empty map and an absent count stays
// absent; neither is an error.
func shapeResponse(env *rest.Envelope) *Response {
	docs := make([]json.RawMessage, len(env.Results))
	for i := range env.Results {
		docs[i] = env.Results[i].Document
	}

	facets := make(map[string][]string, len(env.Facets))
	for field, buckets := range env.Facets {
		labels := make([]string, len(buckets))
		for i, b := range buckets {
			labels[i] = facetLabel(b.Value)
		}
		facets[field] = labels
	}

	return &Response{
		Documents:  docs,
		Facets:     facets,
		TotalCount: env.Count,
	}
}

// facetLabel flattens a bucket value to its string representation. JSON
// numbers arrive as float64; integral values render without a decimal
// point.
func facetLabel(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
