package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

// apiKeyHeader carries the access credential on every request.
const apiKeyHeader = "api-key"

// Client is a thin HTTP client for the search service's docs/search
// endpoint. It does not retry and does not interpret service-side errors
// beyond surfacing them as *ServiceError.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// New creates a transport client for the given service endpoint. A nil
// httpClient gets a default with a 30s timeout.
func New(endpoint, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     httpClient,
	}
}

// ServiceError is a non-2xx response from the search service.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("search service: %s (status %d)", e.Message, e.StatusCode)
}

// Search POSTs the request to /indexes/{index}/docs/search and decodes the
// response envelope.
func (c *Client) Search(ctx context.Context, index string, req SearchRequest) (*Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	u := c.endpoint + "/indexes/" + url.PathEscape(index) + "/docs/search"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, readServiceError(resp)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &env, nil
}

// readServiceError extracts the service's error message when the body is
// the usual {"error": {"message": ...}} shape, falling back to the raw
// body or the status text.
func readServiceError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(data))
	var wire struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(data, &wire) == nil && wire.Error.Message != "" {
		msg = wire.Error.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &ServiceError{StatusCode: resp.StatusCode, Message: msg}
}
