package quaero

import (
	"errors"
	"net/http"
	"time"

	"github.com/quaero-io/quaero/internal/transport/rest"
)

// Client is the quaero SDK entry point: a handle on one search service
// endpoint. A Client is safe for concurrent use.
type Client struct {
	rest *rest.Client
	obs  *observer
}

// New creates a Client for the given service endpoint, e.g.
// "https://search.example.com". Credentials and transport behavior are
// configured through options.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("quaero: service endpoint required")
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		timeout := cfg.timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		rest: rest.New(endpoint, cfg.apiKey, httpClient),
		obs:  obs,
	}, nil
}

// Search returns the search service for a given index.
func (c *Client) Search(index string) *SearchService {
	return &SearchService{index: index, client: c}
}
