package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestClient_Search(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody SearchRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(Envelope{
			Results: []Entry{{Score: 1, Document: json.RawMessage(`{"a":1}`)}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "key-123", nil)
	env, err := c.Search(context.Background(), "my-index", SearchRequest{
		Search: strPtr("coffee"),
		Filter: strPtr("Age ge 18"),
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if gotPath != "/indexes/my-index/docs/search" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "key-123" {
		t.Errorf("api-key = %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("content-type = %q", gotContentType)
	}
	if gotBody.Search == nil || *gotBody.Search != "coffee" {
		t.Errorf("body search = %v", gotBody.Search)
	}
	if len(env.Results) != 1 || string(env.Results[0].Document) != `{"a":1}` {
		t.Errorf("envelope = %+v", env)
	}
}

func TestClient_NoAPIKeyHeaderWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.Header["Api-Key"]; present {
			t.Error("api-key header sent without credential")
		}
		_ = json.NewEncoder(w).Encode(Envelope{})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	if _, err := c.Search(context.Background(), "idx", SearchRequest{}); err != nil {
		t.Fatalf("search: %v", err)
	}
}

func TestClient_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad filter"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	_, err := c.Search(context.Background(), "idx", SearchRequest{})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.StatusCode != http.StatusBadRequest || svcErr.Message != "bad filter" {
		t.Errorf("svcErr = %+v", svcErr)
	}
}

func TestClient_ServiceErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	_, err := c.Search(context.Background(), "idx", SearchRequest{})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.Message != "upstream exploded" {
		t.Errorf("message = %q", svcErr.Message)
	}
}

func TestClient_ServiceErrorEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	_, err := c.Search(context.Background(), "idx", SearchRequest{})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.Message != http.StatusText(http.StatusServiceUnavailable) {
		t.Errorf("message = %q", svcErr.Message)
	}
}

func TestClient_IndexNameEscaped(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(Envelope{})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	if _, err := c.Search(context.Background(), "odd/index", SearchRequest{}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotPath != "/indexes/odd%2Findex/docs/search" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Envelope{})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	if _, err := c.Search(ctx, "idx", SearchRequest{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
