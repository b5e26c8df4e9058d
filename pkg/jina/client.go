// Package jina provides a client for the Jina AI search API.
package jina

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// DefaultSearchBaseURL is the hosted Jina search endpoint.
const DefaultSearchBaseURL = "https://s.jina.ai"

// Client defines the Jina AI Search operations.
type Client interface {
	// Search runs req against Jina Search. A query with no results returns an
	// empty response, not an error.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// SearchRequest is the body sent to the search endpoint.
type SearchRequest struct {
	Query string `json:"q"`
	// Num caps the number of results; zero leaves it to the API.
	Num int `json:"num,omitempty"`
}

// SearchResponse is the parsed Jina Search API response.
type SearchResponse struct {
	Code int            `json:"code"`
	Data []SearchResult `json:"data"`
}

// SearchResult represents a single search result.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Option configures the Jina client.
type Option func(*httpClient)

// WithSearchBaseURL points the client at a different search endpoint.
func WithSearchBaseURL(u string) Option {
	return func(c *httpClient) {
		if u != "" {
			c.searchBaseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the default 30s-timeout HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

type httpClient struct {
	apiKey        string
	searchBaseURL string
	http          *http.Client
}

// NewClient creates a new Jina AI Search client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:        apiKey,
		searchBaseURL: DefaultSearchBaseURL,
		http:          &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Search(ctx context.Context, sr SearchRequest) (*SearchResponse, error) {
	if strings.TrimSpace(sr.Query) == "" {
		return nil, eris.New("jina: empty query")
	}
	payload, err := json.Marshal(sr)
	if err != nil {
		return nil, eris.Wrap(err, "jina: encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchBaseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return nil, eris.Wrap(err, "jina: create search request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// Result pages are scraped separately, so only titles and URLs are needed.
	req.Header.Set("X-Respond-With", "no-content")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "jina: search request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity:
		// No results for the query.
		return &SearchResponse{Code: resp.StatusCode}, nil
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, eris.Errorf("jina: search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, eris.Wrap(err, "jina: decode search response")
	}
	return &out, nil
}
