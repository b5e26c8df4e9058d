// Package search runs a keyword search and scrapes each hit into a
// SearchResult usable as chat context.
package search

import "context"

// Hit is a search engine result before it is scraped.
type Hit struct {
	Title string
	URL   string
}

// Provider queries a search engine for result links.
type Provider interface {
	Name() string
	// Search returns at most n hits, in engine order.
	Search(ctx context.Context, query string, n int) ([]Hit, error)
}
