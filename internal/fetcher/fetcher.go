// Package fetcher performs single outbound page fetches.
package fetcher

import (
	"context"
	"net/url"
)

// Page is a fetched document, transcoded to UTF-8 where the charset is known.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
	// Header is kept for block detection.
	Header map[string][]string
}

// Fetcher defines the interface for downloading a single page.
type Fetcher interface {
	// Fetch performs one GET request. It never retries.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// IsValidURL reports whether raw parses as a URL with both a scheme and a host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
