package model

import "encoding/json"

// SearchHit is one scraped search result.
type SearchHit struct {
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url" yaml:"url"`
	Content string `json:"content" yaml:"content"`
}

// SearchResult holds the outcome of a search-and-scrape request.
// A failed result serialises as {success, error} only.
type SearchResult struct {
	Success bool        `json:"success" yaml:"success"`
	Query   string      `json:"query,omitempty" yaml:"query,omitempty"`
	Results []SearchHit `json:"results" yaml:"results"`
	Error   string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// FailedSearch builds the failure variant of a SearchResult.
func FailedSearch(msg string) SearchResult {
	return SearchResult{Success: false, Error: msg}
}

type searchWire SearchResult

func (r SearchResult) wire() any {
	if !r.Success {
		return failure{Error: r.Error}
	}
	w := searchWire(r)
	if w.Results == nil {
		w.Results = []SearchHit{}
	}
	return w
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

func (r SearchResult) MarshalYAML() (any, error) {
	return r.wire(), nil
}
