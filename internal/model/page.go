package model

import "encoding/json"

// Link is a hyperlink collected from an extracted page.
type Link struct {
	URL  string `json:"url" yaml:"url"`
	Text string `json:"text" yaml:"text"`
}

// Heading is an h1-h6 element collected from an extracted page.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// ExtractionResult holds the structured outcome of scraping a single page.
// A failed result serialises as {success, error} only.
type ExtractionResult struct {
	Success     bool      `json:"success" yaml:"success"`
	URL         string    `json:"url" yaml:"url"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Content     string    `json:"content" yaml:"content"`
	WordCount   int       `json:"word_count" yaml:"word_count"`
	Links       []Link    `json:"links" yaml:"links"`
	Headings    []Heading `json:"headings" yaml:"headings"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// FailedExtraction builds the failure variant of an ExtractionResult.
func FailedExtraction(msg string) ExtractionResult {
	return ExtractionResult{Success: false, Error: msg}
}

// failure is the wire shape shared by every failed result.
type failure struct {
	Success bool   `json:"success" yaml:"success"`
	Error   string `json:"error" yaml:"error"`
}

type extractionWire ExtractionResult

func (r ExtractionResult) wire() any {
	if !r.Success {
		return failure{Error: r.Error}
	}
	w := extractionWire(r)
	if w.Links == nil {
		w.Links = []Link{}
	}
	if w.Headings == nil {
		w.Headings = []Heading{}
	}
	return w
}

func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

func (r ExtractionResult) MarshalYAML() (any, error) {
	return r.wire(), nil
}
