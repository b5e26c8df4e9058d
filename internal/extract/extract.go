// Package extract turns raw page markup into a structured ExtractionResult:
// title, normalised main-region text, links and headings.
package extract

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"

	"github.com/sells-group/pagechat/internal/apperr"
	"github.com/sells-group/pagechat/internal/model"
)

const (
	// DefaultMaxLength is the content budget used when none is given.
	DefaultMaxLength = 10000
	// MaxLinks caps the links kept per page.
	MaxLinks = 20
	// MaxHeadings caps the headings kept per page, across all levels.
	MaxHeadings = 15
	// Ellipsis is appended to truncated content.
	Ellipsis = "..."
	// NoTitle stands in for a missing <title>.
	NoTitle = "No title"
)

// mainClassRe picks a content div by class. It is case-sensitive and matches
// substrings, so "mainstream" also qualifies.
var mainClassRe = regexp.MustCompile(`content|main`)

// Extractor parses HTML documents into extraction results.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses body and builds a successful ExtractionResult for originURL.
// Relative links are resolved against originURL. maxLength <= 0 uses
// DefaultMaxLength. Only an unreadable document is an error; unexpected
// markup falls back to broader selections.
func (e *Extractor) Extract(body []byte, originURL string, maxLength int) (model.ExtractionResult, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return model.ExtractionResult{}, apperr.ParseFailed(err, "extract: parse document")
	}

	// Metadata lives in <meta>, which is stripped below.
	description := extractDescription(body, doc)

	doc.Find("script, style, meta, link").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = NoTitle
	}

	text := CleanText(mainRegion(doc).Text())
	wordCount := len(strings.Fields(text))
	text = Truncate(text, maxLength)

	return model.ExtractionResult{
		Success:     true,
		URL:         originURL,
		Title:       title,
		Description: description,
		Content:     text,
		WordCount:   wordCount,
		Links:       CollectLinks(doc, originURL, MaxLinks),
		Headings:    CollectHeadings(doc, MaxHeadings),
	}, nil
}

// mainRegion returns the best guess at the page's main content: the first
// <main>, else the first <article>, else the first div whose class matches
// mainClassRe, else the whole document.
func mainRegion(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}
	sel := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && mainClassRe.MatchString(class)
	}).First()
	if sel.Length() > 0 {
		return sel
	}
	return doc.Selection
}

// extractDescription prefers og:description and falls back to the standard
// meta description.
func extractDescription(body []byte, doc *goquery.Document) string {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(bytes.NewReader(body)); err == nil && og.Description != "" {
		return strings.TrimSpace(og.Description)
	}
	if desc, ok := doc.Find("meta[name='description']").First().Attr("content"); ok {
		return strings.TrimSpace(desc)
	}
	return ""
}
