package search

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/pagechat/internal/fetcher"
)

// DefaultDuckDuckGoURL is the HTML-only DuckDuckGo endpoint.
const DefaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"

// DuckDuckGo scrapes the HTML-only DuckDuckGo result page.
type DuckDuckGo struct {
	fetcher fetcher.Fetcher
	baseURL string
}

// NewDuckDuckGo creates a DuckDuckGo provider. An empty baseURL uses
// DefaultDuckDuckGoURL.
func NewDuckDuckGo(f fetcher.Fetcher, baseURL string) *DuckDuckGo {
	if baseURL == "" {
		baseURL = DefaultDuckDuckGoURL
	}
	return &DuckDuckGo{fetcher: f, baseURL: baseURL}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// Search fetches the result page and parses the first n result containers.
// Containers without a title anchor are dropped, so fewer than n hits may
// come back.
func (d *DuckDuckGo) Search(ctx context.Context, query string, n int) ([]Hit, error) {
	page, err := d.fetcher.Fetch(ctx, d.baseURL+"?q="+url.QueryEscape(query))
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: fetch results")
	}
	return ParseDuckDuckGo(page.Body, n)
}

// ParseDuckDuckGo extracts up to n hits from a DuckDuckGo HTML result page.
func ParseDuckDuckGo(body []byte, n int) ([]Hit, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: parse results")
	}

	containers := doc.Find("div.result")
	if containers.Length() > n {
		containers = containers.Slice(0, n)
	}

	hits := []Hit{}
	containers.Each(func(_ int, s *goquery.Selection) {
		a := s.Find("a.result__a").First()
		if a.Length() == 0 {
			return
		}
		href, _ := a.Attr("href")
		target := unwrapRedirect(href)
		if target == "" {
			return
		}
		hits = append(hits, Hit{
			Title: strings.TrimSpace(a.Text()),
			URL:   target,
		})
	})
	return hits, nil
}

// unwrapRedirect turns DuckDuckGo's //duckduckgo.com/l/?uddg=<target>
// redirect links into the target URL. Direct links are returned as is.
func unwrapRedirect(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.Contains(href, "uddg=") {
		if strings.HasPrefix(href, "//") {
			href = "https:" + href
		}
		if u, err := url.Parse(href); err == nil {
			if target := u.Query().Get("uddg"); target != "" {
				return target
			}
		}
	}
	return href
}
