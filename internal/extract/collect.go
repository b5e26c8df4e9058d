package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/pagechat/internal/model"
)

// CollectLinks returns up to limit anchors with visible text, in document
// order, with hrefs resolved against originURL.
func CollectLinks(doc *goquery.Document, originURL string, limit int) []model.Link {
	base, err := url.Parse(originURL)
	if err != nil {
		base = nil
	}

	links := make([]model.Link, 0, limit)
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if href == "" {
			return true
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			zap.L().Debug("extract: skipping unparseable href", zap.String("href", href), zap.Error(err))
			return true
		}
		abs := ref
		if base != nil {
			abs = base.ResolveReference(ref)
		}
		links = append(links, model.Link{URL: abs.String(), Text: text})
		return len(links) < limit
	})
	return links
}

// CollectHeadings returns up to limit headings, all h1 elements first, then
// h2 and so on, each level in document order.
func CollectHeadings(doc *goquery.Document, limit int) []model.Heading {
	headings := make([]model.Heading, 0, limit)
	for level := 1; level <= 6 && len(headings) < limit; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			headings = append(headings, model.Heading{
				Level: level,
				Text:  strings.TrimSpace(s.Text()),
			})
			return len(headings) < limit
		})
	}
	return headings
}
