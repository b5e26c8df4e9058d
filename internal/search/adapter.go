package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/pagechat/internal/extract"
	"github.com/sells-group/pagechat/internal/model"
	"github.com/sells-group/pagechat/internal/scrape"
)

const (
	// DefaultNumResults is used when the caller asks for no particular count.
	DefaultNumResults = 3
	// HitContentCap bounds each hit's content, tighter than a page scrape.
	HitContentCap = 2000
)

// Adapter searches a topic and scrapes every hit.
type Adapter struct {
	provider Provider
	scraper  scrape.PageScraper
}

// NewAdapter creates an Adapter.
func NewAdapter(p Provider, s scrape.PageScraper) *Adapter {
	return &Adapter{provider: p, scraper: s}
}

// Search runs the query and scrapes up to n hits concurrently, keeping
// engine order. Hits that fail to scrape are dropped without being
// reported; the result is a success even when none survive.
func (a *Adapter) Search(ctx context.Context, topic string, n int) model.SearchResult {
	if n <= 0 {
		n = DefaultNumResults
	}

	hits, err := a.provider.Search(ctx, topic, n)
	if err != nil {
		zap.L().Warn("search: provider failed",
			zap.String("provider", a.provider.Name()),
			zap.String("query", topic),
			zap.Error(err),
		)
		return model.FailedSearch("Search failed: " + err.Error())
	}
	if len(hits) > n {
		hits = hits[:n]
	}

	scraped := make([]*model.SearchHit, len(hits))
	var g errgroup.Group
	g.SetLimit(n)
	for i, h := range hits {
		g.Go(func() error {
			res := a.scraper.Scrape(ctx, h.URL)
			if !res.Success {
				zap.L().Debug("search: skipping hit",
					zap.String("url", h.URL),
					zap.String("reason", res.Error),
				)
				return nil
			}
			scraped[i] = &model.SearchHit{
				Title:   h.Title,
				URL:     h.URL,
				Content: extract.Cap(res.Content, HitContentCap),
			}
			return nil
		})
	}
	_ = g.Wait()

	results := make([]model.SearchHit, 0, len(scraped))
	for _, s := range scraped {
		if s != nil {
			results = append(results, *s)
		}
	}

	zap.L().Info("search: complete",
		zap.String("provider", a.provider.Name()),
		zap.String("query", topic),
		zap.Int("hits", len(hits)),
		zap.Int("scraped", len(results)),
	)

	return model.SearchResult{
		Success: true,
		Query:   topic,
		Results: results,
	}
}
