// Package scrape composes a fetch and an extraction into a single page
// scrape whose failures are reported inside the result.
package scrape

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/pagechat/internal/apperr"
	"github.com/sells-group/pagechat/internal/extract"
	"github.com/sells-group/pagechat/internal/fetcher"
	"github.com/sells-group/pagechat/internal/model"
)

// PageScraper scrapes a single URL into an ExtractionResult.
type PageScraper interface {
	Scrape(ctx context.Context, url string) model.ExtractionResult
}

// Scraper fetches a URL and extracts it with a fixed content budget.
type Scraper struct {
	fetcher   fetcher.Fetcher
	extractor *extract.Extractor
	maxLength int
}

// New creates a Scraper. maxLength <= 0 uses extract.DefaultMaxLength.
func New(f fetcher.Fetcher, e *extract.Extractor, maxLength int) *Scraper {
	if maxLength <= 0 {
		maxLength = extract.DefaultMaxLength
	}
	return &Scraper{fetcher: f, extractor: e, maxLength: maxLength}
}

// Scrape never returns an error: invalid input, fetch and parse failures
// come back as the failure variant with a readable message.
func (s *Scraper) Scrape(ctx context.Context, targetURL string) model.ExtractionResult {
	page, err := s.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		zap.L().Info("scrape: fetch failed", zap.String("url", targetURL), zap.Error(err))
		if apperr.KindOf(err) == apperr.KindInvalidInput {
			return model.FailedExtraction("Invalid URL format")
		}
		return model.FailedExtraction("Failed to fetch URL: " + err.Error())
	}

	if block := DetectBlock(page.StatusCode, page.Header, page.Body); block.Blocked() {
		zap.L().Warn("scrape: page looks like an anti-bot wall",
			zap.String("url", targetURL),
			zap.Int("status", page.StatusCode),
			zap.String("block_type", string(block.Type)),
			zap.String("marker", block.Marker),
		)
	}

	result, err := s.extractor.Extract(page.Body, targetURL, s.maxLength)
	if err != nil {
		zap.L().Info("scrape: extract failed", zap.String("url", targetURL), zap.Error(err))
		return model.FailedExtraction("Error scraping website: " + err.Error())
	}

	zap.L().Debug("scrape: page extracted",
		zap.String("url", targetURL),
		zap.Int("words", result.WordCount),
		zap.Int("links", len(result.Links)),
		zap.Int("headings", len(result.Headings)),
	)
	return result
}
