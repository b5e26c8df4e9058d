package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/pagechat/internal/chat"
	"github.com/sells-group/pagechat/internal/config"
	"github.com/sells-group/pagechat/internal/extract"
	"github.com/sells-group/pagechat/internal/fetcher"
	"github.com/sells-group/pagechat/internal/scrape"
	"github.com/sells-group/pagechat/internal/search"
	"github.com/sells-group/pagechat/internal/session"
	"github.com/sells-group/pagechat/pkg/anthropic"
	"github.com/sells-group/pagechat/pkg/groq"
	"github.com/sells-group/pagechat/pkg/jina"
)

func fetchTimeout(c *config.Config) time.Duration {
	return time.Duration(c.Fetch.TimeoutSecs) * time.Second
}

func initFetcher(c *config.Config) fetcher.Fetcher {
	return fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:    c.Fetch.UserAgent,
		Timeout:      fetchTimeout(c),
		MaxBodyBytes: c.Fetch.MaxBodyBytes,
	})
}

func initScraper(c *config.Config, f fetcher.Fetcher) *scrape.Scraper {
	return scrape.New(f, extract.New(), c.Extract.MaxContentLength)
}

func initSearch(c *config.Config, f fetcher.Fetcher, s scrape.PageScraper) (*search.Adapter, error) {
	var provider search.Provider
	switch c.Search.Provider {
	case "", "duckduckgo":
		provider = search.NewDuckDuckGo(f, c.Search.BaseURL)
	case "jina":
		if c.Jina.Key == "" {
			return nil, eris.New("jina.key is required for the jina search provider (PAGECHAT_JINA_KEY)")
		}
		provider = search.NewJina(jina.NewClient(c.Jina.Key,
			jina.WithSearchBaseURL(c.Jina.SearchBaseURL),
			jina.WithHTTPClient(&http.Client{Timeout: fetchTimeout(c)}),
		))
	default:
		return nil, eris.Errorf("unsupported search provider: %s", c.Search.Provider)
	}
	return search.NewAdapter(provider, s), nil
}

func initChat(c *config.Config) *chat.Service {
	opts := chat.Options{
		DefaultModel:    c.LLM.DefaultModel,
		AnthropicModels: c.Anthropic.Models,
		Temperature:     c.LLM.Temperature,
		MaxTokens:       c.LLM.MaxTokens,
	}
	if c.Groq.Key != "" {
		opts.Groq = chat.GroqCompleter{Client: groq.NewClient(c.Groq.Key, groq.WithBaseURL(c.Groq.BaseURL))}
	}
	if c.Anthropic.Key != "" {
		opts.Anthropic = chat.AnthropicCompleter{Client: anthropic.NewClient(c.Anthropic.Key)}
	}
	return chat.NewService(opts)
}

func initStore(ctx context.Context, c *config.Config) (session.Store, error) {
	st, err := session.Open(ctx, c.Store.Driver, c.Store.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}
