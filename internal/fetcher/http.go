package fetcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sells-group/pagechat/internal/apperr"
)

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// HTTPFetcher implements Fetcher using net/http.
type HTTPFetcher struct {
	client *http.Client
	opts   HTTPOptions
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = 5 * 1024 * 1024
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts: opts,
	}
}

// Fetch validates rawURL, GETs it and returns the decoded body. Any
// non-2xx status is a failure.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if !IsValidURL(rawURL) {
		return nil, apperr.InvalidInput("Invalid URL format")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, err, "fetcher: create request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperr.FetchFailed(err, "fetcher: get")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.FetchFailed(
			eris.New(fmt.Sprintf("%d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), rawURL)),
			"fetcher: unexpected status",
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
	if err != nil {
		return nil, apperr.FetchFailed(err, "fetcher: read body")
	}

	contentType := resp.Header.Get("Content-Type")
	body = decodeCharset(contentType, body)

	zap.L().Debug("fetcher: page fetched",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Page{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
		Header:      resp.Header,
	}, nil
}

// decodeCharset transcodes body to UTF-8 using the charset parameter of the
// Content-Type header. Unknown or absent charsets pass through unchanged.
func decodeCharset(contentType string, body []byte) []byte {
	if contentType == "" {
		return body
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body
	}
	charset := params["charset"]
	if charset == "" {
		return body
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		zap.L().Debug("fetcher: unsupported charset", zap.String("charset", charset))
		return body
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return body
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return body
	}
	return decoded
}
