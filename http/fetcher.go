// Package http provides the HTTP transport implementations: the
// documentation page fetcher and the JSON API server.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ompkit/wikidoc"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRPS is the default per-domain request rate. Documentation
// fetches are user-driven one-offs, so one request per second per
// domain is plenty while staying polite to the wiki.
const DefaultRPS = 1.0

// Ensure Fetcher implements wikidoc.Fetcher at compile time.
var _ wikidoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages over HTTP. Requests are rate
// limited per domain with a token bucket and a burst of 1.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	rps     float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit sets the per-domain requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.rps = rps
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		rps:      DefaultRPS,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := f.wait(ctx, rawURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", wikidoc.Errorf(wikidoc.EINVALID, "invalid page URL %q: %v", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wikidoc.Errorf(wikidoc.EUNAVAILABLE, "fetching %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wikidoc.Errorf(wikidoc.EUNAVAILABLE, "fetching %s: HTTP %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wikidoc.Errorf(wikidoc.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}

	return string(body), nil
}

// Close releases resources. A no-op since http.Client needs no explicit
// cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// wait blocks until the target domain's token bucket allows a request.
func (f *Fetcher) wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return wikidoc.Errorf(wikidoc.EINVALID, "invalid page URL %q: %v", rawURL, err)
	}

	f.mu.Lock()
	limiter, ok := f.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[u.Host] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}
