// Package algolia implements wikidoc.Searcher against an Algolia
// DocSearch index over its REST query endpoint.
package algolia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ompkit/wikidoc"
)

// DefaultTimeout bounds a single query round trip.
const DefaultTimeout = 10 * time.Second

// DefaultHitsPerPage is how many raw hits one query requests. Larger
// than the presentable cap so URL filtering has material to work with.
const DefaultHitsPerPage = 20

// Ensure Searcher implements wikidoc.Searcher at compile time.
var _ wikidoc.Searcher = (*Searcher)(nil)

// Searcher queries an Algolia index.
type Searcher struct {
	client      *http.Client
	baseURL     string
	appID       string
	apiKey      string
	index       string
	hitsPerPage int
	timeout     time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithTimeout sets the per-query timeout.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithHitsPerPage sets how many raw hits each query requests.
func WithHitsPerPage(n int) Option {
	return func(s *Searcher) {
		s.hitsPerPage = n
	}
}

// WithBaseURL overrides the Algolia API host. Used in tests.
func WithBaseURL(u string) Option {
	return func(s *Searcher) {
		s.baseURL = u
	}
}

// NewSearcher creates a Searcher for the given application and index.
func NewSearcher(appID, apiKey, index string, opts ...Option) *Searcher {
	s := &Searcher{
		baseURL:     fmt.Sprintf("https://%s-dsn.algolia.net", appID),
		appID:       appID,
		apiKey:      apiKey,
		index:       index,
		hitsPerPage: DefaultHitsPerPage,
		timeout:     DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

type queryRequest struct {
	Query  string `json:"query"`
	Params string `json:"params"`
}

type queryResponse struct {
	Hits []rawHit `json:"hits"`
}

// rawHit is the subset of Algolia's hit payload the mapping uses.
// Hierarchy levels can be null on index records, which decodes to the
// empty string.
type rawHit struct {
	URL              string            `json:"url"`
	URLWithoutAnchor string            `json:"url_without_anchor"`
	Content          string            `json:"content"`
	Description      string            `json:"description"`
	Text             string            `json:"text"`
	Snippet          string            `json:"snippet"`
	Hierarchy        map[string]string `json:"hierarchy"`
}

// Search runs a full-text query filtered to the given language. Any
// backend failure surfaces as an EUNAVAILABLE error.
func (s *Searcher) Search(ctx context.Context, query string, language string) ([]wikidoc.SearchHit, error) {
	params := url.Values{}
	params.Set("hitsPerPage", strconv.Itoa(s.hitsPerPage))
	params.Set("filters", "language:"+language)

	body, err := json.Marshal(queryRequest{Query: query, Params: params.Encode()})
	if err != nil {
		return nil, wikidoc.Errorf(wikidoc.EINTERNAL, "encoding search query: %v", err)
	}

	endpoint := fmt.Sprintf("%s/1/indexes/%s/query", s.baseURL, url.PathEscape(s.index))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, wikidoc.Errorf(wikidoc.EINTERNAL, "building search request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-API-Key", s.apiKey)
	req.Header.Set("X-Algolia-Application-Id", s.appID)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, wikidoc.Errorf(wikidoc.EUNAVAILABLE, "search backend unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wikidoc.Errorf(wikidoc.EUNAVAILABLE, "search backend returned HTTP %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, wikidoc.Errorf(wikidoc.EUNAVAILABLE, "decoding search response: %v", err)
	}

	hits := make([]wikidoc.SearchHit, 0, len(decoded.Hits))
	for _, raw := range decoded.Hits {
		hits = append(hits, mapHit(raw))
	}
	return hits, nil
}

// mapHit flattens a raw Algolia hit into the domain shape. The
// anchor-free URL is preferred so section hits on the same page
// deduplicate during filtering.
func mapHit(raw rawHit) wikidoc.SearchHit {
	u := raw.URLWithoutAnchor
	if u == "" {
		u = raw.URL
	}

	fields := make(map[string]string)
	for key, value := range map[string]string{
		"content":        raw.Content,
		"description":    raw.Description,
		"text":           raw.Text,
		"snippet":        raw.Snippet,
		"hierarchy.lvl1": raw.Hierarchy["lvl1"],
	} {
		if value != "" {
			fields[key] = value
		}
	}
	return wikidoc.SearchHit{URL: u, Fields: fields}
}
