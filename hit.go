package wikidoc

import (
	"context"
	"net/url"
	"slices"
	"strings"
)

// MaxHits caps how many filtered hits are kept in a session.
const MaxHits = 10

// NoDescription is shown when a hit carries no usable description field.
const NoDescription = "(No description found)"

// reservedPrefix marks internal wiki pages that should never surface as
// search results.
const reservedPrefix = "omp-"

// categories are the documentation page types served to users, in the
// precedence order used for labeling.
var categories = []string{"functions", "callbacks", "natives", "constants", "libraries"}

var categoryLabels = map[string]string{
	"functions": "Function",
	"callbacks": "Callback",
	"natives":   "Native",
	"constants": "Constant",
	"libraries": "Library",
}

// SearchHit is one candidate documentation page returned by the search
// backend. Fields holds the backend's metadata used only as description
// fallbacks; it is never mutated after receipt.
type SearchHit struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Searcher queries the full-text search backend. Backend failures of
// any kind (timeout, transport, non-200) surface as EUNAVAILABLE errors
// and are degraded to "no results" by the caller.
type Searcher interface {
	Search(ctx context.Context, query string, language string) ([]SearchHit, error)
}

// FilterHits reduces raw backend hits to presentable documentation
// pages: deduplicated by URL, restricted to real category pages, capped
// at MaxHits. Order is preserved.
func FilterHits(hits []SearchHit) []SearchHit {
	seen := make(map[string]bool)
	var kept []SearchHit
	for _, hit := range hits {
		if hit.URL == "" || seen[hit.URL] {
			continue
		}
		seen[hit.URL] = true
		segs := pathSegments(hit.URL)
		if len(segs) < 2 {
			continue
		}
		last := segs[len(segs)-1]
		if segs[len(segs)-2] == "blog" ||
			slices.Contains(segs, "tags") ||
			strings.HasPrefix(last, reservedPrefix) ||
			slices.Contains(categories, last) {
			continue
		}
		if !hasCategorySegment(segs) {
			continue
		}
		kept = append(kept, hit)
		if len(kept) >= MaxHits {
			break
		}
	}
	return kept
}

// HitName returns the page name, i.e. the last path segment of the
// hit's URL.
func HitName(hit SearchHit) string {
	segs := pathSegments(hit.URL)
	if len(segs) == 0 {
		return hit.URL
	}
	return segs[len(segs)-1]
}

// HitCategory returns the display label for the hit's page type, or an
// empty string when the URL carries no category segment.
func HitCategory(hit SearchHit) string {
	segs := pathSegments(hit.URL)
	for _, c := range categories {
		if slices.Contains(segs, c) {
			return categoryLabels[c]
		}
	}
	return ""
}

// HitDescription derives a plain-text description from the hit's
// metadata, trying the backend's fields in order of usefulness.
func HitDescription(hit SearchHit) string {
	desc := ""
	if v := hit.Fields["content"]; v != "" {
		desc = FormatMarks(v)
	} else if v := hit.Fields["hierarchy.lvl1"]; v != "" {
		desc = v
	} else if v := hit.Fields["description"]; v != "" {
		desc = v
	} else if v := hit.Fields["text"]; v != "" {
		desc = v
	} else if v := hit.Fields["snippet"]; v != "" {
		desc = v
	}
	desc = strings.TrimSpace(StripTags(desc))
	if desc == "" || desc == "undefined" || desc == "null" {
		return NoDescription
	}
	return desc
}

// pathSegments splits the path portion of a URL into its non-empty
// segments. Relative URLs are handled the same as absolute ones.
func pathSegments(rawURL string) []string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func hasCategorySegment(segs []string) bool {
	for _, c := range categories {
		if slices.Contains(segs, c) {
			return true
		}
	}
	return false
}
