package wikidoc

import "context"

// Fetcher retrieves raw HTML from documentation URLs.
type Fetcher interface {
	// Fetch performs a bounded GET of the URL and returns the response
	// body. Non-200 responses and transport failures are errors; the
	// context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}
