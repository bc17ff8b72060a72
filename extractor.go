package wikidoc

// ExtractResult holds the main content recovered from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor recovers main content from HTML pages whose structure the
// DOM-first parser cannot recognize. It is the last-resort fallback in
// the extraction cascade.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
