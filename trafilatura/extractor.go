// Package trafilatura implements the last-resort content extractor used
// when a wiki page has no recognizable article or main container.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/ompkit/wikidoc"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wikidoc.Extractor at compile time.
var _ wikidoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover main content from HTML
// whose structure the DOM-first parser cannot recognize.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*wikidoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wikidoc.Errorf(wikidoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, wikidoc.Errorf(wikidoc.EINTERNAL, "extracting content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, wikidoc.Errorf(wikidoc.EINTERNAL, "rendering content: %v", err)
		}
	}

	return &wikidoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
