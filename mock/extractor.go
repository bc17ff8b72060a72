package mock

import "github.com/ompkit/wikidoc"

var _ wikidoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikidoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wikidoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wikidoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
