package mock

import "github.com/ompkit/wikidoc"

var _ wikidoc.DocParser = (*DocParser)(nil)

// DocParser is a mock implementation of wikidoc.DocParser.
type DocParser struct {
	ParseFn func(html string, sourceURL string) *wikidoc.Doc
}

func (p *DocParser) Parse(html string, sourceURL string) *wikidoc.Doc {
	return p.ParseFn(html, sourceURL)
}
