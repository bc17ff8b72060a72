package mock

import "github.com/ompkit/wikidoc"

var _ wikidoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikidoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
