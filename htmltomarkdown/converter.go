// Package htmltomarkdown implements the wikidoc.Converter used to turn
// inline page fragments, such as the description paragraph, into
// Markdown that keeps links and code spans intact.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/ompkit/wikidoc"
)

// Ensure Converter implements wikidoc.Converter at compile time.
var _ wikidoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML fragments to
// Markdown. Tables are not converted; parameter tables are walked
// structurally by the page parser instead.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikidoc.Errorf(wikidoc.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", wikidoc.Errorf(wikidoc.EINTERNAL, "converting to markdown: %v", err)
	}

	return result, nil
}
