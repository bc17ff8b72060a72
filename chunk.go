package wikidoc

import (
	"strings"
	"unicode/utf8"
)

// DefaultPageSize is the maximum rendered page length used by the
// navigation controller.
const DefaultPageSize = 4000

// RenderedPage is one bounded page of a rendered report. Pages are
// derived, stateless and ephemeral.
type RenderedPage struct {
	Index int
	First bool
	Last  bool
	Text  string
}

// Paginate splits text into ordered pages of at most maxSize
// characters. Cuts prefer a paragraph break (double newline) found in
// the latter half of the page over a mid-sentence cut; the break itself
// stays with the leading page, so concatenating all page texts in order
// reproduces the input exactly. Empty input yields no pages.
func Paginate(text string, maxSize int) []RenderedPage {
	if text == "" {
		return nil
	}
	if maxSize <= 0 || len(text) <= maxSize {
		return []RenderedPage{{Index: 0, First: true, Last: true, Text: text}}
	}

	var pages []RenderedPage
	rest := text
	for len(rest) > maxSize {
		cut := maxSize
		if i := strings.LastIndex(rest[:maxSize], "\n\n"); i > maxSize/2 {
			cut = i + 2
		} else {
			// A hard cut must not land inside a multi-byte rune.
			for cut > 0 && !utf8.RuneStart(rest[cut]) {
				cut--
			}
			if cut == 0 {
				cut = maxSize
			}
		}
		pages = append(pages, RenderedPage{Index: len(pages), Text: rest[:cut]})
		rest = rest[cut:]
	}
	pages = append(pages, RenderedPage{Index: len(pages), Text: rest})

	pages[0].First = true
	pages[len(pages)-1].Last = true
	return pages
}
