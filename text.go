package wikidoc

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var tagRE = regexp.MustCompile(`<[^>]*>`)

var markReplacer = strings.NewReplacer("<mark>", "**", "</mark>", "**")

// Truncate shortens s to at most max characters plus an ellipsis marker.
// When a space exists before the limit the cut happens at the last such
// space so words are never split mid-way. The result is never longer
// than max+4 (" ..." included).
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	if i := strings.LastIndex(s[:max], " "); i > 0 {
		cut = i
	} else {
		// A hard cut must not land inside a multi-byte rune.
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
	}
	return s[:cut] + " ..."
}

// DecodeEntities resolves HTML entities (&amp;, &lt;, numeric refs) to
// their literal characters.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// FormatMarks converts the search index's <mark> highlight tags into
// markdown bold markers.
func FormatMarks(s string) string {
	return markReplacer.Replace(s)
}

// StripTags removes any remaining HTML tags from s.
func StripTags(s string) string {
	return tagRE.ReplaceAllString(s, "")
}
