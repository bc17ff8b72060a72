package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minReturnsLen is the shortest span accepted as a returns section;
// anything shorter is table noise or an empty heading.
const minReturnsLen = 3

// returnsPatterns are tried in order against the flattened content when
// no Returns heading yields text. Stronger, more specific phrasings
// come first.
var returnsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Return Values\s*:?\s*(.*?)(?:Examples|Notes|Related Functions|Related Callbacks|Tags|\z)`),
	regexp.MustCompile(`(?is)Returns\s*:?\s*(.*?)(?:Examples|Notes|Related Functions|Related Callbacks|Tags|\z)`),
	regexp.MustCompile(`(?is)This function returns\s*(.*?)(?:Examples|Notes|Related|Tags|\z)`),
}

var leadingNumberRE = regexp.MustCompile(`(?m)^(\d+)\s+`)

// extractReturns collects the returns section: sibling content after a
// "Returns" heading first, then the regex cascade over the flattened
// text when the heading route yields nothing useful.
func extractReturns(article *goquery.Selection, flat string) string {
	if text := returnsFromHeading(article); len(text) >= minReturnsLen {
		return boldLeadingNumbers(text)
	}
	for _, re := range returnsPatterns {
		for _, m := range re.FindAllStringSubmatch(flat, -1) {
			if text := strings.TrimSpace(m[1]); len(text) >= minReturnsLen {
				return boldLeadingNumbers(text)
			}
		}
	}
	return ""
}

// returnsFromHeading finds a heading titled "Returns" and joins its
// sibling block content up to the next heading.
func returnsFromHeading(article *goquery.Selection) string {
	var out string
	article.Find("h1, h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(h.Text()), "Returns") {
			return true
		}
		var parts []string
		h.NextUntil("h1, h2, h3").Each(func(_ int, sib *goquery.Selection) {
			if t := strings.TrimSpace(sib.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		out = strings.Join(parts, "\n")
		return false
	})
	return strings.TrimSpace(out)
}

// boldLeadingNumbers highlights numeric return codes, turning lines
// like "1 - success" into "**1** - success".
func boldLeadingNumbers(text string) string {
	return leadingNumberRE.ReplaceAllString(text, "**$1** ")
}
