package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/ompkit/wikidoc"
)

var lineNumberRE = regexp.MustCompile(`^\s*\d+\s+`)

// extractExamples walks every code block in the content container. The
// wiki renders examples as pre-wrapped code elements, so the walk sees
// most blocks twice; exact-content hashing keeps one copy in encounter
// order.
func extractExamples(article *goquery.Selection) []wikidoc.Example {
	var examples []wikidoc.Example
	seen := make(map[uint64]bool)

	article.Find("pre, code").Each(func(_ int, block *goquery.Selection) {
		code := block.Text()
		lang, hinted := classLanguage(block)
		if goquery.NodeName(block) == "pre" {
			if inner := block.Find("code").First(); inner.Length() > 0 {
				code = inner.Text()
				if !hinted {
					lang, _ = classLanguage(inner)
				}
			}
		}

		code = strings.TrimSpace(wikidoc.DecodeEntities(code))
		if code == "" {
			return
		}
		code = stripLineNumbers(code)

		h := xxhash.Sum64String(strings.TrimSpace(code))
		if seen[h] {
			return
		}
		seen[h] = true
		examples = append(examples, wikidoc.Example{Language: lang, Code: code})
	})
	return examples
}

// classLanguage reads a block's class hints. Pawn is the wiki's native
// language and the default.
func classLanguage(sel *goquery.Selection) (wikidoc.Language, bool) {
	class, _ := sel.Attr("class")
	for _, c := range strings.Fields(class) {
		switch c {
		case "language-c":
			return wikidoc.LanguageC, true
		case "language-cpp":
			return wikidoc.LanguageCPP, true
		}
	}
	return wikidoc.LanguagePawn, false
}

// stripLineNumbers removes a leading line-number column when the
// block's first line carries one, a copy artifact of the wiki's
// highlighted examples.
func stripLineNumbers(code string) string {
	lines := strings.Split(code, "\n")
	if !lineNumberRE.MatchString(lines[0]) {
		return code
	}
	for i, line := range lines {
		lines[i] = lineNumberRE.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}
