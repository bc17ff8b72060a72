package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ompkit/wikidoc"
)

// identLinkRE matches the capitalized-identifier shape of function
// names, used by the text fallback to tell documentation links from
// navigation chrome.
var identLinkRE = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

var navNoise = []string{"previous", "next", "edit"}

// relatedFunctions extracts the related-functions list: the list
// following a "Related Functions" heading when the page has one, else a
// scan of the document's links restricted to function-shaped labels.
// The fallback only runs when the flattened text proves the section
// exists, so pages without one contribute nothing.
func (p *Parser) relatedFunctions(article *goquery.Selection, flat string) []wikidoc.RelatedLink {
	if links := p.relatedFromHeading(article); len(links) > 0 {
		return links
	}
	return p.relatedFromText(article, flat)
}

func (p *Parser) relatedFromHeading(article *goquery.Selection) []wikidoc.RelatedLink {
	var out []wikidoc.RelatedLink
	article.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(h.Text()), "Related Functions") {
			return true
		}
		// Stay inside this heading's section; a later section's list
		// must not be mistaken for the related-functions list.
		list := h.NextUntil("h1, h2, h3, h4").Filter("ul, ol").First()
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			label := strings.TrimSpace(li.Text())
			href := ""
			if a := li.Find("a").First(); a.Length() > 0 {
				label = strings.TrimSpace(a.Text())
				href, _ = a.Attr("href")
			}
			if label == "" || isNavNoise(label) {
				return
			}
			out = append(out, wikidoc.RelatedLink{Label: label, URL: p.resolveLink(href)})
		})
		return false
	})
	return out
}

func (p *Parser) relatedFromText(article *goquery.Selection, flat string) []wikidoc.RelatedLink {
	if textSpan(flat, "Related Functions", "Related Callbacks", "Tags") == "" {
		return nil
	}
	var out []wikidoc.RelatedLink
	seen := make(map[string]bool)
	article.Find("a").Each(func(_ int, a *goquery.Selection) {
		label := strings.TrimSpace(a.Text())
		if !identLinkRE.MatchString(label) || isNavNoise(label) || seen[label] {
			return
		}
		seen[label] = true
		href, _ := a.Attr("href")
		out = append(out, wikidoc.RelatedLink{Label: label, URL: p.resolveLink(href)})
	})
	return out
}

func isNavNoise(label string) bool {
	lower := strings.ToLower(label)
	for _, noise := range navNoise {
		if strings.Contains(lower, noise) {
			return true
		}
	}
	return false
}

// extractRelatedCallbacks reads the related-callbacks span from the
// flattened content.
func extractRelatedCallbacks(flat string) string {
	return stripEditArtifact(textSpan(flat, "Related Callbacks", "Tags"))
}

// extractTags reads the list following a "Tags" node.
func extractTags(article *goquery.Selection) []string {
	var tags []string
	article.Find("h1, h2, h3, h4, strong, b").EachWithBreak(func(_ int, node *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(node.Text()), "Tags") {
			return true
		}
		list := node.NextUntil("h1, h2, h3, h4").Filter("ul, ol").First()
		if list.Length() == 0 {
			// Bold markers are often wrapped in their own paragraph with
			// the list as the paragraph's sibling.
			list = node.Parent().NextUntil("h1, h2, h3, h4").Filter("ul, ol").First()
		}
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if tag := stripEditArtifact(li.Text()); tag != "" {
				tags = append(tags, tag)
			}
		})
		return false
	})
	return tags
}
