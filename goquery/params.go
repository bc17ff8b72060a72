package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ompkit/wikidoc"
)

var bareIdentRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// minParamDescLen filters out single-character table artifacts that the
// wiki's parameter tables sometimes carry in the description column.
const minParamDescLen = 2

// extractParams reads the first table in the content container as a
// parameter table: column 0 is the raw name, column 1 the description.
// The header row is skipped, rows with short descriptions are dropped,
// and names are deduplicated by canonical form with the first
// occurrence winning.
func extractParams(article *goquery.Selection) []wikidoc.Param {
	table := article.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	var params []wikidoc.Param
	seen := make(map[string]bool)
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		rawName := strings.TrimSpace(cells.Eq(0).Text())
		desc := strings.TrimSpace(cells.Eq(1).Text())
		if rawName == "Name" && desc == "Description" {
			return
		}
		name := canonicalParamName(rawName)
		if name == "" || len(desc) < minParamDescLen {
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true
		params = append(params, wikidoc.Param{Name: name, Description: desc})
	})
	return params
}

// canonicalParamName normalizes a raw first-column token into the name
// used as the dedup key. Bare identifiers and array/const-qualified
// tokens are kept whole; anything else keeps its last
// whitespace-separated token. The last-token rule is a heuristic and
// can misread type-prefixed names, but the wiki's tables are too
// inconsistent for anything stronger.
func canonicalParamName(raw string) string {
	if raw == "" {
		return ""
	}
	if bareIdentRE.MatchString(raw) {
		return raw
	}
	if strings.Contains(raw, "[") || strings.Contains(raw, "const ") {
		return raw
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
