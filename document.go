package wikidoc

import (
	"fmt"
	"regexp"
	"strings"
)

// Language identifies the language of an extracted code example.
type Language string

// Example languages. Pawn is the wiki's native scripting language and
// the default when a code block carries no class hint.
const (
	LanguagePawn Language = "pawn"
	LanguageC    Language = "c"
	LanguageCPP  Language = "cpp"
)

// Param is one documented parameter: canonical name plus description.
type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Example is one extracted code block.
type Example struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
}

// Notes holds the tip/warning admonitions of a page, or a general notes
// span when the page has neither.
type Notes struct {
	Tip     string `json:"tip,omitempty"`
	Warning string `json:"warning,omitempty"`
	General string `json:"general,omitempty"`
}

// RelatedLink points at a related documentation page.
type RelatedLink struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// Doc is the structured content extracted from one documentation page.
// It is built fresh per fetch and never cached. A Doc whose fields are
// all empty carries a Diagnostic explaining why extraction produced
// nothing; extraction itself never fails.
type Doc struct {
	Title            string        `json:"title,omitempty"`
	Description      string        `json:"description,omitempty"`
	Params           []Param       `json:"parameters,omitempty"`
	Returns          string        `json:"returns,omitempty"`
	Examples         []Example     `json:"examples,omitempty"`
	Notes            Notes         `json:"notes,omitempty"`
	Related          []RelatedLink `json:"relatedFunctions,omitempty"`
	RelatedCallbacks string        `json:"relatedCallbacks,omitempty"`
	Tags             []string      `json:"tags,omitempty"`

	SourceURL  string `json:"sourceUrl,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Empty reports whether extraction yielded no content at all.
func (d *Doc) Empty() bool {
	return d.Title == "" && d.Description == "" && len(d.Params) == 0 &&
		d.Returns == "" && len(d.Examples) == 0 && d.Notes == (Notes{}) &&
		len(d.Related) == 0 && d.RelatedCallbacks == "" && len(d.Tags) == 0
}

// Render produces the sectioned markdown report for the document and
// applies the final normalization pass. An empty document renders its
// diagnostic instead.
func (d *Doc) Render() string {
	if d.Empty() {
		return d.Diagnostic
	}

	var b strings.Builder
	if d.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title)
	}
	if d.Description != "" {
		fmt.Fprintf(&b, "## Description\n%s\n\n", d.Description)
	}
	if len(d.Params) > 0 {
		b.WriteString("## Parameters\n")
		for _, p := range d.Params {
			fmt.Fprintf(&b, "- **%s**: %s\n", p.Name, p.Description)
		}
		b.WriteString("\n")
	}
	if d.Returns != "" {
		fmt.Fprintf(&b, "## Returns\n%s\n\n", d.Returns)
	}
	if len(d.Examples) > 0 {
		b.WriteString("## Examples\n")
		for _, ex := range d.Examples {
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", ex.Language, ex.Code)
		}
	}
	if d.Notes != (Notes{}) {
		b.WriteString("## Notes\n")
		if d.Notes.Tip != "" {
			fmt.Fprintf(&b, "**:bulb: Tip:** %s\n\n", d.Notes.Tip)
		}
		if d.Notes.Warning != "" {
			fmt.Fprintf(&b, "**:warning: Warning:** %s\n\n", d.Notes.Warning)
		}
		if d.Notes.Tip == "" && d.Notes.Warning == "" && d.Notes.General != "" {
			fmt.Fprintf(&b, "%s\n\n", d.Notes.General)
		}
	}
	if len(d.Related) > 0 {
		b.WriteString("## Related Functions\n")
		for _, r := range d.Related {
			if r.URL != "" {
				fmt.Fprintf(&b, "- [%s](%s)\n", r.Label, r.URL)
			} else {
				fmt.Fprintf(&b, "- %s\n", r.Label)
			}
		}
		b.WriteString("\n")
	}
	if d.RelatedCallbacks != "" {
		fmt.Fprintf(&b, "## Related Callbacks\n%s\n\n", d.RelatedCallbacks)
	}
	if len(d.Tags) > 0 {
		b.WriteString("## Tags\n")
		tags := make([]string, 0, len(d.Tags))
		for _, tag := range d.Tags {
			tags = append(tags, "`"+tag+"`")
		}
		b.WriteString(strings.Join(tags, ", ") + "\n")
	}

	return NormalizeRendered(b.String())
}

var (
	excessNewlinesRE  = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRE   = regexp.MustCompile(`[ \t]+\n`)
	editArtifactRE    = regexp.MustCompile(`(?m)Edit this page.*$`)
	emptyTagsRE       = regexp.MustCompile(`(?s)## Tags\s*\z`)
	commaWrapRE       = regexp.MustCompile(`(\w),\n`)
	crammedCommaRE    = regexp.MustCompile(`([a-zA-Z]),([a-zA-Z])`)
	admonitionLineREs = []*regexp.Regexp{
		regexp.MustCompile(`^\*\*:bulb: Tip:\*\*`),
		regexp.MustCompile(`^\*\*:warning: Warning:\*\*`),
	}
)

// NormalizeRendered applies the fixed cleanup pass to a rendered
// report: newline collapsing, trailing-whitespace and wiki-artifact
// stripping, duplicate admonition removal, and comma line-wrap repair.
// The steps run in a fixed order; later steps rely on earlier ones.
func NormalizeRendered(text string) string {
	text = excessNewlinesRE.ReplaceAllString(text, "\n\n")
	text = trailingSpaceRE.ReplaceAllString(text, "\n")
	text = editArtifactRE.ReplaceAllString(text, "")
	text = dropRepeatedAdmonitions(text)
	text = emptyTagsRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "client. Tags:", "Tags:")
	text = commaWrapRE.ReplaceAllString(text, "$1\n")
	text = crammedCommaRE.ReplaceAllString(text, "$1, $2")
	return strings.TrimSpace(text)
}

// dropRepeatedAdmonitions removes a tip or warning line that exactly
// repeats the previous non-blank line, a template artifact on some wiki
// pages.
func dropRepeatedAdmonitions(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	prev := ""
	for _, line := range lines {
		if line != "" && line == prev && isAdmonitionLine(line) {
			continue
		}
		if line != "" {
			prev = line
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func isAdmonitionLine(line string) bool {
	for _, re := range admonitionLineREs {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
