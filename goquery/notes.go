package goquery

import (
	"regexp"
	"strings"

	"github.com/ompkit/wikidoc"
)

var (
	// Callback names glued onto the end of a span when the wiki's
	// "Related Callbacks" list lacks a separating heading.
	callbackSpillRE = regexp.MustCompile(`(?:\s*On[A-Z]\w*)+\s*\z`)

	strayWarningRE = regexp.MustCompile(`(?i)\bwarning\b:?`)
	doubleSpaceRE  = regexp.MustCompile(`[ \t]{2,}`)

	// The tip marker's colon is optional on some templates. The word
	// boundary keeps words like "multiple" from matching.
	tipMarkerRE = regexp.MustCompile(`(?i)\btip\b:?`)
)

// extractNotes locates the notes span in the flattened content and
// splits it into tip and warning admonitions. When neither marker is
// present the whole span is kept as general notes.
func extractNotes(flat string) wikidoc.Notes {
	span := textSpan(flat, "Notes", "Related Functions", "Related Callbacks", "Tags")
	span = stripEditArtifact(span)
	if span == "" {
		return wikidoc.Notes{}
	}

	// The warning marker keeps its colon: a bare "warning" is the
	// admonition icon's flattened text, not a warning section.
	var n wikidoc.Notes
	n.Tip = stripCallbackSpill(tipSpan(span))
	n.Warning = stripCallbackSpill(textSpan(span, "Warning:", "Related Callbacks"))
	if n.Tip == "" && n.Warning == "" {
		n.General = cleanGeneralNotes(span)
	}
	return n
}

// tipSpan reads the tip admonition, tolerating a missing colon after
// the marker.
func tipSpan(span string) string {
	loc := tipMarkerRE.FindStringIndex(span)
	if loc == nil {
		return ""
	}
	return cutAtTerminators(span[loc[1]:], "Warning:", "Related Callbacks")
}

// stripCallbackSpill drops related-callback names that leak into the
// end of an admonition span.
func stripCallbackSpill(s string) string {
	return strings.TrimSpace(callbackSpillRE.ReplaceAllString(s, ""))
}

// cleanGeneralNotes strips the literal word "warning" (when it is not a
// "Warning:" marker) from a general notes span, an artifact of the
// wiki's admonition icons flattening to text.
func cleanGeneralNotes(s string) string {
	s = strayWarningRE.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasSuffix(m, ":") {
			return m
		}
		return ""
	})
	s = doubleSpaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
