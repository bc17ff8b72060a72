package goquery

import (
	"regexp"
	"strings"
)

var editArtifactRE = regexp.MustCompile(`(?s)Edit this page.*$`)

// textSpan returns the text between the first occurrence of marker and
// the earliest following terminator, or up to the end of text when no
// terminator matches. Matching is case-insensitive. The marker itself
// and any separator junk directly after it (colons, commas, whitespace)
// are excluded, as is surrounding whitespace.
func textSpan(text, marker string, terminators ...string) string {
	i := strings.Index(strings.ToLower(text), strings.ToLower(marker))
	if i < 0 {
		return ""
	}
	return cutAtTerminators(text[i+len(marker):], terminators...)
}

// cutAtTerminators truncates rest at the earliest terminator
// (case-insensitive) and strips the separator junk a marker leaves
// behind.
func cutAtTerminators(rest string, terminators ...string) string {
	restLower := strings.ToLower(rest)
	end := len(rest)
	for _, t := range terminators {
		if j := strings.Index(restLower, strings.ToLower(t)); j >= 0 && j < end {
			end = j
		}
	}
	return strings.TrimSpace(strings.TrimLeft(rest[:end], ":, \t\n"))
}

// stripEditArtifact removes the trailing "Edit this page" remnant the
// wiki appends to flattened section text.
func stripEditArtifact(s string) string {
	return strings.TrimSpace(editArtifactRE.ReplaceAllString(s, ""))
}
