package wikidoc

// DocParser converts one documentation page's HTML into a structured
// Doc.
type DocParser interface {
	// Parse never fails past this boundary: unusable markup yields a
	// Doc whose fields are empty and whose Diagnostic says why. Network
	// and HTTP failures are the caller's to report, not the parser's.
	Parse(html string, sourceURL string) *Doc
}
