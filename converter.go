package wikidoc

// Converter transforms an HTML fragment into Markdown.
type Converter interface {
	Convert(html string) (markdown string, err error)
}
