// Package goquery implements the wikidoc.DocParser using DOM-first
// extraction with flattened-text fallbacks. The wiki's page templates
// are not consistent, so every section is a cascade: the structural
// signal is tried first and a weaker text heuristic only runs when
// structure is absent, which keeps the regex fallbacks from producing
// false positives on well-formed pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ompkit/wikidoc"
)

// DefaultBaseURL resolves relative documentation links.
const DefaultBaseURL = "https://www.open.mp"

// Diagnostics returned on documents that could not be extracted.
const (
	diagUnparseable = "Could not parse page content."
	diagNoArticle   = "Could not find article content."
)

// Ensure Parser implements wikidoc.DocParser at compile time.
var _ wikidoc.DocParser = (*Parser)(nil)

// Parser extracts structured content from documentation pages.
type Parser struct {
	baseURL     string
	boilerplate wikidoc.Extractor
	converter   wikidoc.Converter
}

// Option configures a Parser.
type Option func(*Parser)

// WithBaseURL sets the base used to resolve relative links.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(p *Parser) { p.baseURL = u }
}

// WithBoilerplateExtractor sets a last-resort content extractor used
// when the page has no recognizable article or main container.
func WithBoilerplateExtractor(e wikidoc.Extractor) Option {
	return func(p *Parser) { p.boilerplate = e }
}

// WithConverter sets a Markdown converter for inline content such as
// the description paragraph, preserving links and code spans that a
// plain text walk would flatten.
func WithConverter(c wikidoc.Converter) Option {
	return func(p *Parser) { p.converter = c }
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts a page's HTML into a structured document. It never
// fails: unusable markup yields an empty document with a diagnostic.
func (p *Parser) Parse(rawHTML, sourceURL string) *wikidoc.Doc {
	doc := &wikidoc.Doc{SourceURL: sourceURL}

	root, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		doc.Diagnostic = diagUnparseable
		return doc
	}

	doc.Title = strings.TrimSpace(root.Find("h1").First().Text())

	article := p.content(root, rawHTML)
	if article == nil {
		doc.Diagnostic = diagNoArticle
		return doc
	}
	flat := article.Text()

	doc.Description = p.description(article)
	doc.Params = extractParams(article)
	doc.Returns = extractReturns(article, flat)
	doc.Examples = extractExamples(article)
	doc.Notes = extractNotes(flat)
	doc.Related = p.relatedFunctions(article, flat)
	doc.RelatedCallbacks = extractRelatedCallbacks(flat)
	doc.Tags = extractTags(article)

	if doc.Empty() {
		doc.Diagnostic = diagNoArticle
	}
	return doc
}

// content locates the main content container: article, then main, then
// the boilerplate extractor's output, then body.
func (p *Parser) content(root *goquery.Document, rawHTML string) *goquery.Selection {
	if sel := root.Find("article").First(); sel.Length() > 0 {
		return sel
	}
	if sel := root.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if p.boilerplate != nil {
		if res, err := p.boilerplate.Extract(rawHTML); err == nil && res.ContentHTML != "" {
			if inner, err := goquery.NewDocumentFromReader(strings.NewReader(res.ContentHTML)); err == nil {
				return inner.Selection
			}
		}
	}
	if sel := root.Find("body").First(); sel.Length() > 0 {
		return sel
	}
	return nil
}

// description takes the first paragraph of the content container.
func (p *Parser) description(article *goquery.Selection) string {
	para := article.Find("p").First()
	if para.Length() == 0 {
		return ""
	}
	if p.converter != nil {
		if inner, err := para.Html(); err == nil {
			if md, err := p.converter.Convert(inner); err == nil && strings.TrimSpace(md) != "" {
				return strings.TrimSpace(md)
			}
		}
	}
	return strings.TrimSpace(para.Text())
}

// resolveLink resolves a possibly-relative href against the site base.
func (p *Parser) resolveLink(href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(p.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
