// Package bot implements the turn-based navigation controller over
// documentation search: a query produces a numbered results message
// backed by a session, and activating a result produces the rendered
// pages for that hit.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ompkit/wikidoc"
)

// Defaults applied to zero-valued Bot fields.
const (
	DefaultLanguage         = "en"
	DefaultDisplayLimit     = 5
	DefaultMinQueryLen      = 3
	DefaultDescriptionLimit = 120

	// DefaultFooter is the attribution carried by the last rendered page.
	DefaultFooter = "Documentation from open.mp"

	resultsTitle  = "Search Results"
	resultsFooter = "Pick a number to view the full documentation"
)

// Ensure Bot implements wikidoc.Navigator at compile time.
var _ wikidoc.Navigator = (*Bot)(nil)

// Bot coordinates the search backend, session store and extraction
// pipeline behind the navigation protocol. Zero values of the tuning
// fields fall back to the package defaults.
type Bot struct {
	Searcher wikidoc.Searcher
	Sessions wikidoc.SessionService
	Fetcher  wikidoc.Fetcher
	Parser   wikidoc.DocParser
	Logger   *slog.Logger

	// Language filters backend hits to one documentation language.
	Language string

	// PageSize bounds the length of one rendered page.
	PageSize int

	// DisplayLimit caps how many hits the results message shows.
	// Sessions still hold the full filtered set.
	DisplayLimit int

	// MinQueryLen rejects queries too short to search usefully.
	MinQueryLen int

	// DescriptionLimit bounds each hit's summary line.
	DescriptionLimit int

	// Footer is the attribution on the last rendered page.
	Footer string
}

// Search runs a documentation search for ownerID and stores the
// filtered hits behind a fresh session. A backend failure is logged and
// treated as zero hits so the user sees "no results" rather than an
// internal error.
func (b *Bot) Search(ctx context.Context, ownerID string, query string) (*wikidoc.ResultsMessage, error) {
	query = strings.TrimSpace(query)
	if len(query) < b.minQueryLen() {
		return nil, wikidoc.Errorf(wikidoc.EINVALID,
			"Search query must be at least %d characters.", b.minQueryLen())
	}

	hits, err := b.Searcher.Search(ctx, query, b.language())
	if err != nil {
		b.logger().Error("search backend failed", "query", query, "err", err)
		hits = nil
	}
	hits = wikidoc.FilterHits(hits)
	if len(hits) == 0 {
		return nil, wikidoc.Errorf(wikidoc.ENOTFOUND, "No results found for %q.", query)
	}

	session, err := b.Sessions.CreateSession(ctx, ownerID, hits)
	if err != nil {
		return nil, err
	}

	visible := hits
	if len(visible) > b.displayLimit() {
		visible = visible[:b.displayLimit()]
	}

	var lines []string
	var buttons []wikidoc.Button
	for i, hit := range visible {
		lines = append(lines, fmt.Sprintf("**%d.** [**%s**](%s) `%s`\n%s",
			i+1,
			wikidoc.HitName(hit),
			hit.URL,
			wikidoc.HitCategory(hit),
			wikidoc.Truncate(wikidoc.HitDescription(hit), b.descriptionLimit()),
		))
		buttons = append(buttons, wikidoc.Button{
			Label: strconv.Itoa(i + 1),
			Data:  EncodeCallback(session.ID, i),
		})
	}

	return &wikidoc.ResultsMessage{
		Title:       resultsTitle,
		Description: strings.Join(lines, "\n\n"),
		Footer:      resultsFooter,
		Buttons:     buttons,
	}, nil
}

// Select resolves a results button's opaque data against the owning
// session and returns the rendered pages for the selected hit. A failed
// page fetch yields a single fallback page carrying the raw source URL
// rather than an error, so the user always gets somewhere to go.
func (b *Bot) Select(ctx context.Context, ownerID string, data string) ([]wikidoc.PageMessage, error) {
	sessionID, index, err := ParseCallback(data)
	if err != nil {
		return nil, err
	}

	session, err := b.Sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		if wikidoc.ErrorCode(err) == wikidoc.ENOTFOUND {
			return nil, wikidoc.Errorf(wikidoc.EEXPIRED,
				"These search results have expired. Please run the search again.")
		}
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, wikidoc.Errorf(wikidoc.EUNAUTHORIZED,
			"These search results belong to another user.")
	}
	if index >= len(session.Hits) {
		return nil, wikidoc.Errorf(wikidoc.EINVALID, "Invalid selection.")
	}

	hit := session.Hits[index]
	name := wikidoc.HitName(hit)

	html, err := b.Fetcher.Fetch(ctx, hit.URL)
	if err != nil {
		b.logger().Warn("page fetch failed", "url", hit.URL, "err", err)
		return []wikidoc.PageMessage{{
			First: true,
			Last:  true,
			Title: name,
			URL:   hit.URL,
			Text:  "Error fetching content. Please check the documentation website directly: " + hit.URL,
		}}, nil
	}

	doc := b.Parser.Parse(html, hit.URL)
	pages := wikidoc.Paginate(doc.Render(), b.pageSize())

	messages := make([]wikidoc.PageMessage, 0, len(pages))
	for _, p := range pages {
		msg := wikidoc.PageMessage{
			Index: p.Index,
			First: p.First,
			Last:  p.Last,
			Title: fmt.Sprintf("%s (Page %d)", name, p.Index+1),
			Text:  strings.Trim(p.Text, "\n"),
		}
		if p.First {
			msg.Title = name
			msg.URL = hit.URL
		}
		if p.Last {
			msg.Footer = b.footer()
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (b *Bot) language() string {
	if b.Language == "" {
		return DefaultLanguage
	}
	return b.Language
}

func (b *Bot) pageSize() int {
	if b.PageSize <= 0 {
		return wikidoc.DefaultPageSize
	}
	return b.PageSize
}

func (b *Bot) displayLimit() int {
	if b.DisplayLimit <= 0 {
		return DefaultDisplayLimit
	}
	return b.DisplayLimit
}

func (b *Bot) minQueryLen() int {
	if b.MinQueryLen <= 0 {
		return DefaultMinQueryLen
	}
	return b.MinQueryLen
}

func (b *Bot) descriptionLimit() int {
	if b.DescriptionLimit <= 0 {
		return DefaultDescriptionLimit
	}
	return b.DescriptionLimit
}

func (b *Bot) footer() string {
	if b.Footer == "" {
		return DefaultFooter
	}
	return b.Footer
}

func (b *Bot) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}
