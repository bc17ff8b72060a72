package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	stdhttp "net/http"
	"time"

	"github.com/ompkit/wikidoc"
	"github.com/ompkit/wikidoc/algolia"
	"github.com/ompkit/wikidoc/bot"
	"github.com/ompkit/wikidoc/goquery"
	"github.com/ompkit/wikidoc/htmltomarkdown"
	wikidochttp "github.com/ompkit/wikidoc/http"
	"github.com/ompkit/wikidoc/mem"
	wikidocslog "github.com/ompkit/wikidoc/slog"
	"github.com/ompkit/wikidoc/trafilatura"
	"golang.org/x/sync/errgroup"
)

// CLI defines the command-line interface structure for Kong. The
// credential defaults match the open.mp deployment's public DocSearch
// keys.
type CLI struct {
	AlgoliaAppID  string `default:"AOKXGK39Z7" help:"Algolia application id"`
	AlgoliaAPIKey string `default:"54204f37e5c8fc2871052d595ee0505e" help:"Algolia search-only API key"`
	AlgoliaIndex  string `default:"open" help:"Algolia index name"`
	BaseURL       string `default:"https://www.open.mp" help:"Documentation site base URL"`
	Language      string `default:"en" help:"Documentation language filter"`

	Serve  ServeCmd  `cmd:"" help:"Run the JSON API server"`
	Search SearchCmd `cmd:"" help:"Run a one-shot documentation search"`
	Page   PageCmd   `cmd:"" help:"Fetch, parse and render a single page"`
}

// Dependencies holds the wired services commands execute against.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	CLI      *CLI
	Searcher wikidoc.Searcher
	Fetcher  wikidoc.Fetcher
	Parser   wikidoc.DocParser
}

// Close releases fetcher resources.
func (d *Dependencies) Close() {
	_ = d.Fetcher.Close()
}

// wire builds the service graph shared by all commands.
func wire(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*Dependencies, error) {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	searcher := wikidocslog.NewLoggingSearcher(
		algolia.NewSearcher(cli.AlgoliaAppID, cli.AlgoliaAPIKey, cli.AlgoliaIndex),
		logger,
	)
	fetcher := wikidocslog.NewLoggingFetcher(wikidochttp.NewFetcher(), logger)
	parser := goquery.NewParser(
		goquery.WithBaseURL(cli.BaseURL),
		goquery.WithBoilerplateExtractor(trafilatura.NewExtractor()),
		goquery.WithConverter(htmltomarkdown.NewConverter()),
	)

	return &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		CLI:      cli,
		Searcher: searcher,
		Fetcher:  fetcher,
		Parser:   parser,
	}, nil
}

// newBot assembles the navigation controller over the wired services.
func newBot(deps *Dependencies, sessions wikidoc.SessionService) *bot.Bot {
	return &bot.Bot{
		Searcher: deps.Searcher,
		Sessions: sessions,
		Fetcher:  deps.Fetcher,
		Parser:   deps.Parser,
		Logger:   deps.Logger,
		Language: deps.CLI.Language,
	}
}

// ServeCmd runs the JSON API server with a background session sweeper.
type ServeCmd struct {
	Addr          string        `default:":8080" help:"Listen address"`
	TTL           time.Duration `default:"10m" help:"Session lifetime"`
	SweepInterval time.Duration `default:"1h" help:"How often expired sessions are swept"`
}

func (s *ServeCmd) Run(deps *Dependencies) error {
	sessions := mem.NewSessionService(
		mem.WithTTL(s.TTL),
		mem.WithLogger(deps.Logger),
	)

	server := &stdhttp.Server{
		Addr:    s.Addr,
		Handler: wikidochttp.NewServer(newBot(deps, sessions), deps.Logger),
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		deps.Logger.Info("listening", "addr", s.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sessions.Sweep(ctx, s.SweepInterval)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// SearchCmd runs one search and prints the results message.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Owner string `default:"cli" help:"Owner id for the throwaway session"`
}

func (s *SearchCmd) Run(deps *Dependencies) error {
	b := newBot(deps, mem.NewSessionService(mem.WithLogger(deps.Logger)))

	results, err := b.Search(deps.Ctx, s.Owner, s.Query)
	if err != nil {
		return errors.New(wikidoc.ErrorMessage(err))
	}

	fmt.Fprintln(deps.Stdout, results.Title)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, results.Description)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, results.Footer)
	return nil
}

// PageCmd fetches one documentation page and renders it to stdout.
// Useful for checking extraction against a live page.
type PageCmd struct {
	URL string `arg:"" help:"Documentation page URL"`
}

func (p *PageCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, p.URL)
	if err != nil {
		return errors.New(wikidoc.ErrorMessage(err))
	}

	doc := deps.Parser.Parse(html, p.URL)
	fmt.Fprintln(deps.Stdout, doc.Render())
	return nil
}
