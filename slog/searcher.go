// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ompkit/wikidoc"
)

// Ensure LoggingSearcher implements wikidoc.Searcher.
var _ wikidoc.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with operation logging.
type LoggingSearcher struct {
	next   wikidoc.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next wikidoc.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, language string) (hits []wikidoc.SearchHit, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"language", language,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, language)
}
