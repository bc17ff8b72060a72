package mock

import (
	"context"

	"github.com/ompkit/wikidoc"
)

var _ wikidoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of wikidoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, language string) ([]wikidoc.SearchHit, error)
}

func (s *Searcher) Search(ctx context.Context, query string, language string) ([]wikidoc.SearchHit, error) {
	return s.SearchFn(ctx, query, language)
}
