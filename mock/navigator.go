package mock

import (
	"context"

	"github.com/ompkit/wikidoc"
)

var _ wikidoc.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of wikidoc.Navigator.
type Navigator struct {
	SearchFn func(ctx context.Context, ownerID string, query string) (*wikidoc.ResultsMessage, error)
	SelectFn func(ctx context.Context, ownerID string, data string) ([]wikidoc.PageMessage, error)
}

func (n *Navigator) Search(ctx context.Context, ownerID string, query string) (*wikidoc.ResultsMessage, error) {
	return n.SearchFn(ctx, ownerID, query)
}

func (n *Navigator) Select(ctx context.Context, ownerID string, data string) ([]wikidoc.PageMessage, error) {
	return n.SelectFn(ctx, ownerID, data)
}
