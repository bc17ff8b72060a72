package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/ompkit/wikidoc"
	"github.com/ompkit/wikidoc/mock"
	wikidocslog "github.com/ompkit/wikidoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.Searcher{
		SearchFn: func(_ context.Context, query, language string) ([]wikidoc.SearchHit, error) {
			return []wikidoc.SearchHit{{URL: "https://www.open.mp/docs/scripting/functions/GetPlayerPos"}}, nil
		},
	}

	s := wikidocslog.NewLoggingSearcher(next, logger)
	hits, err := s.Search(context.Background(), "GetPlayerPos", "en")
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	out := buf.String()
	assert.Contains(t, out, "msg=search")
	assert.Contains(t, out, "query=GetPlayerPos")
	assert.Contains(t, out, "hits=1")
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}

	f := wikidocslog.NewLoggingFetcher(next, logger)
	html, err := f.Fetch(context.Background(), "https://www.open.mp/docs")
	require.NoError(t, err)
	assert.NotEmpty(t, html)
	require.NoError(t, f.Close())

	out := buf.String()
	assert.Contains(t, out, "page fetch")
	assert.Contains(t, out, "url=https://www.open.mp/docs")
}
