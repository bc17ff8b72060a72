package algolia_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ompkit/wikidoc"
	"github.com/ompkit/wikidoc/algolia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("sends credentials and query parameters", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotBody map[string]string
		var gotHeaders http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotHeaders = r.Header.Clone()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{"hits":[]}`))
		}))
		defer srv.Close()

		s := algolia.NewSearcher("APP123", "key456", "open",
			algolia.WithBaseURL(srv.URL),
			algolia.WithHitsPerPage(20),
		)
		_, err := s.Search(context.Background(), "SetPlayerHealth", "en")
		require.NoError(t, err)

		assert.Equal(t, "/1/indexes/open/query", gotPath)
		assert.Equal(t, "key456", gotHeaders.Get("X-Algolia-API-Key"))
		assert.Equal(t, "APP123", gotHeaders.Get("X-Algolia-Application-Id"))
		assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
		assert.Equal(t, "SetPlayerHealth", gotBody["query"])
		assert.Contains(t, gotBody["params"], "hitsPerPage=20")
		assert.Contains(t, gotBody["params"], "filters=language%3Aen")
	})

	t.Run("maps hits preferring the anchor-free URL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"hits":[
				{"url":"https://www.open.mp/docs/scripting/functions/SetPlayerHealth#usage",
				 "url_without_anchor":"https://www.open.mp/docs/scripting/functions/SetPlayerHealth",
				 "content":"Set a player's health.",
				 "hierarchy":{"lvl0":"Functions","lvl1":"SetPlayerHealth"}},
				{"url":"https://www.open.mp/docs/scripting/functions/GetPlayerHealth",
				 "hierarchy":{"lvl1":null}}
			]}`))
		}))
		defer srv.Close()

		s := algolia.NewSearcher("app", "key", "open", algolia.WithBaseURL(srv.URL))
		hits, err := s.Search(context.Background(), "health", "en")
		require.NoError(t, err)
		require.Len(t, hits, 2)

		assert.Equal(t, "https://www.open.mp/docs/scripting/functions/SetPlayerHealth", hits[0].URL)
		assert.Equal(t, "Set a player's health.", hits[0].Fields["content"])
		assert.Equal(t, "SetPlayerHealth", hits[0].Fields["hierarchy.lvl1"])

		assert.Equal(t, "https://www.open.mp/docs/scripting/functions/GetPlayerHealth", hits[1].URL)
		assert.Empty(t, hits[1].Fields)
	})

	t.Run("non-200 responses are unavailable errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		s := algolia.NewSearcher("app", "key", "open", algolia.WithBaseURL(srv.URL))
		_, err := s.Search(context.Background(), "health", "en")
		require.Error(t, err)
		assert.Equal(t, wikidoc.EUNAVAILABLE, wikidoc.ErrorCode(err))
	})

	t.Run("malformed payloads are unavailable errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"hits":`))
		}))
		defer srv.Close()

		s := algolia.NewSearcher("app", "key", "open", algolia.WithBaseURL(srv.URL))
		_, err := s.Search(context.Background(), "health", "en")
		require.Error(t, err)
		assert.Equal(t, wikidoc.EUNAVAILABLE, wikidoc.ErrorCode(err))
	})

	t.Run("transport failures are unavailable errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		s := algolia.NewSearcher("app", "key", "open", algolia.WithBaseURL(srv.URL))
		_, err := s.Search(context.Background(), "health", "en")
		require.Error(t, err)
		assert.Equal(t, wikidoc.EUNAVAILABLE, wikidoc.ErrorCode(err))
	})
}
