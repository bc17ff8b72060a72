package wikidoc_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ompkit/wikidoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no pages", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wikidoc.Paginate("", 100))
	})

	t.Run("short text yields a single page equal to the input", func(t *testing.T) {
		t.Parallel()

		pages := wikidoc.Paginate("short text", 100)

		require.Len(t, pages, 1)
		assert.Equal(t, "short text", pages[0].Text)
		assert.True(t, pages[0].First)
		assert.True(t, pages[0].Last)
		assert.Equal(t, 0, pages[0].Index)
	})

	t.Run("prefers a paragraph break in the latter half of the page", func(t *testing.T) {
		t.Parallel()

		first := strings.Repeat("a", 70)
		second := strings.Repeat("b", 50)
		pages := wikidoc.Paginate(first+"\n\n"+second, 100)

		require.Len(t, pages, 2)
		assert.Equal(t, first+"\n\n", pages[0].Text)
		assert.Equal(t, second, pages[1].Text)
	})

	t.Run("ignores a paragraph break before the midpoint", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 20) + "\n\n" + strings.Repeat("b", 200)
		pages := wikidoc.Paginate(text, 100)

		require.NotEmpty(t, pages)
		assert.Len(t, pages[0].Text, 100)
	})

	t.Run("hard cuts keep every page valid UTF-8", func(t *testing.T) {
		t.Parallel()

		// Two-byte runes with no break anywhere force hard cuts; an odd
		// page size would land mid-rune without boundary handling.
		text := strings.Repeat("é", 60)
		pages := wikidoc.Paginate(text, 25)

		require.Greater(t, len(pages), 1)
		var joined strings.Builder
		for _, p := range pages {
			assert.True(t, utf8.ValidString(p.Text))
			assert.LessOrEqual(t, len(p.Text), 25)
			joined.WriteString(p.Text)
		}
		assert.Equal(t, text, joined.String())
	})

	t.Run("round-trips and bounds every page", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			strings.Repeat("lorem ipsum dolor sit amet\n\n", 40),
			strings.Repeat("x", 9999),
			"para one\n\npara two\n\n" + strings.Repeat("long paragraph text ", 300),
		}
		for _, in := range inputs {
			for _, max := range []int{10, 100, 4000} {
				pages := wikidoc.Paginate(in, max)
				var joined strings.Builder
				for i, p := range pages {
					assert.LessOrEqual(t, len(p.Text), max)
					assert.Equal(t, i, p.Index)
					assert.Equal(t, i == 0, p.First)
					assert.Equal(t, i == len(pages)-1, p.Last)
					joined.WriteString(p.Text)
				}
				assert.Equal(t, in, joined.String())
			}
		}
	})
}
