package goquery_test

import (
	"testing"

	"github.com/ompkit/wikidoc"
	"github.com/ompkit/wikidoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Examples(t *testing.T) {
	t.Parallel()

	parse := func(html string) []wikidoc.Example {
		return goquery.NewParser().Parse(html, "https://example.com/functions/X").Examples
	}

	t.Run("defaults to pawn", func(t *testing.T) {
		t.Parallel()

		examples := parse(`<article><pre><code>new a = 1;</code></pre></article>`)

		require.Len(t, examples, 1)
		assert.Equal(t, wikidoc.LanguagePawn, examples[0].Language)
		assert.Equal(t, "new a = 1;", examples[0].Code)
	})

	t.Run("classifies c and cpp from class hints", func(t *testing.T) {
		t.Parallel()

		examples := parse(`<article>
<pre><code class="language-c">int a = 1;</code></pre>
<pre><code class="language-cpp">auto b = 2;</code></pre>
</article>`)

		require.Len(t, examples, 2)
		assert.Equal(t, wikidoc.LanguageC, examples[0].Language)
		assert.Equal(t, wikidoc.LanguageCPP, examples[1].Language)
	})

	t.Run("decodes HTML entities", func(t *testing.T) {
		t.Parallel()

		examples := parse(`<article><pre><code>if (a &lt; b) return;</code></pre></article>`)

		require.Len(t, examples, 1)
		assert.Equal(t, "if (a < b) return;", examples[0].Code)
	})

	t.Run("strips a leading line-number column", func(t *testing.T) {
		t.Parallel()

		examples := parse("<article><pre><code>1  new a;\n2  new b;</code></pre></article>")

		require.Len(t, examples, 1)
		assert.Equal(t, "new a;\nnew b;", examples[0].Code)
	})

	t.Run("keeps numeric code without the line-number shape", func(t *testing.T) {
		t.Parallel()

		examples := parse(`<article><pre><code>SetTimer(1000);</code></pre></article>`)

		require.Len(t, examples, 1)
		assert.Equal(t, "SetTimer(1000);", examples[0].Code)
	})

	t.Run("deduplicates identical blocks preserving encounter order", func(t *testing.T) {
		t.Parallel()

		examples := parse(`<article>
<pre><code>first();</code></pre>
<pre><code>second();</code></pre>
<pre><code>first();</code></pre>
</article>`)

		require.Len(t, examples, 2)
		assert.Equal(t, "first();", examples[0].Code)
		assert.Equal(t, "second();", examples[1].Code)
	})

	t.Run("uses the pre text when no inner code element exists", func(t *testing.T) {
		t.Parallel()

		examples := parse(`<article><pre>bare block</pre></article>`)

		require.Len(t, examples, 1)
		assert.Equal(t, "bare block", examples[0].Code)
	})
}
