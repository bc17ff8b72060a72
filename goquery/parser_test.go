package goquery_test

import (
	"testing"

	"github.com/ompkit/wikidoc"
	"github.com/ompkit/wikidoc/goquery"
	"github.com/ompkit/wikidoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts a full documentation page", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<h1>SetPlayerHealth</h1>
<article>
<p>Set the health of a player.</p>
<table>
<tr><th>Name</th><th>Description</th></tr>
<tr><td>playerid</td><td>The ID of the player to set the health of.</td></tr>
<tr><td>Float:health</td><td>The value to set the player's health to.</td></tr>
</table>
<h3>Returns</h3>
<p>1 - success</p>
<h3>Examples</h3>
<pre><code class="language-pawn">SetPlayerHealth(playerid, 100.0);</code></pre>
</article>
</body>
</html>`

		p := goquery.NewParser()
		doc := p.Parse(html, "https://www.open.mp/docs/scripting/functions/SetPlayerHealth")

		assert.Equal(t, "SetPlayerHealth", doc.Title)
		assert.Equal(t, "Set the health of a player.", doc.Description)
		require.Len(t, doc.Params, 2)
		assert.Equal(t, "playerid", doc.Params[0].Name)
		assert.Equal(t, "Float:health", doc.Params[1].Name)
		assert.Contains(t, doc.Returns, "**1** - success")
		require.Len(t, doc.Examples, 1)
		assert.Equal(t, "SetPlayerHealth(playerid, 100.0);", doc.Examples[0].Code)
		assert.Empty(t, doc.Diagnostic)
	})

	t.Run("returns heading followed by paragraph yields bolded code", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Returns</h2><p>1 - success</p></article>`

		doc := goquery.NewParser().Parse(html, "https://example.com/functions/X")

		assert.Equal(t, "**1** - success", doc.Returns)
	})

	t.Run("two identical code blocks yield one example", func(t *testing.T) {
		t.Parallel()

		html := `<article>
<pre><code>printf("hi");</code></pre>
<pre><code>printf("hi");</code></pre>
</article>`

		doc := goquery.NewParser().Parse(html, "https://example.com/functions/X")

		assert.Len(t, doc.Examples, 1)
	})

	t.Run("falls back to main when article is absent", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Main content here.</p></main></body></html>`

		doc := goquery.NewParser().Parse(html, "https://example.com/x")

		assert.Equal(t, "Main content here.", doc.Description)
	})

	t.Run("uses the boilerplate extractor when no container matches", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*wikidoc.ExtractResult, error) {
				return &wikidoc.ExtractResult{ContentHTML: "<div><p>Recovered content.</p></div>"}, nil
			},
		}
		p := goquery.NewParser(goquery.WithBoilerplateExtractor(extractor))

		doc := p.Parse("<html><head></head></html>", "https://example.com/x")

		assert.Equal(t, "Recovered content.", doc.Description)
	})

	t.Run("empty page carries a diagnostic and no content", func(t *testing.T) {
		t.Parallel()

		doc := goquery.NewParser().Parse("", "https://example.com/x")

		assert.True(t, doc.Empty())
		assert.NotEmpty(t, doc.Diagnostic)
	})

	t.Run("converter preserves inline markup in the description", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Set the `health` of a player.", nil
			},
		}
		html := `<article><p>Set the <code>health</code> of a player.</p></article>`

		doc := goquery.NewParser(goquery.WithConverter(conv)).Parse(html, "https://example.com/x")

		assert.Equal(t, "Set the `health` of a player.", doc.Description)
	})

	t.Run("converter failure falls back to plain text", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", wikidoc.Errorf(wikidoc.EINVALID, "bad fragment")
			},
		}
		html := `<article><p>Plain description.</p></article>`

		doc := goquery.NewParser(goquery.WithConverter(conv)).Parse(html, "https://example.com/x")

		assert.Equal(t, "Plain description.", doc.Description)
	})

	t.Run("records the source URL", func(t *testing.T) {
		t.Parallel()

		doc := goquery.NewParser().Parse("<article><p>x y z</p></article>", "https://example.com/functions/Foo")

		assert.Equal(t, "https://example.com/functions/Foo", doc.SourceURL)
	})
}
