package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<main><h1>Skin Care</h1><h2>Routine</h2><p>Cleanse first.</p></main>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Skin Care")
		assert.Contains(t, md, "## Routine")
		assert.Contains(t, md, "Cleanse first.")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\n\n<p>Hello</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Hello", md)
	})

	t.Run("converts links and images", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://example.com/guide">the guide</a>.</p><img src="https://example.com/p.png" alt="Product">`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the guide](https://example.com/guide)")
		assert.Contains(t, md, "![Product](https://example.com/p.png)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Serum</li><li>Toner</li></ul><ol><li>Wash</li><li>Dry</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Serum")
		assert.Contains(t, md, "- Toner")
		assert.Contains(t, md, "1. Wash")
		assert.Contains(t, md, "2. Dry")
	})

	t.Run("converts comparison tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table>
<thead><tr><th>Product</th><th>Price</th></tr></thead>
<tbody><tr><td>A</td><td>1000</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Product")
		assert.Contains(t, md, "1000")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts emphasis and strikethrough", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Sale</strong> <em>now</em> <del>3000</del></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Sale**")
		assert.Contains(t, md, "*now*")
		assert.Contains(t, md, "~~3000~~")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, seofetch.EINVALID, seofetch.ErrorCode(err))
	})
}
