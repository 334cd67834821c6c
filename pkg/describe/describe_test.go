package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("renders markdown", func(t *testing.T) {
		html, err := Render("# Title\n\nSome *emphasis*.")
		require.NoError(t, err)
		assert.Contains(t, html, "<h1")
		assert.Contains(t, html, "<em>emphasis</em>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		html, err := Render("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "hello")
	})

	t.Run("empty description renders empty", func(t *testing.T) {
		html, err := Render("")
		require.NoError(t, err)
		assert.Empty(t, html)
	})
}
