package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("Join us for **worship** and:\n\n- music\n- prayer")

	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>worship</strong>")
	assert.Contains(t, string(html), "<li>music</li>")
}

func TestRender_RawHTMLNotPassedThrough(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render(`hello <script>alert(1)</script>`)

	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}
