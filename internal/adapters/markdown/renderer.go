package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"eventsite/internal/domain"
)

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a MarkdownRenderer backed by goldmark with GFM extensions.
// Raw HTML in the source is not passed through.
func NewRenderer() domain.MarkdownRenderer {
	return &goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (r *goldmarkRenderer) Render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
