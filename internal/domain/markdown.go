package domain

import "html/template"

// MarkdownRenderer converts content-service markdown into HTML safe to embed in a page.
type MarkdownRenderer interface {
	Render(source string) (template.HTML, error)
}
