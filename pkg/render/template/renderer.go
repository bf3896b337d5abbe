// Package template defines the renderer-agnostic templating seam. Renderers
// depend on this interface so the pongo2-backed engine can be swapped in
// tests or by advanced callers.
package template

import (
	"io"
)

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. Render dispatches between a template name and inline template
// content; RenderTemplate and RenderString are the explicit variants.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
