package markdown

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the built-in Markdown templates so callers can extend
// or override them.
func TemplatesFS() fs.FS {
	return templatesFS
}
