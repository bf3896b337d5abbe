package render

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/emitter"
	"github.com/goliatone/go-docgen/pkg/project"
)

// Renderer turns a project model into documentation files under outputDir.
// Implementations block until every output file has been handed to the
// emitter; the application relies on that to keep the pipeline sequential.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, proj *project.Project, outputDir string, options RenderOptions) error
}

// RenderOptions carries per-run data renderers can use without reaching back
// into the application.
type RenderOptions struct {
	// Emitter writes output files. When nil, renderers fall back to a private
	// instance; the application injects its shared emitter so directory
	// existence checks are memoized across renderers.
	Emitter *emitter.Emitter

	// Theme holds the resolved theme configuration, or nil when the run did
	// not select a theme. Renderers that do not support theming ignore it.
	Theme *ThemeConfig
}

// ThemeConfig is the renderer-facing view of a theme selection: merged
// partials, design tokens, derived CSS custom properties, and an asset URL
// resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Partials map[string]string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(key string) string
}
