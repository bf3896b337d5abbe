package docgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/converter"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
	"github.com/goliatone/go-docgen/pkg/project"
	"github.com/goliatone/go-docgen/pkg/render"
)

// Project is the language-neutral documentation model produced by converters;
// alias exported via the root package for convenience.
type Project = project.Project

// Package describes one documented package inside a Project.
type Package = project.Package

// Diagnostic carries a non-fatal conversion problem alongside the model.
type Diagnostic = project.Diagnostic

// RenderOptions aliases render.RenderOptions for callers building custom
// renderers.
type RenderOptions = render.RenderOptions

// ThemeConfig aliases render.ThemeConfig, the resolved theme handed to
// renderers.
type ThemeConfig = render.ThemeConfig

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so embedders do not have to import the orchestrator package.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Run parses command-line style arguments and executes the full generation
// pipeline. It is the entry point the docgen binary uses.
func Run(ctx context.Context, args []string, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.Run(ctx, args)
}

// Generate converts the given inputs and renders documentation into outputDir,
// bypassing command-line parsing while still delegating to the orchestrator.
func Generate(ctx context.Context, inputFiles []string, outputDir string, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, inputFiles, outputDir)
}

// WithConverter overrides the source converter used by the pipeline.
func WithConverter(conv converter.Converter) orchestrator.Option {
	return orchestrator.WithConverter(conv)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
