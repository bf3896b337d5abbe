// Package markdown renders a project model into Markdown pages, one per
// package plus an index, using embedded pongo2 templates.
package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-docgen/pkg/emitter"
	"github.com/goliatone/go-docgen/pkg/project"
	"github.com/goliatone/go-docgen/pkg/render"
	rendertemplate "github.com/goliatone/go-docgen/pkg/render/template"
	"github.com/goliatone/go-docgen/pkg/render/template/gotemplate"
)

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits Markdown documentation.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Markdown renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: configure template engine: %w", err)
		}
		engine = built
	}

	return &Renderer{templates: engine}, nil
}

func (r *Renderer) Name() string {
	return "markdown"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// packageView augments a package with fields templates need for navigation.
type packageView struct {
	project.Package
	Synopsis string `json:"synopsis"`
	File     string `json:"file"`
}

// Render writes one page per package plus an index file under outputDir. Any
// emitter failure is collected and surfaced as a single error so the caller
// can report it through the run's logger.
func (r *Renderer) Render(ctx context.Context, proj *project.Project, outputDir string, options render.RenderOptions) error {
	if ctx == nil {
		return errors.New("markdown renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if proj == nil {
		return errors.New("markdown renderer: project is required")
	}
	if r.templates == nil {
		return errors.New("markdown renderer: template engine is nil")
	}

	em := options.Emitter
	if em == nil {
		em = emitter.New()
	}

	var failures []string
	collect := func(msg string) {
		failures = append(failures, msg)
	}

	views := make([]packageView, 0, len(proj.Packages))
	for _, pkg := range proj.Packages {
		views = append(views, packageView{
			Package:  pkg,
			Synopsis: synopsis(pkg.Doc),
			File:     pageName(pkg.ImportPath),
		})
	}

	for _, view := range views {
		page, err := r.templates.RenderTemplate("templates/package", map[string]any{"pkg": view})
		if err != nil {
			return fmt.Errorf("markdown renderer: render package %s: %w", view.ImportPath, err)
		}
		em.WriteFile(filepath.Join(outputDir, view.File), []byte(page), false, collect)
	}

	index, err := r.templates.RenderTemplate("templates/index", map[string]any{
		"project":  proj,
		"packages": views,
	})
	if err != nil {
		return fmt.Errorf("markdown renderer: render index: %w", err)
	}
	em.WriteFile(filepath.Join(outputDir, "README.md"), []byte(index), false, collect)

	if len(failures) > 0 {
		return fmt.Errorf("markdown renderer: write output: %s", strings.Join(failures, "; "))
	}
	return nil
}

// pageName maps an import path to a flat, link-safe file name.
func pageName(importPath string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(importPath) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "package"
	}
	return name + ".md"
}

// synopsis returns the first sentence of a doc comment.
func synopsis(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	if idx := strings.IndexAny(doc, ".\n"); idx >= 0 {
		return strings.TrimSpace(doc[:idx+1])
	}
	return doc
}
