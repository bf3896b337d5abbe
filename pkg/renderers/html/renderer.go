// Package html renders a project model into themed HTML pages. Doc comments
// may carry raw HTML fragments, so everything injected unescaped runs through
// a bluemonday sanitizer first.
package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

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
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
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

// WithSanitizerPolicy overrides the bluemonday policy applied to doc HTML.
func WithSanitizerPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer emits themed HTML documentation.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		policy:     bluemonday.UGCPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.templateRenderer
	if engine == nil {
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		engine = built
	}

	return &Renderer{templates: engine, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes one page per package plus an index under outputDir.
func (r *Renderer) Render(ctx context.Context, proj *project.Project, outputDir string, options render.RenderOptions) error {
	if ctx == nil {
		return errors.New("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if proj == nil {
		return errors.New("html renderer: project is required")
	}
	if r.templates == nil {
		return errors.New("html renderer: template engine is nil")
	}

	em := options.Emitter
	if em == nil {
		em = emitter.New()
	}

	var failures []string
	collect := func(msg string) {
		failures = append(failures, msg)
	}

	themeCtx := themeContext(options.Theme)

	views := make([]map[string]any, 0, len(proj.Packages))
	for _, pkg := range proj.Packages {
		views = append(views, r.packageView(pkg))
	}

	for _, view := range views {
		page, err := r.templates.RenderTemplate("templates/page", map[string]any{
			"project": proj,
			"pkg":     view,
			"theme":   themeCtx,
		})
		if err != nil {
			return fmt.Errorf("html renderer: render package %v: %w", view["importPath"], err)
		}
		em.WriteFile(filepath.Join(outputDir, view["file"].(string)), []byte(page), false, collect)
	}

	index, err := r.templates.RenderTemplate("templates/index", map[string]any{
		"project":  proj,
		"packages": views,
		"theme":    themeCtx,
	})
	if err != nil {
		return fmt.Errorf("html renderer: render index: %w", err)
	}
	em.WriteFile(filepath.Join(outputDir, "index.html"), []byte(index), false, collect)

	if len(failures) > 0 {
		return fmt.Errorf("html renderer: write output: %s", strings.Join(failures, "; "))
	}
	return nil
}

func (r *Renderer) packageView(pkg project.Package) map[string]any {
	return map[string]any{
		"name":       pkg.Name,
		"importPath": pkg.ImportPath,
		"file":       pageName(pkg.ImportPath),
		"synopsis":   synopsis(pkg.Doc),
		"doc":        pkg.Doc,
		"docHtml":    r.docHTML(pkg.Doc),
		"constants":  r.valueViews(pkg.Constants),
		"variables":  r.valueViews(pkg.Variables),
		"functions":  r.functionViews(pkg.Functions),
		"types":      r.typeViews(pkg.Types),
	}
}

func (r *Renderer) valueViews(values []project.Value) []map[string]any {
	out := make([]map[string]any, 0, len(values))
	for _, value := range values {
		out = append(out, map[string]any{
			"names": value.Names,
			"decl":  value.Decl,
			"doc":   value.Doc,
		})
	}
	return out
}

func (r *Renderer) functionViews(functions []project.Function) []map[string]any {
	out := make([]map[string]any, 0, len(functions))
	for _, fn := range functions {
		out = append(out, map[string]any{
			"name":      fn.Name,
			"signature": fn.Signature,
			"docHtml":   r.docHTML(fn.Doc),
		})
	}
	return out
}

func (r *Renderer) typeViews(types []project.Type) []map[string]any {
	out := make([]map[string]any, 0, len(types))
	for _, typ := range types {
		out = append(out, map[string]any{
			"name":      typ.Name,
			"decl":      typ.Decl,
			"docHtml":   r.docHTML(typ.Doc),
			"constants": r.valueViews(typ.Constants),
			"variables": r.valueViews(typ.Variables),
			"functions": r.functionViews(typ.Functions),
			"methods":   r.functionViews(typ.Methods),
		})
	}
	return out
}

// docHTML turns a doc comment into sanitized HTML paragraphs. Doc text can
// embed markup, so the sanitizer runs after paragraph wrapping rather than a
// plain escape.
func (r *Renderer) docHTML(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}

	var b strings.Builder
	for _, paragraph := range strings.Split(doc, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(paragraph)
		b.WriteString("</p>\n")
	}
	return r.policy.Sanitize(b.String())
}

// themeContext flattens the resolved theme for template consumption. The
// AssetURL resolver cannot survive the JSON conversion inside the template
// engine, so the stylesheet link is resolved here.
func themeContext(cfg *render.ThemeConfig) map[string]any {
	if cfg == nil {
		return nil
	}
	out := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"cssVars": cfg.CSSVars,
		"tokens":  cfg.Tokens,
	}
	if cfg.AssetURL != nil {
		if href := cfg.AssetURL("html.stylesheet"); href != "" {
			out["stylesheet"] = href
		}
	}
	return out
}

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
	return name + ".html"
}

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
