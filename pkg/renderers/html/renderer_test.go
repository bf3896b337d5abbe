package html_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docgen/pkg/emitter"
	"github.com/goliatone/go-docgen/pkg/project"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/html"
)

func sampleProject() *project.Project {
	return &project.Project{
		Name: "sample",
		Packages: []project.Package{
			{
				Name:       "greeter",
				ImportPath: "example.com/greeter",
				Doc:        "Package greeter says hello.\n\nSecond paragraph.",
				Functions: []project.Function{
					{
						Name:      "Shout",
						Signature: "func Shout(name string) string",
						Doc:       "Shout returns an upper-cased greeting.",
					},
				},
			},
		},
	}
}

func TestRenderer_WritesPagesAndIndex(t *testing.T) {
	out := t.TempDir()

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	err = renderer.Render(context.Background(), sampleProject(), out, render.RenderOptions{
		Emitter: emitter.New(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), `<a href="example-com-greeter.html">`) {
		t.Fatalf("index missing package link:\n%s", index)
	}

	page, err := os.ReadFile(filepath.Join(out, "example-com-greeter.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	for _, want := range []string{
		"package greeter",
		"<p>Package greeter says hello.</p>",
		"<p>Second paragraph.</p>",
		"func Shout(name string) string",
	} {
		if !strings.Contains(string(page), want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
}

func TestRenderer_SanitizesDocHTML(t *testing.T) {
	out := t.TempDir()

	proj := sampleProject()
	proj.Packages[0].Doc = `Package greeter says hello. <script>alert("x")</script><em>emphasis</em>`

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if err := renderer.Render(context.Background(), proj, out, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(out, "example-com-greeter.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if strings.Contains(string(page), "<script>") {
		t.Fatalf("script tag must be stripped:\n%s", page)
	}
	if !strings.Contains(string(page), "<em>emphasis</em>") {
		t.Fatalf("benign markup must survive:\n%s", page)
	}
}

func TestRenderer_AppliesThemeConfig(t *testing.T) {
	out := t.TempDir()

	theme := &render.ThemeConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{"--brand": "#123456"},
		AssetURL: func(key string) string {
			if key == "html.stylesheet" {
				return "/assets/themes/acme/theme.css"
			}
			return ""
		},
	}

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	err = renderer.Render(context.Background(), sampleProject(), out, render.RenderOptions{Theme: theme})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(page), "--brand: #123456") {
		t.Fatalf("css vars missing:\n%s", page)
	}
	if !strings.Contains(string(page), `href="/assets/themes/acme/theme.css"`) {
		t.Fatalf("stylesheet link missing:\n%s", page)
	}
}

func TestRenderer_NoThemeNoStyleBlock(t *testing.T) {
	out := t.TempDir()

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if err := renderer.Render(context.Background(), sampleProject(), out, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if strings.Contains(string(page), "<style>") {
		t.Fatalf("unexpected style block without theme:\n%s", page)
	}
}
