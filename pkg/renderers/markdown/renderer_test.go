package markdown_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docgen/pkg/emitter"
	"github.com/goliatone/go-docgen/pkg/project"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/markdown"
)

func sampleProject() *project.Project {
	return &project.Project{
		Name: "sample",
		Packages: []project.Package{
			{
				Name:       "greeter",
				ImportPath: "example.com/greeter",
				Doc:        "Package greeter says hello. It has more detail.",
				Functions: []project.Function{
					{
						Name:      "Shout",
						Signature: "func Shout(name string) string",
						Doc:       "Shout returns an upper-cased greeting.",
					},
				},
				Types: []project.Type{
					{
						Name: "Greeter",
						Decl: "type Greeter struct {\n\tPrefix string\n}",
						Doc:  "Greeter builds greetings.",
						Methods: []project.Function{
							{
								Name:      "Greet",
								Signature: "func (g *Greeter) Greet(name string) string",
							},
						},
					},
				},
			},
		},
	}
}

func TestRenderer_WritesPackagePagesAndIndex(t *testing.T) {
	out := t.TempDir()

	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	err = renderer.Render(context.Background(), sampleProject(), out, render.RenderOptions{
		Emitter: emitter.New(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "README.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "# sample") {
		t.Fatalf("index missing project heading:\n%s", index)
	}
	if !strings.Contains(string(index), "example-com-greeter.md") {
		t.Fatalf("index missing package link:\n%s", index)
	}
	if !strings.Contains(string(index), "Package greeter says hello.") {
		t.Fatalf("index missing synopsis:\n%s", index)
	}

	page, err := os.ReadFile(filepath.Join(out, "example-com-greeter.md"))
	if err != nil {
		t.Fatalf("read package page: %v", err)
	}
	for _, want := range []string{
		"# package greeter",
		"`import \"example.com/greeter\"`",
		"### func Shout",
		"func Shout(name string) string",
		"### type Greeter",
		"func (g *Greeter) Greet(name string) string",
	} {
		if !strings.Contains(string(page), want) {
			t.Fatalf("package page missing %q:\n%s", want, page)
		}
	}
}

func TestRenderer_CreatesMissingOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deep", "docs")

	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	err = renderer.Render(context.Background(), sampleProject(), out, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "README.md")); err != nil {
		t.Fatalf("expected index in created directory: %v", err)
	}
}

func TestRenderer_NameAndContentType(t *testing.T) {
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "markdown" {
		t.Fatalf("name: %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/markdown") {
		t.Fatalf("content type: %q", renderer.ContentType())
	}
}

func TestRenderer_RequiresProject(t *testing.T) {
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if err := renderer.Render(context.Background(), nil, t.TempDir(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil project")
	}
}
