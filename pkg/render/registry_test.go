package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/project"
	"github.com/goliatone/go-docgen/pkg/render"
)

type namedRenderer struct {
	name string
}

func (r namedRenderer) Name() string        { return r.name }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(context.Context, *project.Project, string, render.RenderOptions) error {
	return nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(namedRenderer{name: "markdown"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("markdown")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "markdown" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestRegistry_RejectsDuplicatesAndNil(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(namedRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}

	if err := registry.Register(namedRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(namedRenderer{name: "html"}); err == nil {
		t.Fatalf("expected error for duplicate renderer")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer{name: "markdown"})
	registry.MustRegister(namedRenderer{name: "html"})

	want := []string{"html", "markdown"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
