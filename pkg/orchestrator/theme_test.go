package orchestrator

import (
	"io"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/logging"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
			"ink":   "#000000",
		},
		Templates: map[string]string{
			"docs.header": "themes/acme/header.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"html.stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"docs.footer": "themes/acme/dark/footer.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"html.vendor": "vendor.dark.js",
					},
				},
			},
		},
	}
}

func TestThemeConfigFromSelection_MergesVariantData(t *testing.T) {
	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	}
	fallbacks := map[string]string{
		"docs.header": "fallback/header.tmpl",
		"docs.nav":    "fallback/nav.tmpl",
	}

	cfg := themeConfigFromSelection(selection, fallbacks)
	if cfg == nil {
		t.Fatalf("expected theme config")
	}

	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("selection identity: %+v", cfg)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token must win, got %q", cfg.Tokens["brand"])
	}
	if cfg.Tokens["ink"] != "#000000" {
		t.Fatalf("base token must survive, got %q", cfg.Tokens["ink"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from merged tokens: %q", cfg.CSSVars["--brand"])
	}
	if cfg.Partials["docs.header"] != "themes/acme/header.tmpl" {
		t.Fatalf("manifest partial must win over fallback: %q", cfg.Partials["docs.header"])
	}
	if cfg.Partials["docs.footer"] != "themes/acme/dark/footer.tmpl" {
		t.Fatalf("variant partial missing: %q", cfg.Partials["docs.footer"])
	}
	if cfg.Partials["docs.nav"] != "fallback/nav.tmpl" {
		t.Fatalf("fallback partial missing: %q", cfg.Partials["docs.nav"])
	}
	if got := cfg.AssetURL("html.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("stylesheet asset url: %q", got)
	}
	if got := cfg.AssetURL("html.vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("variant asset url: %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset must resolve empty, got %q", got)
	}
}

func TestThemeConfigFromSelection_NilInputs(t *testing.T) {
	if cfg := themeConfigFromSelection(nil, nil); cfg != nil {
		t.Fatalf("nil selection must yield nil config")
	}
	if cfg := themeConfigFromSelection(&theme.Selection{Theme: "bare"}, nil); cfg != nil {
		t.Fatalf("selection without manifest must yield nil config")
	}
}

func TestResolveTheme_SelectorReceivesSettings(t *testing.T) {
	selector := &stubThemeSelector{
		selection: &theme.Selection{
			Theme:    "acme",
			Variant:  "dark",
			Manifest: acmeManifest(),
		},
	}

	app := New(WithThemeSelector(selector), WithLogger(quietLogger()))
	app.settings.Theme = "acme"
	app.settings.ThemeVariant = "dark"

	cfg := app.resolveTheme()
	if cfg == nil {
		t.Fatalf("expected theme config")
	}
	if len(selector.calls) != 1 {
		t.Fatalf("expected one selector call, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}
}

func TestResolveTheme_NoSelectorWarnsAndDegrades(t *testing.T) {
	app := New(WithLogger(quietLogger()))
	app.settings.Theme = "acme"

	if cfg := app.resolveTheme(); cfg != nil {
		t.Fatalf("expected nil config without a selector")
	}
}

func quietLogger() *logging.Logger {
	return logging.New(logging.WithWriter(io.Discard), logging.WithoutColor())
}
