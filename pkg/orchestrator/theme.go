package orchestrator

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/render"
)

// resolveTheme turns the configured theme name into the renderer-facing
// config. A missing selector or a failed selection degrades to unthemed
// output with a warning; theme problems never abort a run.
func (o *Orchestrator) resolveTheme() *render.ThemeConfig {
	name := o.settings.Theme
	if name == "" {
		return nil
	}
	if o.themeSelector == nil {
		o.logger.Warn("theme %q requested but no theme selector is configured", name)
		return nil
	}

	selection, err := o.themeSelector.Select(name, o.settings.ThemeVariant)
	if err != nil {
		o.logger.Warn("resolve theme %q: %v", name, err)
		return nil
	}

	return themeConfigFromSelection(selection, o.themeFallbacks)
}

// themeConfigFromSelection merges manifest and variant data into the flat
// view renderers consume: partials (fallbacks < base < variant), tokens,
// derived CSS custom properties, and an asset URL resolver.
func themeConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *render.ThemeConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	var variant theme.Variant
	if manifest.Variants != nil {
		variant = manifest.Variants[selection.Variant]
	}

	partials := make(map[string]string, len(fallbacks)+len(manifest.Templates)+len(variant.Templates))
	for key, value := range fallbacks {
		partials[key] = value
	}
	for key, value := range manifest.Templates {
		partials[key] = value
	}
	for key, value := range variant.Templates {
		partials[key] = value
	}

	tokens := make(map[string]string, len(manifest.Tokens)+len(variant.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	for key, value := range variant.Tokens {
		tokens[key] = value
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	assetFiles := make(map[string]string, len(manifest.Assets.Files)+len(variant.Assets.Files))
	for key, value := range manifest.Assets.Files {
		assetFiles[key] = value
	}
	for key, value := range variant.Assets.Files {
		assetFiles[key] = value
	}
	assetPrefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		assetPrefix = variant.Assets.Prefix
	}

	return &render.ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := assetFiles[key]
			if !ok || file == "" {
				return ""
			}
			if assetPrefix == "" {
				return file
			}
			return strings.TrimRight(assetPrefix, "/") + "/" + file
		},
	}
}
