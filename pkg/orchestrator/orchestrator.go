package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/internal/goconv"
	"github.com/goliatone/go-docgen/internal/toolchain"
	"github.com/goliatone/go-docgen/pkg/converter"
	"github.com/goliatone/go-docgen/pkg/emitter"
	"github.com/goliatone/go-docgen/pkg/logging"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/html"
	"github.com/goliatone/go-docgen/pkg/renderers/markdown"
	"github.com/goliatone/go-docgen/pkg/settings"
)

const defaultRendererName = settings.DefaultRenderer

// Option customises the application configuration.
type Option func(*Orchestrator)

// WithLogger injects the shared run logger.
func WithLogger(logger *logging.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSettings injects pre-built settings, bypassing command-line parsing
// defaults.
func WithSettings(s *settings.Settings) Option {
	return func(o *Orchestrator) {
		if s != nil {
			o.settings = s
		}
	}
}

// WithConverter injects a custom source converter.
func WithConverter(c converter.Converter) Option {
	return func(o *Orchestrator) {
		if c != nil {
			o.converter = c
		}
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithEmitter injects the file emitter shared by the JSON dump and any
// renderer that accepts one.
func WithEmitter(em *emitter.Emitter) Option {
	return func(o *Orchestrator) {
		if em != nil {
			o.emitter = em
		}
	}
}

// WithDefaultRenderer overrides the renderer used when settings omit one.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector registers a go-theme selector so theme and variant
// choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks supplies fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// Orchestrator owns the documentation pipeline: settings, conversion, the
// optional model dump, and rendering. Missing dependencies are initialised
// with the built-in implementations so a single constructor call is enough.
type Orchestrator struct {
	logger          *logging.Logger
	settings        *settings.Settings
	converter       converter.Converter
	registry        *render.Registry
	emitter         *emitter.Emitter
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Logger returns the run logger so callers can inspect the error flag.
func (o *Orchestrator) Logger() *logging.Logger {
	return o.logger
}

// Settings returns the active settings.
func (o *Orchestrator) Settings() *settings.Settings {
	return o.settings
}

// Run is the command-line entry point: it parses args into settings, handles
// the help/version/no-input short circuits without generating anything, and
// otherwise drives Generate. When the run finishes without any Error-level
// log message a single success line naming the output directory is logged.
func (o *Orchestrator) Run(ctx context.Context, args []string) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return err
	}

	if err := o.settings.ParseCommandLine(args); err != nil {
		return err
	}
	o.logger.SetVerbose(o.settings.Verbose)

	if o.settings.Help {
		o.logger.Log(o.settings.Usage(), logging.LevelInfo)
		return nil
	}
	if o.settings.PrintVersion {
		version, err := o.ToolchainVersion()
		if err != nil {
			return err
		}
		o.logger.Info("docgen (Go toolchain v%s)", version)
		return nil
	}
	if len(o.settings.InputFiles) == 0 {
		o.logger.Log(o.settings.Usage(), logging.LevelInfo)
		return nil
	}

	outputDir, err := filepath.Abs(o.settings.Out)
	if err != nil {
		return fmt.Errorf("orchestrator: resolve output directory: %w", err)
	}
	o.settings.Out = outputDir

	if version, err := o.ToolchainVersion(); err == nil {
		o.logger.Verbose("using Go toolchain v%s", version)
	}

	if err := o.Generate(ctx, o.settings.InputFiles, outputDir); err != nil {
		return err
	}

	if !o.logger.HasErrors() {
		o.logger.Info("Documentation generated at %s", outputDir)
	}
	return nil
}

// Generate executes the converter → optional JSON dump → renderer sequence.
// Converter diagnostics and renderer failures surface through the shared
// logger rather than aborting the pipeline: rendering always runs on
// whatever model conversion produced, and a failed model dump is invisible
// by design. The returned error covers contract violations only.
func (o *Orchestrator) Generate(ctx context.Context, inputFiles []string, outputDir string) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return err
		}
	}

	result, err := o.converter.Convert(ctx, inputFiles)
	if err != nil {
		return fmt.Errorf("orchestrator: convert input: %w", err)
	}

	if o.settings.JSON != "" {
		o.writeModelDump(o.settings.JSON, result)
	}

	renderer, err := o.rendererFor(o.settings.Renderer)
	if err != nil {
		return err
	}

	options := render.RenderOptions{
		Emitter: o.emitter,
		Theme:   o.resolveTheme(),
	}

	if err := renderer.Render(ctx, result.Project, outputDir, options); err != nil {
		o.logger.Error("render output: %v", err)
	}
	return nil
}

// ToolchainVersion reports the semantic version of the Go toolchain backing
// the converter. Failure is fatal for this call only; callers needing
// resilience wrap it.
func (o *Orchestrator) ToolchainVersion() (string, error) {
	return toolchain.Version()
}

// writeModelDump serializes the project model as tab-indented JSON and hands
// it to the emitter with no error handler: a broken secondary artifact must
// never abort the primary pipeline.
func (o *Orchestrator) writeModelDump(path string, result converter.Result) {
	data, err := json.MarshalIndent(result.Project, "", "\t")
	if err != nil {
		return
	}
	o.emitter.WriteFile(path, data, false, nil)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = logging.New()
	}
	if o.settings == nil {
		o.settings = settings.New()
	}
	if o.emitter == nil {
		o.emitter = emitter.New()
	}
	if o.converter == nil {
		o.converter = goconv.New(o.logger)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()

		md, err := markdown.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(md)
		}

		pages, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: html renderer: %w", err)
		} else {
			o.registry.MustRegister(pages)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
