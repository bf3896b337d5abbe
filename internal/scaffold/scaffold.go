// Package scaffold implements the interactive `docgen init` flow: a short
// prompt sequence that writes a starter docgen.yaml. The prompt driver is an
// interface so the flow can be tested without a real terminal.
package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/emitter"
)

// Prompter abstracts the interactive prompts so tests can script answers.
type Prompter interface {
	Input(message, defaultValue string) (string, error)
	Select(message string, options []string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter on top of AlecAivazis/survey.
type SurveyPrompter struct{}

func (SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (SurveyPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	var answer string
	prompt := &survey.Select{Message: message, Options: options, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// Option customises the init flow.
type Option func(*config)

type config struct {
	path     string
	prompter Prompter
	emitter  *emitter.Emitter
}

// WithPath overrides the config file destination (default docgen.yaml).
func WithPath(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.path = path
		}
	}
}

// WithPrompter injects a scripted prompter for tests.
func WithPrompter(p Prompter) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.prompter = p
		}
	}
}

// WithEmitter injects the file emitter used to write the config.
func WithEmitter(em *emitter.Emitter) Option {
	return func(cfg *config) {
		if em != nil {
			cfg.emitter = em
		}
	}
}

// starterConfig mirrors the config file surface the settings package reads.
type starterConfig struct {
	Inputs   []string `yaml:"inputs"`
	Out      string   `yaml:"out"`
	Renderer string   `yaml:"renderer"`
	Theme    string   `yaml:"theme,omitempty"`
	Verbose  bool     `yaml:"verbose"`
}

// Run asks for the essential settings and writes them as YAML. Unlike the
// generation pipeline, a failed write here is a hard error: the whole point
// of init is the file.
func Run(options ...Option) error {
	cfg := config{
		path:     "docgen.yaml",
		prompter: SurveyPrompter{},
		emitter:  emitter.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	inputs, err := cfg.prompter.Input("Source files or directories (space separated):", "./...")
	if err != nil {
		return fmt.Errorf("scaffold: read inputs: %w", err)
	}
	out, err := cfg.prompter.Input("Output directory:", "./docs")
	if err != nil {
		return fmt.Errorf("scaffold: read output directory: %w", err)
	}
	renderer, err := cfg.prompter.Select("Renderer:", []string{"markdown", "html"}, "markdown")
	if err != nil {
		return fmt.Errorf("scaffold: read renderer: %w", err)
	}
	themeName := ""
	if renderer == "html" {
		themeName, err = cfg.prompter.Input("Theme name (empty for none):", "")
		if err != nil {
			return fmt.Errorf("scaffold: read theme: %w", err)
		}
	}
	verbose, err := cfg.prompter.Confirm("Enable verbose logging?", false)
	if err != nil {
		return fmt.Errorf("scaffold: read verbose: %w", err)
	}

	starter := starterConfig{
		Inputs:   strings.Fields(inputs),
		Out:      strings.TrimSpace(out),
		Renderer: renderer,
		Theme:    strings.TrimSpace(themeName),
		Verbose:  verbose,
	}
	if len(starter.Inputs) == 0 {
		return errors.New("scaffold: at least one input is required")
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("scaffold: marshal config: %w", err)
	}

	var writeErr error
	cfg.emitter.WriteFile(cfg.path, data, false, func(msg string) {
		writeErr = errors.New(msg)
	})
	if writeErr != nil {
		return fmt.Errorf("scaffold: write %s: %w", cfg.path, writeErr)
	}
	return nil
}
