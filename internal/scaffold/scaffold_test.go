package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type scriptedPrompter struct {
	inputs   []string
	selects  []string
	confirms []bool

	inputErr error
}

func (p *scriptedPrompter) Input(message, defaultValue string) (string, error) {
	if p.inputErr != nil {
		return "", p.inputErr
	}
	if len(p.inputs) == 0 {
		return defaultValue, nil
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func (p *scriptedPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	if len(p.selects) == 0 {
		return defaultValue, nil
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

func (p *scriptedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if len(p.confirms) == 0 {
		return defaultValue, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func TestRunWritesStarterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docgen.yaml")
	prompter := &scriptedPrompter{
		inputs:   []string{"./pkg ./internal", "./site"},
		selects:  []string{"html"},
		confirms: []bool{true},
	}

	if err := Run(WithPath(path), WithPrompter(prompter)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	var got starterConfig
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if len(got.Inputs) != 2 || got.Inputs[0] != "./pkg" || got.Inputs[1] != "./internal" {
		t.Errorf("Inputs = %v, want [./pkg ./internal]", got.Inputs)
	}
	if got.Out != "./site" {
		t.Errorf("Out = %q, want %q", got.Out, "./site")
	}
	if got.Renderer != "html" {
		t.Errorf("Renderer = %q, want %q", got.Renderer, "html")
	}
	if !got.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestRunSkipsThemePromptForMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docgen.yaml")
	prompter := &scriptedPrompter{
		inputs:  []string{"./pkg", "./docs"},
		selects: []string{"markdown"},
	}

	if err := Run(WithPath(path), WithPrompter(prompter)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if strings.Contains(string(data), "theme:") {
		t.Errorf("config contains theme entry without one selected:\n%s", data)
	}
}

func TestRunRequiresInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docgen.yaml")
	prompter := &scriptedPrompter{inputs: []string{"   ", "./docs"}}

	err := Run(WithPath(path), WithPrompter(prompter))
	if err == nil {
		t.Fatal("Run() error = nil, want input requirement error")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("config file written despite failed validation")
	}
}

func TestRunPropagatesPromptErrors(t *testing.T) {
	prompter := &scriptedPrompter{inputErr: errors.New("terminal closed")}

	err := Run(WithPath(filepath.Join(t.TempDir(), "docgen.yaml")), WithPrompter(prompter))
	if err == nil || !strings.Contains(err.Error(), "terminal closed") {
		t.Fatalf("Run() error = %v, want prompt error", err)
	}
}
