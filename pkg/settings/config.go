package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/goliatone/go-docgen/schema"
)

// Config file names probed when --config is not given.
var defaultConfigNames = []string{"docgen.yaml", "docgen.yml", "docgen.json"}

// fileConfig mirrors the documented config file surface. JSON files are
// validated against the embedded schema before unmarshalling.
type fileConfig struct {
	Inputs       []string `json:"inputs" yaml:"inputs"`
	Out          string   `json:"out" yaml:"out"`
	JSON         string   `json:"json" yaml:"json"`
	Renderer     string   `json:"renderer" yaml:"renderer"`
	Theme        string   `json:"theme" yaml:"theme"`
	ThemeVariant string   `json:"themeVariant" yaml:"themeVariant"`
	Verbose      *bool    `json:"verbose" yaml:"verbose"`
}

// mergeConfigFile loads the configured (or auto-detected) config file and
// fills in any value the command line did not set explicitly.
func (s *Settings) mergeConfigFile() error {
	path := s.ConfigPath
	if path == "" {
		path = detectConfig()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("settings: read config %s: %w", path, err)
	}

	cfg, err := parseConfig(path, data)
	if err != nil {
		return err
	}

	if len(s.InputFiles) == 0 {
		s.InputFiles = append(s.InputFiles, cfg.Inputs...)
	}
	if !s.changed("out") && cfg.Out != "" {
		s.Out = cfg.Out
	}
	if !s.changed("json") && cfg.JSON != "" {
		s.JSON = cfg.JSON
	}
	if !s.changed("renderer") && cfg.Renderer != "" {
		s.Renderer = cfg.Renderer
	}
	if !s.changed("theme") && cfg.Theme != "" {
		s.Theme = cfg.Theme
	}
	if !s.changed("theme-variant") && cfg.ThemeVariant != "" {
		s.ThemeVariant = cfg.ThemeVariant
	}
	if !s.changed("verbose") && cfg.Verbose != nil {
		s.Verbose = *cfg.Verbose
	}

	return nil
}

func parseConfig(path string, data []byte) (*fileConfig, error) {
	var cfg fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("settings: parse config %s: %w", path, err)
		}
	case ".json":
		if err := validateJSONConfig(data); err != nil {
			return nil, fmt.Errorf("settings: config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("settings: parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("settings: config %s: unsupported extension", path)
	}

	return &cfg, nil
}

func detectConfig() string {
	for _, name := range defaultConfigNames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchema compiles the embedded config schema once per process.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := fs.ReadFile(schemafs.FS, "docgen.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("docgen.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		configSchema, compileErr = compiler.Compile("docgen.schema.json")
	})
	return compileErr
}

// validateJSONConfig validates raw JSON config data against the embedded
// schema.
func validateJSONConfig(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
