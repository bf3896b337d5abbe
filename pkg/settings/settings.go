// Package settings owns command-line and config-file parsing for a docgen
// run. The application reads the parsed fields; nothing here triggers
// generation.
package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultOut is the output directory used when none is configured.
const DefaultOut = "./docs"

// DefaultRenderer is the renderer used when none is configured.
const DefaultRenderer = "markdown"

// Settings holds the resolved configuration for one run. Fields stay mutable
// for the run's lifetime; the application resolves Out to an absolute path
// before use.
type Settings struct {
	InputFiles   []string
	Out          string
	JSON         string
	Renderer     string
	Theme        string
	ThemeVariant string
	ConfigPath   string
	Verbose      bool
	PrintVersion bool
	Help         bool

	flags *pflag.FlagSet
}

// New constructs Settings with defaults applied.
func New() *Settings {
	return &Settings{
		Out:      DefaultOut,
		Renderer: DefaultRenderer,
	}
}

// ParseCommandLine parses args (without the program name) into the receiver,
// then merges values from an optional config file. Command-line flags win
// over config-file values. A parse or config failure leaves the run aborted
// before any generation happens.
func (s *Settings) ParseCommandLine(args []string) error {
	flags := pflag.NewFlagSet("docgen", pflag.ContinueOnError)
	flags.SortFlags = false
	// Usage is rendered by the application; keep pflag quiet.
	flags.Usage = func() {}

	flags.StringVarP(&s.Out, "out", "o", s.Out, "output directory for generated documentation")
	flags.StringVar(&s.JSON, "json", s.JSON, "also dump the project model as JSON to this path")
	flags.StringVarP(&s.Renderer, "renderer", "r", s.Renderer, "output renderer (markdown|html)")
	flags.StringVar(&s.Theme, "theme", s.Theme, "theme name for themed renderers")
	flags.StringVar(&s.ThemeVariant, "theme-variant", s.ThemeVariant, "theme variant")
	flags.StringVarP(&s.ConfigPath, "config", "c", s.ConfigPath, "path to docgen.yaml or docgen.json")
	flags.BoolVarP(&s.Verbose, "verbose", "v", s.Verbose, "emit verbose log messages")
	flags.BoolVar(&s.PrintVersion, "version", s.PrintVersion, "print version information and exit")
	flags.BoolVarP(&s.Help, "help", "h", s.Help, "print usage and exit")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("settings: parse command line: %w", err)
	}
	s.flags = flags
	s.InputFiles = append(s.InputFiles, flags.Args()...)

	if err := s.mergeConfigFile(); err != nil {
		return err
	}

	return nil
}

// Usage returns the help text for the command-line surface.
func (s *Settings) Usage() string {
	flags := s.flags
	if flags == nil {
		// Build a throwaway flag set so usage is available before parsing.
		clone := New()
		_ = clone.ParseCommandLine(nil)
		flags = clone.flags
	}

	var b strings.Builder
	b.WriteString("usage: docgen [flags] <files-or-dirs...>\n")
	b.WriteString("       docgen init\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(flags.FlagUsages())
	return b.String()
}

// changed reports whether a flag was set explicitly on the command line.
func (s *Settings) changed(name string) bool {
	return s.flags != nil && s.flags.Changed(name)
}
