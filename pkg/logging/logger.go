package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level orders log severities for filtering. The ordering is only used to
// suppress Verbose messages when verbose output is disabled.
type Level int

const (
	LevelVerbose Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Option customises a Logger at construction time.
type Option func(*Logger)

// WithWriter redirects log output away from os.Stdout. Tests use this to
// capture messages.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.out = w
		}
	}
}

// WithVerbose enables emission of Verbose-level messages.
func WithVerbose(verbose bool) Option {
	return func(l *Logger) {
		l.verbose = verbose
	}
}

// WithoutColor disables the styled severity prefixes, leaving plain text.
func WithoutColor() Option {
	return func(l *Logger) {
		l.plain = true
	}
}

// Logger is the shared message sink for one documentation run. It tracks
// whether any Error-level message has been logged so the caller can decide
// the final run status. Logging never fails and never aborts the run.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	verbose   bool
	plain     bool
	hasErrors bool
}

// New constructs a Logger writing to os.Stdout unless overridden.
func New(options ...Option) *Logger {
	l := &Logger{out: os.Stdout}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Log writes message at the given level. Verbose messages are dropped unless
// verbose output is enabled; every other level is always written. An
// Error-level message permanently marks the run as failed.
func (l *Logger) Log(message string, level Level) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if level == LevelError {
		l.hasErrors = true
	}
	if level == LevelVerbose && !l.verbose {
		return
	}

	fmt.Fprintln(l.out, l.decorate(message, level))
}

// Verbose logs a formatted message at Verbose level.
func (l *Logger) Verbose(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), LevelVerbose)
}

// Info logs a formatted message at Info level.
func (l *Logger) Info(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), LevelInfo)
}

// Warn logs a formatted message at Warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), LevelWarn)
}

// Error logs a formatted message at Error level and marks the run as failed.
func (l *Logger) Error(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), LevelError)
}

// HasErrors reports whether any Error-level message has been logged. The flag
// is sticky for the lifetime of the Logger.
func (l *Logger) HasErrors() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasErrors
}

// SetVerbose toggles verbose output after construction, typically once
// settings have been parsed.
func (l *Logger) SetVerbose(verbose bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

func (l *Logger) decorate(message string, level Level) string {
	switch level {
	case LevelWarn:
		prefix := "warning:"
		if !l.plain {
			prefix = warnStyle.Render(prefix)
		}
		return prefix + " " + message
	case LevelError:
		prefix := "error:"
		if !l.plain {
			prefix = errorStyle.Render(prefix)
		}
		return prefix + " " + message
	default:
		return message
	}
}
