// Package converter declares the contract between the application and the
// source analysis stage. The built-in Go implementation lives under
// internal/goconv so toolchain details stay out of the public API.
package converter

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/project"
)

// Result wraps the model produced by one conversion together with the
// diagnostics recorded along the way. It has no identity beyond the run that
// produced it.
type Result struct {
	Project     *project.Project
	Diagnostics []project.Diagnostic
}

// Converter turns source input files into a project model. Implementations
// must block until conversion is complete and must route their own warnings
// and errors through the logger shared with the application; callers do not
// re-inspect diagnostics. A converter reports per-file problems as
// diagnostics and keeps going, returning whatever partial model it built.
type Converter interface {
	Convert(ctx context.Context, inputFiles []string) (Result, error)
}
