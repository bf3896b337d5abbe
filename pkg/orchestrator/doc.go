// Package orchestrator wires the settings → converter → model dump →
// renderer pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point. Converter diagnostics and
// renderer failures flow through the shared logger; the only end-of-run
// signal is the success line gated on the logger's error flag.
package orchestrator
