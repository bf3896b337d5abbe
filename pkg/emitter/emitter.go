// Package emitter writes generated artifacts to disk, creating any missing
// ancestor directories along the way. Failures never propagate: callers that
// care pass an error callback, everyone else gets best-effort semantics so a
// broken secondary artifact cannot abort the primary pipeline.
package emitter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Option customises an Emitter before construction.
type Option func(*Emitter)

// WithStat injects the existence check used when ensuring directories. Tests
// use this to count filesystem probes.
func WithStat(stat func(string) (fs.FileInfo, error)) Option {
	return func(e *Emitter) {
		if stat != nil {
			e.stat = stat
		}
	}
}

// WithMkdir injects the directory-creation call.
func WithMkdir(mkdir func(string) error) Option {
	return func(e *Emitter) {
		if mkdir != nil {
			e.mkdir = mkdir
		}
	}
}

// WithWrite injects the file-write call.
func WithWrite(write func(string, []byte) error) Option {
	return func(e *Emitter) {
		if write != nil {
			e.write = write
		}
	}
}

// Emitter writes files while memoizing which output directories are known to
// exist. The cache is scoped to the instance so tests and independent runs
// stay isolated; it is append-only and never invalidated, trading a small
// staleness window against repeated stat calls for sibling outputs.
type Emitter struct {
	mu    sync.Mutex
	dirs  map[string]bool
	stat  func(string) (fs.FileInfo, error)
	mkdir func(string) error
	write func(string, []byte) error
}

// New constructs an Emitter backed by the real filesystem unless overridden.
func New(options ...Option) *Emitter {
	e := &Emitter{
		dirs: make(map[string]bool),
		stat: os.Stat,
		mkdir: func(path string) error {
			return os.Mkdir(path, 0o755)
		},
		write: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// WriteFile writes data to path, creating missing ancestor directories first.
// When withBOM is true the UTF-8 byte-order mark is prepended. Any failure is
// reported through onError when non-nil and otherwise swallowed; WriteFile
// itself never returns an error and never panics.
func (e *Emitter) WriteFile(path string, data []byte, withBOM bool, onError func(string)) {
	abs, err := filepath.Abs(path)
	if err != nil {
		report(onError, fmt.Sprintf("resolve %s: %v", path, err))
		return
	}

	e.mu.Lock()
	err = e.ensureDir(filepath.Dir(abs))
	e.mu.Unlock()
	if err != nil {
		report(onError, fmt.Sprintf("create directories for %s: %v", abs, err))
		return
	}

	payload := data
	if withBOM {
		payload = make([]byte, 0, len(utf8BOM)+len(data))
		payload = append(payload, utf8BOM...)
		payload = append(payload, data...)
	}

	if err := e.write(abs, payload); err != nil {
		report(onError, fmt.Sprintf("write %s: %v", abs, err))
	}
}

// ensureDir guarantees dir and all its ancestors exist, walking upward only
// as far as necessary. Every directory confirmed or created is cached, so a
// cache hit stops the ascent immediately. Callers hold e.mu.
func (e *Emitter) ensureDir(dir string) error {
	// Stop once the candidate is no longer than the volume root; ascending
	// further would loop forever on "/" or "C:\".
	if len(dir) <= len(filepath.VolumeName(dir))+1 {
		return nil
	}
	if e.dirs[dir] {
		return nil
	}

	info, err := e.stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		e.dirs[dir] = true
		return nil
	}

	if err := e.ensureDir(filepath.Dir(dir)); err != nil {
		return err
	}
	if err := e.mkdir(dir); err != nil {
		return err
	}
	e.dirs[dir] = true
	return nil
}

func report(onError func(string), message string) {
	if onError != nil {
		onError(message)
	}
}
