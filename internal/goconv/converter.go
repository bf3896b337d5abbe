// Package goconv implements the converter contract on top of the Go
// toolchain's parser. Source files are parsed per directory, grouped into
// packages, and distilled into the project model via go/doc.
package goconv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-docgen/pkg/converter"
	"github.com/goliatone/go-docgen/pkg/logging"
	"github.com/goliatone/go-docgen/pkg/project"
)

// Option customises the converter.
type Option func(*Converter)

// WithProjectName overrides the name recorded on the generated project model.
func WithProjectName(name string) Option {
	return func(c *Converter) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			c.projectName = trimmed
		}
	}
}

// WithTestFiles includes _test.go files in the conversion. They are skipped
// by default because test-only symbols rarely belong in rendered docs.
func WithTestFiles(include bool) Option {
	return func(c *Converter) {
		c.includeTests = include
	}
}

// Converter parses Go source into a project model. Problems with individual
// files become diagnostics routed through the shared logger; conversion keeps
// going and returns whatever partial model was built.
type Converter struct {
	logger       *logging.Logger
	projectName  string
	includeTests bool
}

var _ converter.Converter = (*Converter)(nil)

// New constructs a Converter that reports diagnostics through logger.
func New(logger *logging.Logger, options ...Option) *Converter {
	c := &Converter{
		logger:      logger,
		projectName: "documentation",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Convert parses the input files and directories into a project model. The
// only hard failures are a cancelled context and an empty input list; every
// per-file problem is recorded as a diagnostic instead.
func (c *Converter) Convert(ctx context.Context, inputFiles []string) (converter.Result, error) {
	result := converter.Result{Project: &project.Project{Name: c.projectName}}

	if ctx == nil {
		return result, errors.New("goconv: context is required")
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(inputFiles) == 0 {
		return result, errors.New("goconv: no input files")
	}

	groups := c.collect(inputFiles, &result)

	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	fset := token.NewFileSet()
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		c.convertDir(fset, dir, groups[dir], &result)
	}

	return result, nil
}

// collect expands the input arguments into per-directory file groups,
// recording a diagnostic for anything unreadable.
func (c *Converter) collect(inputs []string, result *converter.Result) map[string][]string {
	groups := make(map[string][]string)

	add := func(path string) {
		if !c.includeTests && strings.HasSuffix(path, "_test.go") {
			return
		}
		dir := filepath.Dir(path)
		groups[dir] = append(groups[dir], path)
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			c.diagnose(result, input, logging.LevelError, "cannot read input: %v", err)
			continue
		}

		if !info.IsDir() {
			add(input)
			continue
		}

		entries, err := os.ReadDir(input)
		if err != nil {
			c.diagnose(result, input, logging.LevelError, "cannot list directory: %v", err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
				continue
			}
			add(filepath.Join(input, entry.Name()))
		}
	}

	for dir := range groups {
		sort.Strings(groups[dir])
	}
	return groups
}

// convertDir parses one directory's files and appends the resulting packages
// to the project. Files that fail to parse are skipped with a diagnostic.
func (c *Converter) convertDir(fset *token.FileSet, dir string, paths []string, result *converter.Result) {
	byPackage := make(map[string][]*ast.File)
	var names []string

	for _, path := range paths {
		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			c.diagnose(result, path, logging.LevelError, "parse failed: %v", err)
			continue
		}
		name := file.Name.Name
		if _, seen := byPackage[name]; !seen {
			names = append(names, name)
		}
		byPackage[name] = append(byPackage[name], file)
	}

	sort.Strings(names)
	for _, name := range names {
		importPath := filepath.ToSlash(dir)
		docPkg, err := doc.NewFromFiles(fset, byPackage[name], importPath)
		if err != nil {
			c.diagnose(result, dir, logging.LevelError, "document package %s: %v", name, err)
			continue
		}
		result.Project.Packages = append(result.Project.Packages, buildPackage(fset, docPkg))
	}
}

func (c *Converter) diagnose(result *converter.Result, file string, severity logging.Level, format string, args ...any) {
	message := file + ": " + fmt.Sprintf(format, args...)
	result.Diagnostics = append(result.Diagnostics, project.Diagnostic{
		File:     file,
		Message:  message,
		Severity: severity.String(),
	})
	c.logger.Log(message, severity)
}

func buildPackage(fset *token.FileSet, docPkg *doc.Package) project.Package {
	pkg := project.Package{
		Name:       docPkg.Name,
		ImportPath: docPkg.ImportPath,
		Doc:        strings.TrimSpace(docPkg.Doc),
	}

	for _, value := range docPkg.Consts {
		pkg.Constants = append(pkg.Constants, buildValue(fset, value))
	}
	for _, value := range docPkg.Vars {
		pkg.Variables = append(pkg.Variables, buildValue(fset, value))
	}
	for _, fn := range docPkg.Funcs {
		pkg.Functions = append(pkg.Functions, buildFunction(fset, fn))
	}
	for _, typ := range docPkg.Types {
		pkg.Types = append(pkg.Types, buildType(fset, typ))
	}

	return pkg
}

func buildValue(fset *token.FileSet, value *doc.Value) project.Value {
	decl := *value.Decl
	decl.Doc = nil
	return project.Value{
		Names: append([]string(nil), value.Names...),
		Decl:  printNode(fset, &decl),
		Doc:   strings.TrimSpace(value.Doc),
	}
}

func buildFunction(fset *token.FileSet, fn *doc.Func) project.Function {
	decl := *fn.Decl
	decl.Doc = nil
	decl.Body = nil
	return project.Function{
		Name:      fn.Name,
		Signature: printNode(fset, &decl),
		Doc:       strings.TrimSpace(fn.Doc),
	}
}

func buildType(fset *token.FileSet, typ *doc.Type) project.Type {
	decl := *typ.Decl
	decl.Doc = nil
	out := project.Type{
		Name: typ.Name,
		Decl: printNode(fset, &decl),
		Doc:  strings.TrimSpace(typ.Doc),
	}

	for _, value := range typ.Consts {
		out.Constants = append(out.Constants, buildValue(fset, value))
	}
	for _, value := range typ.Vars {
		out.Variables = append(out.Variables, buildValue(fset, value))
	}
	for _, fn := range typ.Funcs {
		out.Functions = append(out.Functions, buildFunction(fset, fn))
	}
	for _, method := range typ.Methods {
		out.Methods = append(out.Methods, buildFunction(fset, method))
	}

	return out
}

func printNode(fset *token.FileSet, node any) string {
	var buf bytes.Buffer
	cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	if err := cfg.Fprint(&buf, fset, node); err != nil {
		return ""
	}
	return buf.String()
}
