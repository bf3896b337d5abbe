// Package project defines the in-memory model produced by converters and
// consumed by renderers. The model is plain data so it can be serialized to
// JSON for the optional dump artifact without custom marshalling.
package project

// Project is the root of the documentation model for one run.
type Project struct {
	Name     string    `json:"name"`
	Packages []Package `json:"packages"`
}

// Package documents a single source package.
type Package struct {
	Name       string     `json:"name"`
	ImportPath string     `json:"importPath"`
	Doc        string     `json:"doc,omitempty"`
	Constants  []Value    `json:"constants,omitempty"`
	Variables  []Value    `json:"variables,omitempty"`
	Functions  []Function `json:"functions,omitempty"`
	Types      []Type     `json:"types,omitempty"`
}

// Value documents a const or var declaration group.
type Value struct {
	Names []string `json:"names"`
	Decl  string   `json:"decl"`
	Doc   string   `json:"doc,omitempty"`
}

// Function documents a package-level function or a method.
type Function struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Doc       string `json:"doc,omitempty"`
}

// Type documents a named type with any associated methods and grouped
// declarations.
type Type struct {
	Name      string     `json:"name"`
	Decl      string     `json:"decl"`
	Doc       string     `json:"doc,omitempty"`
	Constants []Value    `json:"constants,omitempty"`
	Variables []Value    `json:"variables,omitempty"`
	Functions []Function `json:"functions,omitempty"`
	Methods   []Function `json:"methods,omitempty"`
}

// Diagnostic records a problem found while converting source input. Converters
// route diagnostics through the shared logger as they are produced; the slice
// on the conversion result exists for callers that want to inspect them
// programmatically.
type Diagnostic struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// PackageByImportPath returns the package with the given import path, if any.
func (p *Project) PackageByImportPath(importPath string) (Package, bool) {
	if p == nil {
		return Package{}, false
	}
	for _, pkg := range p.Packages {
		if pkg.ImportPath == importPath {
			return pkg, true
		}
	}
	return Package{}, false
}
