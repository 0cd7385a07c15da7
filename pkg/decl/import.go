package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Import is an import statement.
type Import struct {
	Clauses []Imported
	From    Importee
	cp      qname.QName
}

// NewImport constructs an import of the given clauses from the given source.
func NewImport(from Importee, clauses ...Imported) *Import {
	return &Import{Clauses: clauses, From: from}
}

// Kind implements part of the Decl interface.
func (d *Import) Kind() Kind { return KindImport }

// Name implements part of the Decl interface.  Import statements are
// unnamed.
func (d *Import) Name() string { return "" }

// CodePath implements part of the Decl interface.
func (d *Import) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *Import) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Import) WithName(string) Decl { return d }

// WithClauses returns a copy restricted to the given clauses.
func (d *Import) WithClauses(clauses ...Imported) *Import {
	c := *d
	c.Clauses = clauses
	return &c
}

// Imported is one import clause form: star, identifier, or destructured.
type Imported interface {
	isImported()
}

// ImportedStar is `import * [as Alias]`.
type ImportedStar struct {
	// Alias is the star alias, "" when unaliased.
	Alias string
}

func (*ImportedStar) isImported() {}

// ImportedIdent is `import Name`.
type ImportedIdent struct {
	Ident string
}

func (*ImportedIdent) isImported() {}

// ImportedDestructured is `import { a, b as c }`.
type ImportedDestructured struct {
	Bindings []Binding
}

func (*ImportedDestructured) isImported() {}

// Binding is one (name, optional alias) pair of a destructured clause or a
// named export list.
type Binding struct {
	Name  string
	Alias string
}

// Bound is the locally visible name of the binding.
func (b Binding) Bound() string {
	if b.Alias != "" {
		return b.Alias
	}
	return b.Name
}

// Importee is the import source: a named module, a CommonJS-style require,
// or a local namespace path.
type Importee interface {
	isImportee()
}

// ImporteeFrom is `from "specifier"`.
type ImporteeFrom struct {
	Module string
}

func (*ImporteeFrom) isImportee() {}

// ImporteeRequired is `= require("specifier")`.
type ImporteeRequired struct {
	Module string
}

func (*ImporteeRequired) isImportee() {}

// ImporteeLocal is `= A.B.C`, a local namespace path.
type ImporteeLocal struct {
	Name qname.QName
}

func (*ImporteeLocal) isImportee() {}
