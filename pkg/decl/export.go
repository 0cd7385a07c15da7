package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Export is an export statement.
type Export struct {
	Form     ExportForm
	TypeOnly bool
	cp       qname.QName
}

// NewExport constructs an export statement of the given form.
func NewExport(form ExportForm) *Export {
	return &Export{Form: form}
}

// Kind implements part of the Decl interface.
func (d *Export) Kind() Kind { return KindExport }

// Name implements part of the Decl interface.  Export statements are
// unnamed.
func (d *Export) Name() string { return "" }

// CodePath implements part of the Decl interface.
func (d *Export) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *Export) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Export) WithName(string) Decl { return d }

// ExportForm is one export statement form: a concrete declaration tree, a
// named list (optionally from another module), or a wildcard re-export.
type ExportForm interface {
	isExportForm()
}

// ExportTree is `export <declaration>`.
type ExportTree struct {
	Decl Decl
}

func (*ExportTree) isExportForm() {}

// ExportNames is `export { a, b as c } [from "specifier"]`.
type ExportNames struct {
	Names []Binding
	// From is the source specifier, "" for a local export list.
	From string
}

func (*ExportNames) isExportForm() {}

// ExportStar is `export * [as alias] from "specifier"`.
type ExportStar struct {
	// Alias is the namespace alias, "" for a plain wildcard.
	Alias string
	From  string
}

func (*ExportStar) isExportForm() {}
