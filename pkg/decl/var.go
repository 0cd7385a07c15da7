package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Var is a variable declaration (also used for enum entries and object
// properties).
type Var struct {
	name     string
	Type     Type
	ReadOnly bool
	cp       qname.QName
	loc      qname.QName
}

// NewVar constructs a variable of the given type.
func NewVar(name string, typ Type) *Var {
	return &Var{name: name, Type: typ}
}

// Kind implements part of the Decl interface.
func (d *Var) Kind() Kind { return KindVar }

// Name implements part of the Decl interface.
func (d *Var) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *Var) CodePath() qname.QName { return d.cp }

// JsLocation implements the Located interface.
func (d *Var) JsLocation() qname.QName { return d.loc }

// WithCodePath implements part of the Decl interface.
func (d *Var) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Var) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithJsLocation returns a copy at the given runtime location.
func (d *Var) WithJsLocation(loc qname.QName) *Var {
	c := *d
	c.loc = loc
	return &c
}
