package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Func is a function declaration.
type Func struct {
	name string
	Sig  *Sig
	cp   qname.QName
	loc  qname.QName
}

// NewFunc constructs a function with the given signature.
func NewFunc(name string, sig *Sig) *Func {
	return &Func{name: name, Sig: sig}
}

// Kind implements part of the Decl interface.
func (d *Func) Kind() Kind { return KindFunc }

// Name implements part of the Decl interface.
func (d *Func) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *Func) CodePath() qname.QName { return d.cp }

// JsLocation implements the Located interface.
func (d *Func) JsLocation() qname.QName { return d.loc }

// WithCodePath implements part of the Decl interface.
func (d *Func) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Func) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithJsLocation returns a copy at the given runtime location.
func (d *Func) WithJsLocation(loc qname.QName) *Func {
	c := *d
	c.loc = loc
	return &c
}
