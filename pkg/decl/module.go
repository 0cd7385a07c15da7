package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Module is an ambient module declaration (`declare module "spec" {...}`).
// Its name is the module specifier.
type Module struct {
	body
	specifier string
	cp        qname.QName
	loc       qname.QName
}

// NewModule constructs a module for the given specifier.
func NewModule(specifier string, members ...Decl) *Module {
	return &Module{body: newBody(members), specifier: specifier}
}

// Specifier is the module specifier string, e.g. "lib" or "@scope/lib/sub".
func (d *Module) Specifier() string { return d.specifier }

// Kind implements part of the Decl interface.
func (d *Module) Kind() Kind { return KindModule }

// Name implements part of the Decl interface.
func (d *Module) Name() string { return d.specifier }

// CodePath implements part of the Decl interface.
func (d *Module) CodePath() qname.QName { return d.cp }

// JsLocation implements the Located interface.
func (d *Module) JsLocation() qname.QName { return d.loc }

// WithCodePath implements part of the Decl interface.
func (d *Module) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Module) WithName(name string) Decl {
	c := *d
	c.specifier = name
	return &c
}

// WithMembers implements part of the Container interface.
func (d *Module) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}

// WithJsLocation returns a copy at the given runtime location.
func (d *Module) WithJsLocation(loc qname.QName) *Module {
	c := *d
	c.loc = loc
	return &c
}
