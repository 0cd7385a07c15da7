package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Enum is an enum declaration.  Its members are Var declarations, one per
// enum entry.
type Enum struct {
	body
	name    string
	IsConst bool
	cp      qname.QName
	loc     qname.QName
}

// NewEnum constructs an enum with the given entries.
func NewEnum(name string, members ...Decl) *Enum {
	return &Enum{body: newBody(members), name: name}
}

// Kind implements part of the Decl interface.
func (d *Enum) Kind() Kind { return KindEnum }

// Name implements part of the Decl interface.
func (d *Enum) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *Enum) CodePath() qname.QName { return d.cp }

// JsLocation implements the Located interface.
func (d *Enum) JsLocation() qname.QName { return d.loc }

// WithCodePath implements part of the Decl interface.
func (d *Enum) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Enum) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithMembers implements part of the Container interface.
func (d *Enum) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}

// WithJsLocation returns a copy at the given runtime location.
func (d *Enum) WithJsLocation(loc qname.QName) *Enum {
	c := *d
	c.loc = loc
	return &c
}
