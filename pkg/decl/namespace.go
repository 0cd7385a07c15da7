package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Namespace is a namespace declaration.
type Namespace struct {
	body
	name string
	cp   qname.QName
	loc  qname.QName
}

// NewNamespace constructs a namespace with the given members.
func NewNamespace(name string, members ...Decl) *Namespace {
	return &Namespace{body: newBody(members), name: name}
}

// Kind implements part of the Decl interface.
func (d *Namespace) Kind() Kind { return KindNamespace }

// Name implements part of the Decl interface.
func (d *Namespace) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *Namespace) CodePath() qname.QName { return d.cp }

// JsLocation implements the Located interface.
func (d *Namespace) JsLocation() qname.QName { return d.loc }

// WithCodePath implements part of the Decl interface.
func (d *Namespace) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Namespace) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithMembers implements part of the Container interface.
func (d *Namespace) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}

// WithJsLocation returns a copy at the given runtime location.
func (d *Namespace) WithJsLocation(loc qname.QName) *Namespace {
	c := *d
	c.loc = loc
	return &c
}
