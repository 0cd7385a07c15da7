package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Class is a class declaration.
type Class struct {
	body
	name       string
	TParams    []TypeParam
	Parents    []Type
	IsAbstract bool
	cp         qname.QName
	loc        qname.QName
}

// NewClass constructs a class with the given members.
func NewClass(name string, members ...Decl) *Class {
	return &Class{body: newBody(members), name: name}
}

// Kind implements part of the Decl interface.
func (d *Class) Kind() Kind { return KindClass }

// Name implements part of the Decl interface.
func (d *Class) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *Class) CodePath() qname.QName { return d.cp }

// JsLocation implements the Located interface.
func (d *Class) JsLocation() qname.QName { return d.loc }

// WithCodePath implements part of the Decl interface.
func (d *Class) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Class) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithMembers implements part of the Container interface.
func (d *Class) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}

// WithParents returns a copy extending the given parents.
func (d *Class) WithParents(parents ...Type) *Class {
	c := *d
	c.Parents = parents
	return &c
}

// WithTypeParams returns a copy declaring the given type parameters.
func (d *Class) WithTypeParams(tparams ...TypeParam) *Class {
	c := *d
	c.TParams = tparams
	return &c
}

// WithJsLocation returns a copy at the given runtime location.
func (d *Class) WithJsLocation(loc qname.QName) *Class {
	c := *d
	c.loc = loc
	return &c
}
