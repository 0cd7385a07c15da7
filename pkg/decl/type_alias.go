package decl

import "github.com/declbridge/declbridge/pkg/qname"

// TypeAlias is a type alias declaration.  It is not a container; its
// right-hand side is a type expression.
type TypeAlias struct {
	name    string
	TParams []TypeParam
	Aliased Type
	cp      qname.QName
}

// NewTypeAlias constructs an alias of the given type.
func NewTypeAlias(name string, aliased Type) *TypeAlias {
	return &TypeAlias{name: name, Aliased: aliased}
}

// Kind implements part of the Decl interface.
func (d *TypeAlias) Kind() Kind { return KindTypeAlias }

// Name implements part of the Decl interface.
func (d *TypeAlias) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *TypeAlias) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *TypeAlias) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *TypeAlias) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithTypeParams returns a copy declaring the given type parameters.
func (d *TypeAlias) WithTypeParams(tparams ...TypeParam) *TypeAlias {
	c := *d
	c.TParams = tparams
	return &c
}
