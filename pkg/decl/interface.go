package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Interface is an interface declaration.
type Interface struct {
	body
	name    string
	TParams []TypeParam
	Parents []Type
	cp      qname.QName
}

// NewInterface constructs an interface with the given members.
func NewInterface(name string, members ...Decl) *Interface {
	return &Interface{body: newBody(members), name: name}
}

// IsThin reports whether the interface has exactly one parent and no own
// members, making it safe to inline to that parent.
func (d *Interface) IsThin() bool {
	return len(d.Parents) == 1 && len(d.Members()) == 0
}

// Kind implements part of the Decl interface.
func (d *Interface) Kind() Kind { return KindInterface }

// Name implements part of the Decl interface.
func (d *Interface) Name() string { return d.name }

// CodePath implements part of the Decl interface.
func (d *Interface) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *Interface) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Interface) WithName(name string) Decl {
	c := *d
	c.name = name
	return &c
}

// WithMembers implements part of the Container interface.
func (d *Interface) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}

// WithParents returns a copy extending the given parents.
func (d *Interface) WithParents(parents ...Type) *Interface {
	c := *d
	c.Parents = parents
	return &c
}

// WithTypeParams returns a copy declaring the given type parameters.
func (d *Interface) WithTypeParams(tparams ...TypeParam) *Interface {
	c := *d
	c.TParams = tparams
	return &c
}
