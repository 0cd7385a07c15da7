package decl

import "github.com/declbridge/declbridge/pkg/qname"

// Global is an unnamed `global {}` block.  Its members are indexed
// transparently under the enclosing container.
type Global struct {
	body
	cp qname.QName
}

// NewGlobal constructs a global block with the given members.
func NewGlobal(members ...Decl) *Global {
	return &Global{body: newBody(members)}
}

// Kind implements part of the Decl interface.
func (d *Global) Kind() Kind { return KindGlobal }

// Name implements part of the Decl interface.  Global blocks are unnamed.
func (d *Global) Name() string { return "" }

// CodePath implements part of the Decl interface.
func (d *Global) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *Global) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *Global) WithName(string) Decl { return d }

// WithMembers implements part of the Container interface.
func (d *Global) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}
