package decl

import "github.com/declbridge/declbridge/pkg/qname"

// AugmentedModule is a module augmentation block: members are merged into
// the target module during resolution rather than declared fresh.
type AugmentedModule struct {
	body
	specifier string
	cp        qname.QName
}

// NewAugmentedModule constructs an augmentation of the given specifier.
func NewAugmentedModule(specifier string, members ...Decl) *AugmentedModule {
	return &AugmentedModule{body: newBody(members), specifier: specifier}
}

// Specifier is the augmented module's specifier string.
func (d *AugmentedModule) Specifier() string { return d.specifier }

// Kind implements part of the Decl interface.
func (d *AugmentedModule) Kind() Kind { return KindAugmentedModule }

// Name implements part of the Decl interface.
func (d *AugmentedModule) Name() string { return d.specifier }

// CodePath implements part of the Decl interface.
func (d *AugmentedModule) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *AugmentedModule) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *AugmentedModule) WithName(name string) Decl {
	c := *d
	c.specifier = name
	return &c
}

// WithMembers implements part of the Container interface.
func (d *AugmentedModule) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}
