package decl

import "github.com/declbridge/declbridge/pkg/qname"

// File is the parsed-file tree root.  It is unnamed; its members are the
// file's top-level declarations.
type File struct {
	body
	path string
	cp   qname.QName
}

// NewFile constructs a file container for the given source path.
func NewFile(path string, members ...Decl) *File {
	return &File{body: newBody(members), path: path}
}

// Path is the source path this file was parsed from.
func (d *File) Path() string { return d.path }

// Kind implements part of the Decl interface.
func (d *File) Kind() Kind { return KindFile }

// Name implements part of the Decl interface.  Files are unnamed.
func (d *File) Name() string { return "" }

// CodePath implements part of the Decl interface.
func (d *File) CodePath() qname.QName { return d.cp }

// WithCodePath implements part of the Decl interface.
func (d *File) WithCodePath(cp qname.QName) Decl {
	c := *d
	c.cp = cp
	return &c
}

// WithName implements part of the Decl interface.
func (d *File) WithName(string) Decl { return d }

// WithMembers implements part of the Container interface.
func (d *File) WithMembers(members []Decl) Container {
	c := *d
	c.body = newBody(members)
	return &c
}
