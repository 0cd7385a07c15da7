package decl

import (
	"github.com/declbridge/declbridge/pkg/qname"
)

// Kind is the declaration kind tag.  Consumers switch exhaustively on it (or
// on the concrete type) so that new kinds surface as compile-time gaps.
type Kind int

const (
	KindFile Kind = iota
	KindClass
	KindInterface
	KindTypeAlias
	KindEnum
	KindFunc
	KindVar
	KindNamespace
	KindModule
	KindAugmentedModule
	KindGlobal
	KindExport
	KindImport
)

var kindNames = map[Kind]string{
	KindFile:            "file",
	KindClass:           "class",
	KindInterface:       "interface",
	KindTypeAlias:       "type-alias",
	KindEnum:            "enum",
	KindFunc:            "func",
	KindVar:             "var",
	KindNamespace:       "namespace",
	KindModule:          "module",
	KindAugmentedModule: "augmented-module",
	KindGlobal:          "global",
	KindExport:          "export",
	KindImport:          "import",
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Decl is one parsed construct.  Declarations are immutable; the WithX
// methods return modified copies.
type Decl interface {
	// Kind is the declaration kind tag.
	Kind() Kind
	// Name is the simple name, "" for unnamed declarations.
	Name() string
	// CodePath is the fully-qualified home location once resolved.
	CodePath() qname.QName
	// WithCodePath returns a copy homed at the given path.
	WithCodePath(qname.QName) Decl
	// WithName returns a renamed copy.  Unnamed kinds return the receiver.
	WithName(string) Decl
}

// Container is a declaration owning an ordered child sequence plus derived
// name indexes.  The index is part of the container's identity and is built
// once at construction time.
type Container interface {
	Decl
	// Members is the ordered child sequence.
	Members() []Decl
	// WithMembers returns a copy with the given members (and a fresh index).
	WithMembers([]Decl) Container
	// Index is the derived name index over Members.
	Index() *Index
}

// Located is implemented by value-producing kinds that carry a
// JavaScript-runtime location.
type Located interface {
	Decl
	JsLocation() qname.QName
}

// IsValue reports whether the kind produces a runtime value.
func IsValue(k Kind) bool {
	switch k {
	case KindClass, KindEnum, KindFunc, KindVar, KindNamespace, KindModule:
		return true
	}
	return false
}

// IsType reports whether the kind participates in the type namespace.
func IsType(k Kind) bool {
	switch k {
	case KindClass, KindInterface, KindTypeAlias, KindEnum:
		return true
	}
	return false
}

// TypeParamsOf returns the type parameters declared by d, if any.
func TypeParamsOf(d Decl) []TypeParam {
	switch t := d.(type) {
	case *Class:
		return t.TParams
	case *Interface:
		return t.TParams
	case *TypeAlias:
		return t.TParams
	case *Func:
		if t.Sig != nil {
			return t.Sig.TParams
		}
	}
	return nil
}
