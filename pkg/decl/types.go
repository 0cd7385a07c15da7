package decl

import (
	"strings"

	"github.com/declbridge/declbridge/pkg/qname"
)

// Type is a type expression.  It is a closed sum; consumers switch on the
// concrete type.
type Type interface {
	isType()
	String() string
}

// Ref is a reference to a named type, possibly applied to type arguments.
type Ref struct {
	Name  qname.QName
	TArgs []Type
}

// NewRef constructs an unapplied reference to the given dotted name.
func NewRef(name string) *Ref {
	return &Ref{Name: qname.Parse(name)}
}

func (*Ref) isType() {}

// String implements the fmt.Stringer interface.
func (t *Ref) String() string {
	if len(t.TArgs) == 0 {
		return t.Name.String()
	}
	args := make([]string, len(t.TArgs))
	for i, a := range t.TArgs {
		args[i] = a.String()
	}
	return t.Name.String() + "<" + strings.Join(args, ", ") + ">"
}

// Union is a union type.
type Union struct {
	Types []Type
}

func (*Union) isType() {}

// String implements the fmt.Stringer interface.
func (t *Union) String() string {
	return joinTypes(t.Types, " | ")
}

// Intersection is an intersection type.
type Intersection struct {
	Types []Type
}

func (*Intersection) isType() {}

// String implements the fmt.Stringer interface.
func (t *Intersection) String() string {
	return joinTypes(t.Types, " & ")
}

// Object is a class-shaped object type literal.
type Object struct {
	ObjMembers []Decl
}

func (*Object) isType() {}

// String implements the fmt.Stringer interface.
func (t *Object) String() string {
	return "{...}"
}

// Fn is a function type.
type Fn struct {
	Sig *Sig
}

func (*Fn) isType() {}

// String implements the fmt.Stringer interface.
func (t *Fn) String() string {
	return "function"
}

// Literal is a literal type such as "foo" or 42.
type Literal struct {
	Value string
}

func (*Literal) isType() {}

// String implements the fmt.Stringer interface.
func (t *Literal) String() string {
	return t.Value
}

// TypeParam is a declared type parameter.
type TypeParam struct {
	Name    string
	Bound   Type
	Default Type
}

// Sig is a callable signature.
type Sig struct {
	TParams []TypeParam
	Params  []Param
	Ret     Type
}

// Param is one signature parameter.
type Param struct {
	Name string
	Type Type
}

func joinTypes(types []Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}
