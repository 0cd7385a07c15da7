package resolver

import (
	"github.com/declbridge/declbridge/pkg/decl"
)

// PickAll accepts every declaration unchanged.
var PickAll Picker = pickAll{}

type pickAll struct{}

// Pick implements part of the Picker interface.
func (pickAll) Pick(d decl.Decl) (decl.Decl, bool) {
	return d, true
}

// String implements the fmt.Stringer interface.
func (pickAll) String() string { return "all" }

// PickTypes accepts declarations that participate in the type namespace.
var PickTypes Picker = pickTypes{}

type pickTypes struct{}

// Pick implements part of the Picker interface.
func (pickTypes) Pick(d decl.Decl) (decl.Decl, bool) {
	if decl.IsType(d.Kind()) {
		return d, true
	}
	return nil, false
}

// String implements the fmt.Stringer interface.
func (pickTypes) String() string { return "types" }

// PickValues accepts declarations that produce a runtime value.
var PickValues Picker = pickValues{}

type pickValues struct{}

// Pick implements part of the Picker interface.
func (pickValues) Pick(d decl.Decl) (decl.Decl, bool) {
	if decl.IsValue(d.Kind()) {
		return d, true
	}
	return nil, false
}

// String implements the fmt.Stringer interface.
func (pickValues) String() string { return "values" }

// PickClassShaped accepts class-shaped declarations: classes, interfaces,
// and aliases of object type literals.  Aliased object literals are
// projected to a synthetic interface so callers can treat every acceptance
// as "has class members".
var PickClassShaped Picker = pickClassShaped{}

type pickClassShaped struct{}

// Pick implements part of the Picker interface.
func (pickClassShaped) Pick(d decl.Decl) (decl.Decl, bool) {
	switch t := d.(type) {
	case *decl.Class, *decl.Interface:
		return d, true
	case *decl.TypeAlias:
		if obj, ok := t.Aliased.(*decl.Object); ok {
			iface := decl.NewInterface(t.Name(), obj.ObjMembers...).WithTypeParams(t.TParams...)
			return iface.WithCodePath(t.CodePath()), true
		}
	}
	return nil, false
}

// String implements the fmt.Stringer interface.
func (pickClassShaped) String() string { return "class-shaped" }

// PickNotModules accepts everything except modules and module
// augmentations.
var PickNotModules Picker = pickNotModules{}

type pickNotModules struct{}

// Pick implements part of the Picker interface.
func (pickNotModules) Pick(d decl.Decl) (decl.Decl, bool) {
	switch d.Kind() {
	case decl.KindModule, decl.KindAugmentedModule:
		return nil, false
	}
	return d, true
}

// String implements the fmt.Stringer interface.
func (pickNotModules) String() string { return "not-modules" }

// PickButNot accepts everything except the given declaration, compared by
// identity.  It keeps a declaration from resolving to itself.
func PickButNot(excluded decl.Decl) Picker {
	return pickButNot{excluded}
}

type pickButNot struct {
	excluded decl.Decl
}

// Pick implements part of the Picker interface.
func (p pickButNot) Pick(d decl.Decl) (decl.Decl, bool) {
	if d == p.excluded {
		return nil, false
	}
	return d, true
}

// String implements the fmt.Stringer interface.
func (p pickButNot) String() string {
	return "but-not(" + p.excluded.Name() + ")"
}
