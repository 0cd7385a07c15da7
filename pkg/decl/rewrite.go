package decl

import (
	"github.com/declbridge/declbridge/pkg/collections"
	"github.com/declbridge/declbridge/pkg/qname"
)

// ReHome returns a copy of d homed under owner: the code path becomes
// owner + name, recursively for container members.  Mutation is subtree
// replacement; the input is never modified.
func ReHome(d Decl, owner qname.QName) Decl {
	path := owner
	if d.Name() != "" {
		path = owner.Add(d.Name())
	}
	d = d.WithCodePath(path)
	if c, ok := d.(Container); ok {
		members := c.Members()
		out := make([]Decl, len(members))
		for i, m := range members {
			out[i] = ReHome(m, path)
		}
		return c.WithMembers(out)
	}
	return d
}

// ReplaceMember returns a copy of c with the member at index i replaced.
func ReplaceMember(c Container, i int, d Decl) Container {
	members := collections.SliceInsertAt(collections.SliceRemoveIndex(c.Members(), i), i, d)
	return c.WithMembers(members)
}

// ImportsOf returns the import statements among c's members, in member
// order.
func ImportsOf(c Container) []*Import {
	var out []*Import
	for _, m := range c.Members() {
		if imp, ok := m.(*Import); ok {
			out = append(out, imp)
		}
	}
	return out
}

// SubstituteTypeParams replaces references to the given type parameters with
// the corresponding type arguments, positionally.  Extra parameters fall
// back to their declared default, or stay unreplaced.
func SubstituteTypeParams(t Type, tparams []TypeParam, targs []Type) Type {
	if len(tparams) == 0 {
		return t
	}
	subst := make(map[string]Type, len(tparams))
	for i, tp := range tparams {
		if i < len(targs) {
			subst[tp.Name] = targs[i]
		} else if tp.Default != nil {
			subst[tp.Name] = tp.Default
		}
	}
	return substType(t, subst)
}

func substType(t Type, subst map[string]Type) Type {
	switch tt := t.(type) {
	case *Ref:
		if tt.Name.Len() == 1 && len(tt.TArgs) == 0 {
			if repl, ok := subst[tt.Name.Head()]; ok {
				return repl
			}
		}
		if len(tt.TArgs) == 0 {
			return tt
		}
		args := make([]Type, len(tt.TArgs))
		for i, a := range tt.TArgs {
			args[i] = substType(a, subst)
		}
		return &Ref{Name: tt.Name, TArgs: args}
	case *Union:
		return &Union{Types: substTypes(tt.Types, subst)}
	case *Intersection:
		return &Intersection{Types: substTypes(tt.Types, subst)}
	case *Fn:
		return &Fn{Sig: substSig(tt.Sig, subst)}
	case *Object:
		members := make([]Decl, len(tt.ObjMembers))
		for i, m := range tt.ObjMembers {
			members[i] = substMember(m, subst)
		}
		return &Object{ObjMembers: members}
	default:
		return t
	}
}

func substTypes(types []Type, subst map[string]Type) []Type {
	out := make([]Type, len(types))
	for i, t := range types {
		out[i] = substType(t, subst)
	}
	return out
}

func substSig(sig *Sig, subst map[string]Type) *Sig {
	if sig == nil {
		return nil
	}
	out := &Sig{TParams: sig.TParams, Params: make([]Param, len(sig.Params))}
	for i, p := range sig.Params {
		out.Params[i] = Param{Name: p.Name, Type: substType(p.Type, subst)}
	}
	if sig.Ret != nil {
		out.Ret = substType(sig.Ret, subst)
	}
	return out
}

func substMember(m Decl, subst map[string]Type) Decl {
	switch d := m.(type) {
	case *Var:
		if d.Type == nil {
			return d
		}
		c := *d
		c.Type = substType(d.Type, subst)
		return &c
	case *Func:
		c := *d
		c.Sig = substSig(d.Sig, subst)
		return &c
	default:
		return m
	}
}

// AsTypeOnly projects a declaration to its type side: classes become
// class-shaped interfaces, interfaces and aliases pass through.  Kinds with
// no type side report false.
func AsTypeOnly(d Decl) (Decl, bool) {
	switch t := d.(type) {
	case *Interface, *TypeAlias:
		return d, true
	case *Class:
		iface := NewInterface(t.Name(), t.Members()...).WithParents(t.Parents...).WithTypeParams(t.TParams...)
		return iface.WithCodePath(t.CodePath()), true
	default:
		return nil, false
	}
}
