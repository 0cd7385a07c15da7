package resolver

import (
	"github.com/declbridge/declbridge/pkg/decl"
)

// Unalias repeatedly unwraps type aliases and thin single-parent interfaces
// to their underlying shape.  It is read-only and recomputed on demand,
// never cached on the declaration.  On a guard rejection (a self-referential
// alias) the type is returned unchanged.
func Unalias(s Scope, t decl.Type) decl.Type {
	return unalias(s, t, Guard{})
}

func unalias(s Scope, t decl.Type, g Guard) decl.Type {
	switch tt := t.(type) {
	case *decl.Ref:
		g2, ok := g.Include(GuardTypeRef, tt.Name.String())
		if !ok {
			return t
		}
		results := lookupIn(s, PickTypes, tt.Name, g2)
		if len(results) == 0 {
			return t
		}
		found := results[0]
		switch d := found.Decl.(type) {
		case *decl.TypeAlias:
			rhs := decl.SubstituteTypeParams(d.Aliased, d.TParams, tt.TArgs)
			return unalias(found.Scope, rhs, g2)
		case *decl.Interface:
			if d.IsThin() {
				parent := decl.SubstituteTypeParams(d.Parents[0], d.TParams, tt.TArgs)
				return unalias(found.Scope, parent, g2)
			}
		}
		return t
	case *decl.Union:
		return &decl.Union{Types: unaliasAll(s, tt.Types, g)}
	case *decl.Intersection:
		return &decl.Intersection{Types: unaliasAll(s, tt.Types, g)}
	default:
		return t
	}
}

func unaliasAll(s Scope, types []decl.Type, g Guard) []decl.Type {
	out := make([]decl.Type, len(types))
	for i, t := range types {
		out[i] = unalias(s, t, g)
	}
	return out
}
