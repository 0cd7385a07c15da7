package resolver

import (
	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// ExpandExports rewrites a module's or namespace's export statements into
// concrete declarations, flattening re-exports, import-then-export, and
// wildcard re-exports.  Results are memoized per module for the pass.  A
// re-entrant call on the same module is rejected by the guard; on rejection
// the module is returned with its members emptied, a deliberate lossy
// fallback for pathological re-export cycles.
//
// The scope s must be the module's own scope (the module container entered
// below its surroundings).
func ExpandExports(s Scope, g Guard, m decl.Container) decl.Container {
	if !hasExports(m) {
		return m
	}

	root := s.Root()
	key := moduleKey(m)
	// Namespaces are not memoized: only module specifiers are unique
	// across the forest.
	cacheable := false
	switch m.(type) {
	case *decl.Module, *decl.AugmentedModule:
		cacheable = true
	}
	if cacheable {
		if cached, ok := root.exportCache[key]; ok {
			return cached
		}
	}
	g2, ok := g.Include(GuardModule, key)
	if !ok {
		return m.WithMembers(nil)
	}

	owner := m.CodePath()
	var kept []decl.Decl
	var wildcard []decl.Decl

	for _, member := range m.Members() {
		exp, ok := member.(*decl.Export)
		if !ok {
			kept = append(kept, member)
			continue
		}
		switch f := exp.Form.(type) {
		case *decl.ExportTree:
			kept = append(kept, typeSide(exp, expandTreeExport(s, g2, f, owner))...)
		case *decl.ExportNames:
			if len(f.Names) == 0 {
				continue // an empty named-export list is dropped
			}
			kept = append(kept, typeSide(exp, expandNamedExports(s, g2, m, f, owner))...)
		case *decl.ExportStar:
			expansion := Expand(&decl.ImporteeFrom{Module: f.From}, s, g2)
			exposed := typeSide(exp, rehomed(exposed(expansion), owner))
			if f.Alias != "" {
				ns := decl.ReHome(decl.NewNamespace(f.Alias, exposed...), owner)
				kept = append(kept, ns)
				continue
			}
			wildcard = append(wildcard, exposed...)
		}
	}

	merged := shadow(kept, wildcard)
	result := m.WithMembers(merged)
	if cacheable {
		root.exportCache[key] = result
	}
	return result
}

// expandTreeExport re-homes a tree-valued export.  A local
// import-then-export (`export import X = A.B`) is resolved via the scope
// and renamed to its bound identifier.
func expandTreeExport(s Scope, g Guard, f *decl.ExportTree, owner qname.QName) []decl.Decl {
	if imp, ok := f.Decl.(*decl.Import); ok {
		if local, ok := imp.From.(*decl.ImporteeLocal); ok {
			var out []decl.Decl
			for _, clause := range imp.Clauses {
				ident, ok := clause.(*decl.ImportedIdent)
				if !ok {
					continue
				}
				for _, r := range lookupIn(s, PickNotModules, local.Name, g) {
					out = append(out, decl.ReHome(r.Decl.WithName(ident.Ident), owner))
				}
			}
			return out
		}
	}
	return []decl.Decl{decl.ReHome(f.Decl, owner)}
}

// expandNamedExports resolves a named export list, either against another
// module ("from") or against the local scope.
func expandNamedExports(s Scope, g Guard, m decl.Container, f *decl.ExportNames, owner qname.QName) []decl.Decl {
	var out []decl.Decl
	if f.From != "" {
		expansion := Expand(&decl.ImporteeFrom{Module: f.From}, s, g)
		pool := exposed(expansion)
		for _, b := range f.Names {
			for _, r := range searchFlattened(s, PickAll, qname.New(b.Name), g, pool) {
				out = append(out, decl.ReHome(r.Decl.WithName(b.Bound()), owner))
			}
		}
		return out
	}
	for _, b := range f.Names {
		for _, r := range lookupIn(s, PickButNot(m), qname.New(b.Name), g) {
			if b.Bound() == b.Name && isDirectMember(m, r.Decl) {
				continue // already present as a member
			}
			out = append(out, decl.ReHome(r.Decl.WithName(b.Bound()), owner))
		}
	}
	return out
}

// shadow merges wildcard-sourced declarations under the non-wildcard ones.
// A wildcard-sourced declaration whose name collides with a kept one is
// dropped in favor of the non-wildcard one; declarations of different kinds
// (a type alias and a class) coexist under one name, unlike two same-kind
// value declarations.  An exported type shadowed out as a value is re-added
// as a type-only declaration.
func shadow(kept, wildcard []decl.Decl) []decl.Decl {
	merged := kept
	var dropped []decl.Decl
	for _, w := range wildcard {
		if shadowedBy(kept, w) {
			dropped = append(dropped, w)
			continue
		}
		merged = append(merged, w)
	}
	for _, d := range dropped {
		typeOnly, ok := decl.AsTypeOnly(d)
		if !ok {
			continue
		}
		if hasTypeSide(merged, d.Name()) {
			continue
		}
		merged = append(merged, typeOnly)
	}
	return merged
}

func shadowedBy(kept []decl.Decl, w decl.Decl) bool {
	for _, k := range kept {
		if k.Name() != w.Name() || k.Name() == "" {
			continue
		}
		if k.Kind() == w.Kind() {
			return true
		}
		if decl.IsValue(k.Kind()) && decl.IsValue(w.Kind()) {
			return true
		}
	}
	return false
}

func hasTypeSide(decls []decl.Decl, name string) bool {
	for _, d := range decls {
		if d.Name() == name && decl.IsType(d.Kind()) {
			return true
		}
	}
	return false
}

func hasExports(m decl.Container) bool {
	for _, member := range m.Members() {
		if member.Kind() == decl.KindExport {
			return true
		}
	}
	return false
}

func isDirectMember(m decl.Container, d decl.Decl) bool {
	for _, member := range m.Members() {
		if member == d {
			return true
		}
	}
	return false
}

// typeSide applies a type-only export's projection: every produced member is
// narrowed to its type side, and members without one are dropped.
func typeSide(exp *decl.Export, decls []decl.Decl) []decl.Decl {
	if !exp.TypeOnly {
		return decls
	}
	var out []decl.Decl
	for _, d := range decls {
		if t, ok := decl.AsTypeOnly(d); ok {
			out = append(out, t)
		}
	}
	return out
}

func rehomed(decls []decl.Decl, owner qname.QName) []decl.Decl {
	out := make([]decl.Decl, len(decls))
	for i, d := range decls {
		out[i] = decl.ReHome(d, owner)
	}
	return out
}

// moduleKey is the memo/guard key for a module or namespace under
// export-expansion.
func moduleKey(m decl.Container) string {
	switch t := m.(type) {
	case *decl.Module:
		return "module:" + t.Specifier()
	case *decl.AugmentedModule:
		return "augment:" + t.Specifier()
	default:
		return m.Kind().String() + ":" + containerKey(m)
	}
}
