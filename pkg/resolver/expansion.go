package resolver

import (
	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// Expansion is the result of expanding an import target into the
// declarations it exposes.  It is a closed sum: either a partial Picked
// result or a Whole-module result.
type Expansion interface {
	isExpansion()
}

// Picked is a finite list of (declaration, discovery-scope) pairs.
type Picked struct {
	Results []Result
}

func (*Picked) isExpansion() {}

// Whole is a module's declarations partitioned into default-exported,
// namespace-exported, and the rest.
type Whole struct {
	Default    []decl.Decl
	Namespaced []decl.Decl
	Rest       []decl.Decl
	// Scope is the module's own scope, used as the discovery scope for
	// every exposed declaration.
	Scope Scope
}

func (*Whole) isExpansion() {}

// Remainder is the full exposed member list: namespace-exported members,
// the rest, and the default members still under their "default" name.
func (w *Whole) Remainder() []decl.Decl {
	out := make([]decl.Decl, 0, len(w.Namespaced)+len(w.Rest)+len(w.Default))
	out = append(out, w.Namespaced...)
	out = append(out, w.Rest...)
	out = append(out, w.Default...)
	return out
}

// Expand computes the declarations an import target exposes.
func Expand(importee decl.Importee, s Scope, g Guard) Expansion {
	switch t := importee.(type) {
	case *decl.ImporteeLocal:
		// Modules are excluded so that a module importing a local
		// namespace path never resolves back to itself.
		return &Picked{Results: lookupIn(s, PickNotModules, t.Name, g)}
	case *decl.ImporteeFrom:
		return expandModule(t.Module, s, g, false)
	case *decl.ImporteeRequired:
		return expandModule(t.Module, s, g, true)
	default:
		return &Picked{}
	}
}

// expandModule resolves a module specifier, export-expands the target, and
// partitions its top-level declarations.  An unresolvable named-module
// import yields no bindings silently; an unresolvable require target is
// logged as a reportable inconsistency since such targets are expected to
// exist in-project.
func expandModule(specifier string, s Scope, g Guard, required bool) Expansion {
	root := s.Root()
	target, ok := root.Module(specifier)
	if !ok {
		logger := root.Logger()
		if required {
			logger.Warn().Str("specifier", specifier).Msg("missing require target")
		} else {
			logger.Debug().Str("specifier", specifier).Msg("unresolvable module import")
		}
		return &Picked{}
	}

	expanded := ExpandExports(root.Enter(target), g, target)
	ms := root.Enter(expanded)

	w := &Whole{Scope: ms}
	for _, m := range expanded.Members() {
		switch m.Kind() {
		case decl.KindExport, decl.KindImport:
			continue
		}
		switch m.Name() {
		case qname.DefaultExport:
			w.Default = append(w.Default, m)
		case qname.NamespacedExport:
			w.Namespaced = append(w.Namespaced, m)
		default:
			w.Rest = append(w.Rest, m)
		}
	}
	return w
}
