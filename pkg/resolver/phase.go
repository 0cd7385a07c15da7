package resolver

import (
	"github.com/rs/zerolog"

	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// Phase runs export expansion over every module and namespace of a
// library's file forest, once, in file order.  The orchestrator runs one
// Phase per library, in dependency order, and publishes the result into
// downstream dependency registries.  Later transform passes depend only on
// Scope lookup and Unalias; they never re-run the phase piecemeal.
type Phase struct {
	root   *RootScope
	logger zerolog.Logger
}

// NewPhase constructs a phase over the given root scope.  The files must
// already be registered via RootScope.AddFile.
func NewPhase(root *RootScope) *Phase {
	return &Phase{root: root, logger: root.Logger()}
}

// Run expands every module/namespace member of every file and returns the
// rewritten forest.  The input forest is never modified.
func (p *Phase) Run(files []*decl.File) []*decl.File {
	out := make([]*decl.File, len(files))
	for i, f := range files {
		out[i] = p.runFile(f)
	}
	return out
}

func (p *Phase) runFile(f *decl.File) *decl.File {
	p.logger.Debug().Str("file", f.Path()).Msg("resolving exports")
	// Home every declaration first so that guard keys and provenance
	// traces carry full code paths.
	homed := decl.ReHome(f, qname.QName{}).(*decl.File)
	scope := p.root.Enter(homed)
	rewritten := p.expandMembers(scope, homed)
	return rewritten.(*decl.File)
}

// expandMembers walks the container's members and export-expands each
// module and namespace, recursing into nested containers first so inner
// expansions are visible to outer ones.
func (p *Phase) expandMembers(s Scope, c decl.Container) decl.Container {
	out := c
	for i, member := range c.Members() {
		switch t := member.(type) {
		case *decl.Module, *decl.AugmentedModule, *decl.Namespace:
			inner := t.(decl.Container)
			ms := s.Enter(inner)
			expanded := p.expandMembers(ms, inner)
			expanded = ExpandExports(s.Enter(expanded), Guard{}, expanded)
			if expanded != inner {
				out = decl.ReplaceMember(out, i, expanded)
			}
		}
	}
	return out
}
