package resolver

import (
	"github.com/declbridge/declbridge/pkg/collections"
	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// LinkedScope is a scope linked below a parent for the container just
// entered.  It is a persistent structure: entering a container allocates a
// new link and never mutates the chain.
type LinkedScope struct {
	parent    Scope
	container decl.Container
	root      *RootScope
}

// Container is the container this scope was entered for.
func (s *LinkedScope) Container() decl.Container {
	return s.container
}

// Parent implements part of the Scope interface.
func (s *LinkedScope) Parent() Scope { return s.parent }

// Root implements part of the Scope interface.
func (s *LinkedScope) Root() *RootScope { return s.root }

// Enter implements part of the Scope interface.
func (s *LinkedScope) Enter(c decl.Container) Scope {
	return &LinkedScope{parent: s, container: c, root: s.root}
}

// IsAbstractName implements part of the Scope interface.
func (s *LinkedScope) IsAbstractName(name string) bool {
	for _, tp := range decl.TypeParamsOf(s.container) {
		if tp.Name == name {
			return true
		}
	}
	return s.parent.IsAbstractName(name)
}

// Lookup implements part of the Scope interface.  The first name part is
// resolved against the innermost container's index; remaining parts recurse
// into matching child containers under a scope linked below each; on no
// match the lookup retries in the parent scope (lexical fallback) and
// finally crosses into dependency libraries at the root.  Lookup never
// fails hard: not-found is the empty list.
func (s *LinkedScope) Lookup(p Picker, wanted qname.QName, g Guard) []Result {
	results := s.lookup(p, wanted, g)
	switch {
	case len(results) == 0:
		s.root.logMiss(s, p, wanted)
	case len(results) > 1:
		s.root.logAmbiguous(s, wanted, results)
	}
	return results
}

// lookup is the unlogged variant used by the resolver's own probes.
func (s *LinkedScope) lookup(p Picker, wanted qname.QName, g Guard) []Result {
	if wanted.IsEmpty() {
		return nil
	}
	if results := s.search(p, wanted, g); len(results) > 0 {
		return results
	}
	if imports := decl.ImportsOf(s.container); len(imports) > 0 {
		if results := LookupFromImports(s, p, wanted, g, imports); len(results) > 0 {
			return results
		}
	}
	return lookupIn(s.parent, p, wanted, g)
}

// search matches wanted against this container's index only: the first part
// selects children by simple name, and remaining parts recurse into each
// matching child container.  Termination is guaranteed because the
// qualified name strictly shrinks on every step.
func (s *LinkedScope) search(p Picker, wanted qname.QName, g Guard) []Result {
	matches := s.container.Index().Get(wanted.Head())
	var out []Result
	if wanted.Len() == 1 {
		for _, m := range matches {
			if picked, ok := p.Pick(m); ok {
				out = append(out, Result{Decl: picked, Scope: s})
			}
		}
		return rankResults(out)
	}
	rest := wanted.Tail()
	for _, m := range matches {
		if c, ok := m.(decl.Container); ok {
			inner := &LinkedScope{parent: s, container: c, root: s.root}
			out = append(out, inner.search(p, rest, g)...)
		}
	}
	return rankResults(out)
}

// String implements the fmt.Stringer interface.  The chain renders
// outermost first.
func (s *LinkedScope) String() string {
	var stack collections.StringStack
	for cur := Scope(s); cur != nil; cur = cur.Parent() {
		switch t := cur.(type) {
		case *LinkedScope:
			stack.Push(containerKey(t.container))
		case *RootScope:
			stack.Push(t.String())
		}
	}
	outer := collections.StringStack(collections.SliceReverse(stack))
	return outer.Join(" > ")
}
