package resolver

import (
	"fmt"

	"github.com/declbridge/declbridge/pkg/collections"
	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// Scope is the lexical/module context used to resolve a name at a tree
// position.  A scope is either the root of a pass (dependency graph plus
// configuration) or a link below a parent scope for the container just
// entered.  Scopes are immutable post-construction: the chain mirrors
// lexical nesting at traversal time, and following Parent always reaches the
// root.
type Scope interface {
	fmt.Stringer

	// Parent is the enclosing scope, nil at the root.
	Parent() Scope

	// Root is the pass root this scope hangs off.
	Root() *RootScope

	// Enter returns a new scope linked below this one for the given
	// container.  Pure; O(1).
	Enter(c decl.Container) Scope

	// Lookup resolves the given qualified name here, filtered by the
	// picker, and returns the accepted declarations with their discovery
	// scopes.  Lookup never fails hard: not-found is the empty list.
	Lookup(p Picker, wanted qname.QName, g Guard) []Result

	// IsAbstractName reports whether the name resolves to an in-scope type
	// parameter.
	IsAbstractName(name string) bool
}

// lookupIn dispatches to the unlogged lookup of either scope flavor.  The
// resolver's own probes go through here so that routine misses stay quiet;
// only the public Lookup entry point logs.
func lookupIn(s Scope, p Picker, wanted qname.QName, g Guard) []Result {
	switch t := s.(type) {
	case *LinkedScope:
		return t.lookup(p, wanted, g)
	case *RootScope:
		return t.lookup(p, wanted, g)
	default:
		return s.Lookup(p, wanted, g)
	}
}

// scopeKey renders the structural identity of the scope's container chain,
// used as a memo cache key component.
func scopeKey(s Scope) string {
	var stack collections.StringStack
	for cur := s; cur != nil; cur = cur.Parent() {
		if ls, ok := cur.(*LinkedScope); ok {
			stack.Push(containerKey(ls.container))
		}
	}
	outer := collections.StringStack(collections.SliceReverse(stack))
	return "/" + outer.Join("/")
}

func containerKey(c decl.Container) string {
	if !c.CodePath().IsEmpty() {
		return c.CodePath().String()
	}
	switch t := c.(type) {
	case *decl.File:
		return t.Path()
	case *decl.Global:
		return qname.GlobalBlock
	}
	if c.Name() != "" {
		return c.Kind().String() + ":" + c.Name()
	}
	return c.Kind().String()
}
