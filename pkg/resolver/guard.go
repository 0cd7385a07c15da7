package resolver

// GuardKind discriminates the resolution families tracked by a Guard.
type GuardKind int

const (
	// GuardTypeRef tracks a type reference mid alias-resolution.
	GuardTypeRef GuardKind = iota
	// GuardModule tracks a module specifier mid export-expansion or
	// dependency crossing.
	GuardModule
	// GuardImports tracks a name stack mid import-resolution.
	GuardImports
)

// Guard is an immutable, append-only set of in-progress resolution targets on
// the current call stack.  The zero value is the empty guard.  Guards are
// threaded explicitly through recursive resolution; independent resolution
// chains extend independent guards.
type Guard struct {
	node *guardNode
}

type guardNode struct {
	parent *guardNode
	kind   GuardKind
	key    string
}

// Include returns a new guard containing the given target, or the receiver
// and false if the target is already in progress.  A rejection must never be
// converted into a fresh guard; callers stop and return the neutral result
// for the branch.
func (g Guard) Include(kind GuardKind, key string) (Guard, bool) {
	for n := g.node; n != nil; n = n.parent {
		if n.kind == kind && n.key == key {
			return g, false
		}
	}
	return Guard{node: &guardNode{parent: g.node, kind: kind, key: key}}, true
}

// Contains reports whether the given target is in progress.
func (g Guard) Contains(kind GuardKind, key string) bool {
	for n := g.node; n != nil; n = n.parent {
		if n.kind == kind && n.key == key {
			return true
		}
	}
	return false
}

// Len returns the number of in-progress targets.
func (g Guard) Len() int {
	n := 0
	for node := g.node; node != nil; node = node.parent {
		n++
	}
	return n
}
