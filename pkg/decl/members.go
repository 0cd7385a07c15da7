package decl

// body holds the member sequence and derived index shared by all container
// kinds.  The index is built at construction time, never mutated.
type body struct {
	members []Decl
	index   *Index
}

func newBody(members []Decl) body {
	return body{members: members, index: newIndex(members)}
}

// Members implements part of the Container interface.
func (b body) Members() []Decl {
	return b.members
}

// Index implements part of the Container interface.
func (b body) Index() *Index {
	return b.index
}
