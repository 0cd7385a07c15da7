package decl

import "sort"

// Index is the derived name index of a Container: a multimap from simple name
// to all same-named children (a type and a value may share a name), plus the
// subsequence of unnamed children.  Children of an unnamed global block are
// indexed transparently under the block's parent, so global members are
// visible wherever the block is; module and namespace children are not.
type Index struct {
	byName  map[string][]Decl
	unnamed []Decl
}

func newIndex(members []Decl) *Index {
	ix := &Index{byName: make(map[string][]Decl, len(members))}
	ix.add(members)
	return ix
}

func (ix *Index) add(members []Decl) {
	for _, m := range members {
		if g, ok := m.(*Global); ok {
			ix.unnamed = append(ix.unnamed, m)
			ix.add(g.Members())
			continue
		}
		name := m.Name()
		if name == "" {
			ix.unnamed = append(ix.unnamed, m)
			continue
		}
		ix.byName[name] = append(ix.byName[name], m)
	}
}

// Get returns all children indexed under the given simple name, in member
// order.
func (ix *Index) Get(name string) []Decl {
	return ix.byName[name]
}

// Unnamed returns the subsequence of unnamed children.
func (ix *Index) Unnamed() []Decl {
	return ix.unnamed
}

// Names returns the sorted list of indexed names.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.byName))
	for name := range ix.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
