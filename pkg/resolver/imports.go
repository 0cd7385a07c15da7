package resolver

import (
	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// importsContainer is the display name of the disposable namespace that
// wraps flattened import results during the final search.
const importsContainer = "<imports>"

// importKey is the memo cache key for import resolution: the structural
// identity of the scope's container chain, the picker, and the wanted name.
type importKey struct {
	scope  string
	picker string
	wanted string
}

// LookupFromImports matches the given import statements against a wanted
// name, expands the surviving imports' sources, and searches the flattened
// declarations for the wanted name.  Results are memoized for the pass;
// only non-empty results are cached, since caching empties risks masking
// availability once more of the dependency graph loads.
func LookupFromImports(s Scope, p Picker, wanted qname.QName, g Guard, imports []*decl.Import) []Result {
	if wanted.IsEmpty() || len(imports) == 0 {
		return nil
	}
	g2, ok := g.Include(GuardImports, scopeKey(s)+"!"+wanted.String())
	if !ok {
		return nil
	}

	root := s.Root()
	key := importKey{scope: scopeKey(s), picker: p.String(), wanted: wanted.String()}
	if cached, ok := root.importCache[key]; ok {
		return cached
	}

	var out []Result
	for _, imp := range imports {
		for _, match := range matchImport(imp, wanted) {
			expansion := Expand(match.imp.From, s, g2)
			flat := flatten(match.clause, expansion)
			out = append(out, searchFlattened(s, p, match.wanted, g2, flat)...)
		}
	}
	if len(out) > 0 {
		root.importCache[key] = out
	}
	return out
}

// clauseMatch is one import clause that intersects the wanted name, reduced
// to its matching sub-clause, with the wanted name rewritten for
// destructured renames.
type clauseMatch struct {
	imp    *decl.Import
	clause decl.Imported
	wanted qname.QName
}

// matchImport filters an import statement's clauses against the first
// wanted part: a star always matches, an identifier matches itself, and a
// destructured clause matches any of its (name, alias) pairs.  A
// destructured rename substitutes the original name into the wanted parts
// before the search.
func matchImport(imp *decl.Import, wanted qname.QName) []clauseMatch {
	first := wanted.Head()
	var out []clauseMatch
	for _, clause := range imp.Clauses {
		switch c := clause.(type) {
		case *decl.ImportedStar:
			out = append(out, clauseMatch{imp: imp, clause: c, wanted: wanted})
		case *decl.ImportedIdent:
			if c.Ident == first {
				out = append(out, clauseMatch{imp: imp, clause: c, wanted: wanted})
			}
		case *decl.ImportedDestructured:
			for _, b := range c.Bindings {
				if b.Bound() != first {
					continue
				}
				reduced := &decl.ImportedDestructured{Bindings: []decl.Binding{b}}
				out = append(out, clauseMatch{
					imp:    imp,
					clause: reduced,
					wanted: wanted.WithHead(b.Name),
				})
			}
		}
	}
	return out
}

// flatten turns an expansion into the declaration list visible through one
// import clause.
func flatten(clause decl.Imported, expansion Expansion) []decl.Decl {
	switch c := clause.(type) {
	case *decl.ImportedStar:
		decls := exposed(expansion)
		if c.Alias == "" {
			return decls
		}
		return []decl.Decl{decl.NewNamespace(c.Alias, decls...)}
	case *decl.ImportedIdent:
		switch e := expansion.(type) {
		case *Picked:
			return renamed(resultDecls(e.Results), c.Ident)
		case *Whole:
			if len(e.Default) > 0 {
				return renamed(e.Default, c.Ident)
			}
			if len(e.Namespaced) > 0 {
				return renamed(e.Namespaced, c.Ident)
			}
			return []decl.Decl{decl.NewNamespace(c.Ident, e.Remainder()...)}
		}
	case *decl.ImportedDestructured:
		return exposed(expansion)
	}
	return nil
}

// searchFlattened wraps the flattened declarations in a disposable
// namespace and reuses the ordinary container search rather than
// duplicating the lookup algorithm.
func searchFlattened(s Scope, p Picker, wanted qname.QName, g Guard, decls []decl.Decl) []Result {
	if len(decls) == 0 {
		return nil
	}
	ns := decl.NewNamespace(importsContainer, decls...)
	inner := &LinkedScope{parent: s, container: ns, root: s.Root()}
	return inner.search(p, wanted, g)
}

func exposed(expansion Expansion) []decl.Decl {
	switch e := expansion.(type) {
	case *Picked:
		return resultDecls(e.Results)
	case *Whole:
		return e.Remainder()
	}
	return nil
}

func resultDecls(results []Result) []decl.Decl {
	out := make([]decl.Decl, len(results))
	for i, r := range results {
		out[i] = r.Decl
	}
	return out
}

func renamed(decls []decl.Decl, name string) []decl.Decl {
	out := make([]decl.Decl, len(decls))
	for i, d := range decls {
		out[i] = d.WithName(name)
	}
	return out
}
