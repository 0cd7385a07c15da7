package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
	"github.com/declbridge/declbridge/pkg/testutil"
)

// consumerScope builds a root scope holding the given library module and
// returns the scope of a consumer file with the given import statements.
func consumerScope(t *testing.T, lib *decl.Module, imports ...decl.Decl) Scope {
	t.Helper()
	root := NewRootScope(WithLogger(testutil.NewTestLogger(t)))
	if lib != nil {
		root.AddFile(decl.NewFile("lib.d.ts", lib))
	}
	return root.Enter(decl.NewFile("consumer.d.ts", imports...))
}

func TestLookupThroughStarImport(t *testing.T) {
	lib := decl.NewModule("lib",
		decl.NewClass("Widget"),
		decl.NewNamespace("util", decl.NewFunc("noop", nil)),
	)
	imp := decl.NewImport(&decl.ImporteeFrom{Module: "lib"}, &decl.ImportedStar{Alias: "NS"})
	s := consumerScope(t, lib, imp)

	for name, tc := range map[string]struct {
		wanted string
		want   []string
	}{
		"alias itself": {
			wanted: "NS",
			want:   []string{"namespace:NS"},
		},
		"member through alias": {
			wanted: "NS.Widget",
			want:   []string{"class:Widget"},
		},
		"nested member through alias": {
			wanted: "NS.util.noop",
			want:   []string{"func:noop"},
		},
		"unknown member": {
			wanted: "NS.Gadget",
		},
		"alias does not leak members": {
			wanted: "Widget",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := s.Lookup(PickAll, qname.Parse(tc.wanted), Guard{})
			if diff := cmp.Diff(tc.want, resultNames(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupThroughDestructuredImport(t *testing.T) {
	lib := decl.NewModule("lib",
		decl.NewClass("Widget", decl.NewVar("size", nil)),
		decl.NewClass("Gadget"),
	)
	imp := decl.NewImport(&decl.ImporteeFrom{Module: "lib"},
		&decl.ImportedDestructured{Bindings: []decl.Binding{
			{Name: "Widget"},
			{Name: "Gadget", Alias: "G"},
		}},
	)
	s := consumerScope(t, lib, imp)

	for name, tc := range map[string]struct {
		wanted string
		want   []string
	}{
		"plain binding": {
			wanted: "Widget",
			want:   []string{"class:Widget"},
		},
		"member below a binding": {
			wanted: "Widget.size",
			want:   []string{"var:size"},
		},
		"renamed binding resolves the original": {
			wanted: "G",
			want:   []string{"class:Gadget"},
		},
		"original name of a renamed binding is not bound": {
			wanted: "Gadget",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := s.Lookup(PickAll, qname.Parse(tc.wanted), Guard{})
			if diff := cmp.Diff(tc.want, resultNames(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupThroughIdentImport(t *testing.T) {
	for name, tc := range map[string]struct {
		lib    *decl.Module
		wanted string
		want   []string
	}{
		"default export is renamed to the ident": {
			lib: decl.NewModule("lib",
				decl.NewVar(qname.DefaultExport, nil),
				decl.NewClass("Widget"),
			),
			wanted: "D",
			want:   []string{"var:D"},
		},
		"namespaced export is next": {
			lib: decl.NewModule("lib",
				decl.NewNamespace(qname.NamespacedExport, decl.NewClass("Widget")),
			),
			wanted: "D",
			want:   []string{"namespace:D"},
		},
		"otherwise the module is wrapped": {
			lib: decl.NewModule("lib",
				decl.NewClass("Widget"),
			),
			wanted: "D",
			want:   []string{"namespace:D"},
		},
		"members reachable through the wrapper": {
			lib: decl.NewModule("lib",
				decl.NewClass("Widget"),
			),
			wanted: "D.Widget",
			want:   []string{"class:Widget"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			imp := decl.NewImport(&decl.ImporteeFrom{Module: "lib"}, &decl.ImportedIdent{Ident: "D"})
			s := consumerScope(t, tc.lib, imp)
			got := s.Lookup(PickAll, qname.Parse(tc.wanted), Guard{})
			if diff := cmp.Diff(tc.want, resultNames(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupThroughRequire(t *testing.T) {
	lib := decl.NewModule("lib", decl.NewClass("Widget"))
	imp := decl.NewImport(&decl.ImporteeRequired{Module: "lib"}, &decl.ImportedIdent{Ident: "R"})
	s := consumerScope(t, lib, imp)

	got := s.Lookup(PickAll, qname.Parse("R.Widget"), Guard{})
	want := []string{"class:Widget"}
	if diff := cmp.Diff(want, resultNames(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMissingRequireYieldsNothing(t *testing.T) {
	imp := decl.NewImport(&decl.ImporteeRequired{Module: "nope"}, &decl.ImportedIdent{Ident: "R"})
	s := consumerScope(t, nil, imp)

	got := s.Lookup(PickAll, qname.Parse("R.Widget"), Guard{})
	if len(got) != 0 {
		t.Errorf("want zero results, got %v", resultNames(got))
	}
}

func TestImportResolutionIsMemoized(t *testing.T) {
	lib := decl.NewModule("lib", decl.NewClass("Widget"))
	imp := decl.NewImport(&decl.ImporteeFrom{Module: "lib"}, &decl.ImportedStar{Alias: "NS"})
	s := consumerScope(t, lib, imp)
	root := s.Root()

	if len(root.importCache) != 0 {
		t.Fatal("cache should start empty")
	}

	s.Lookup(PickAll, qname.Parse("NS.Widget"), Guard{})
	if len(root.importCache) != 1 {
		t.Fatalf("want 1 cache entry, got %d", len(root.importCache))
	}

	// misses are not cached
	s.Lookup(PickAll, qname.Parse("NS.Gadget"), Guard{})
	if len(root.importCache) != 1 {
		t.Errorf("miss was cached: %d entries", len(root.importCache))
	}

	got := s.Lookup(PickAll, qname.Parse("NS.Widget"), Guard{})
	want := []string{"class:Widget"}
	if diff := cmp.Diff(want, resultNames(got)); diff != "" {
		t.Errorf("cached result (-want +got):\n%s", diff)
	}
}

func TestMatchImport(t *testing.T) {
	star := &decl.ImportedStar{Alias: "NS"}
	ident := &decl.ImportedIdent{Ident: "D"}
	destructured := &decl.ImportedDestructured{Bindings: []decl.Binding{
		{Name: "A"},
		{Name: "B", Alias: "C"},
	}}
	imp := decl.NewImport(&decl.ImporteeFrom{Module: "lib"}, star, ident, destructured)

	for name, tc := range map[string]struct {
		wanted      string
		wantClauses int
		wantWanted  string
	}{
		"star matches anything": {
			wanted:      "X.Y",
			wantClauses: 1,
			wantWanted:  "X.Y",
		},
		"ident matches itself": {
			wanted:      "D.Y",
			wantClauses: 2, // star and ident both match
			wantWanted:  "D.Y",
		},
		"binding matches its bound name": {
			wanted:      "A",
			wantClauses: 2, // star and binding
			wantWanted:  "A",
		},
		"renamed binding rewrites the wanted head": {
			wanted:      "C.x",
			wantClauses: 2,
			wantWanted:  "B.x",
		},
	} {
		t.Run(name, func(t *testing.T) {
			matches := matchImport(imp, qname.Parse(tc.wanted))
			if len(matches) != tc.wantClauses {
				t.Fatalf("want %d matches, got %d", tc.wantClauses, len(matches))
			}
			last := matches[len(matches)-1]
			if got := last.wanted.String(); got != tc.wantWanted {
				t.Errorf("wanted: want %q, got %q", tc.wantWanted, got)
			}
		})
	}
}
