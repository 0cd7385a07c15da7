package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
	"github.com/declbridge/declbridge/pkg/testutil"
)

// resultNames projects lookup results to kind:name strings for comparison.
func resultNames(results []Result) []string {
	var out []string
	for _, r := range results {
		out = append(out, r.Decl.Kind().String()+":"+r.Decl.Name())
	}
	return out
}

// memberNames projects a container's members to kind:name strings.
func memberNames(c decl.Container) []string {
	var out []string
	for _, m := range c.Members() {
		out = append(out, m.Kind().String()+":"+m.Name())
	}
	return out
}

func TestLinkedScopeLookup(t *testing.T) {
	for name, tc := range map[string]struct {
		members []decl.Decl
		enter   []string // namespace path to enter before looking up
		picker  Picker
		wanted  string
		want    []string
	}{
		"degenerate": {
			wanted: "Foo",
		},
		"empty name": {
			members: []decl.Decl{decl.NewClass("Foo")},
			wanted:  "",
		},
		"direct hit": {
			members: []decl.Decl{decl.NewClass("Foo")},
			wanted:  "Foo",
			want:    []string{"class:Foo"},
		},
		"qualified hit": {
			members: []decl.Decl{
				decl.NewNamespace("NS", decl.NewClass("Foo")),
			},
			wanted: "NS.Foo",
			want:   []string{"class:Foo"},
		},
		"deeply qualified hit": {
			members: []decl.Decl{
				decl.NewNamespace("A", decl.NewNamespace("B", decl.NewVar("x", nil))),
			},
			wanted: "A.B.x",
			want:   []string{"var:x"},
		},
		"lexical fallback": {
			members: []decl.Decl{
				decl.NewClass("Foo"),
				decl.NewNamespace("NS"),
			},
			enter:  []string{"NS"},
			wanted: "Foo",
			want:   []string{"class:Foo"},
		},
		"inner shadows outer": {
			members: []decl.Decl{
				decl.NewClass("Foo"),
				decl.NewNamespace("NS", decl.NewInterface("Foo")),
			},
			enter:  []string{"NS"},
			wanted: "Foo",
			want:   []string{"interface:Foo"},
		},
		"picker rejection falls outward": {
			members: []decl.Decl{
				decl.NewInterface("Foo"),
				decl.NewNamespace("NS", decl.NewVar("Foo", nil)),
			},
			enter:  []string{"NS"},
			picker: PickTypes,
			wanted: "Foo",
			want:   []string{"interface:Foo"},
		},
		"global block is transparent": {
			members: []decl.Decl{
				decl.NewGlobal(decl.NewVar("window", nil)),
				decl.NewNamespace("NS"),
			},
			enter:  []string{"NS"},
			wanted: "window",
			want:   []string{"var:window"},
		},
		"namespace members do not leak": {
			members: []decl.Decl{
				decl.NewNamespace("NS", decl.NewClass("Hidden")),
			},
			wanted: "Hidden",
		},
		"module members do not leak": {
			members: []decl.Decl{
				decl.NewModule("lib", decl.NewClass("Hidden")),
			},
			wanted: "Hidden",
		},
		"ambiguity ranks vars then funcs": {
			members: []decl.Decl{
				decl.NewClass("Foo"),
				decl.NewFunc("Foo", nil),
				decl.NewVar("Foo", nil),
			},
			wanted: "Foo",
			want:   []string{"var:Foo", "func:Foo", "class:Foo"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			root := NewRootScope(WithLogger(testutil.NewTestLogger(t)))
			f := decl.NewFile("test.d.ts", tc.members...)
			s := root.Enter(f)
			for _, seg := range tc.enter {
				matches := f.Index().Get(seg)
				if len(matches) != 1 {
					t.Fatalf("enter %q: want 1 container, got %d", seg, len(matches))
				}
				s = s.Enter(matches[0].(decl.Container))
			}
			picker := tc.picker
			if picker == nil {
				picker = PickAll
			}
			got := s.Lookup(picker, qname.Parse(tc.wanted), Guard{})
			if diff := cmp.Diff(tc.want, resultNames(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRootScopeDependencyCrossing(t *testing.T) {
	lib := decl.NewModule("lib",
		decl.NewClass("Widget"),
		decl.NewNamespace("util", decl.NewFunc("noop", nil)),
	)
	root := NewRootScope(WithDependency("lib", lib))

	for name, tc := range map[string]struct {
		wanted string
		want   []string
	}{
		"library itself": {
			wanted: "lib",
			want:   []string{"module:lib"},
		},
		"member of library": {
			wanted: "lib.Widget",
			want:   []string{"class:Widget"},
		},
		"nested member of library": {
			wanted: "lib.util.noop",
			want:   []string{"func:noop"},
		},
		"unknown library": {
			wanted: "other.Widget",
		},
		"unknown member": {
			wanted: "lib.Gadget",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := root.Lookup(PickAll, qname.Parse(tc.wanted), Guard{})
			if diff := cmp.Diff(tc.want, resultNames(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupReachesDependenciesFromNestedScopes(t *testing.T) {
	lib := decl.NewModule("lib", decl.NewClass("Widget"))
	root := NewRootScope(WithDependency("lib", lib))
	f := decl.NewFile("test.d.ts", decl.NewNamespace("NS"))
	ns := f.Index().Get("NS")[0].(decl.Container)
	s := root.Enter(f).Enter(ns)

	got := s.Lookup(PickAll, qname.Parse("lib.Widget"), Guard{})
	want := []string{"class:Widget"}
	if diff := cmp.Diff(want, resultNames(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIsAbstractName(t *testing.T) {
	box := decl.NewClass("Box").WithTypeParams(decl.TypeParam{Name: "T"})
	f := decl.NewFile("test.d.ts", box)
	root := NewRootScope()
	s := root.Enter(f).Enter(box)

	if !s.IsAbstractName("T") {
		t.Error("T should be abstract inside Box")
	}
	if s.IsAbstractName("U") {
		t.Error("U is not declared")
	}
	if root.Enter(f).IsAbstractName("T") {
		t.Error("T should not be abstract outside Box")
	}
}

func TestScopeString(t *testing.T) {
	root := NewRootScope()
	f := decl.NewFile("test.d.ts", decl.NewNamespace("NS"))
	ns := f.Index().Get("NS")[0].(decl.Container)
	s := root.Enter(f).Enter(ns)

	want := "root > test.d.ts > namespace:NS"
	if got := s.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestScopeEnterIsPersistent(t *testing.T) {
	root := NewRootScope()
	f := decl.NewFile("test.d.ts")
	s := root.Enter(f)

	a := s.Enter(decl.NewNamespace("A"))
	b := s.Enter(decl.NewNamespace("B"))

	if a.Parent() != s || b.Parent() != s {
		t.Error("entering must link below the receiver")
	}
	if a.(*LinkedScope).Container().Name() != "A" {
		t.Error("a lost its container")
	}
	if b.(*LinkedScope).Container().Name() != "B" {
		t.Error("b lost its container")
	}
}
