package decl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func declNames(decls []Decl) []string {
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Kind().String() + ":" + d.Name()
	}
	return names
}

func TestIndexGet(t *testing.T) {
	for name, tc := range map[string]struct {
		members []Decl
		get     string
		want    []string
	}{
		"degenerate": {
			get: "Foo",
		},
		"direct hit": {
			members: []Decl{NewClass("Foo")},
			get:     "Foo",
			want:    []string{"class:Foo"},
		},
		"type and value share a name": {
			members: []Decl{
				NewInterface("Foo"),
				NewVar("Foo", NewRef("number")),
			},
			get:  "Foo",
			want: []string{"interface:Foo", "var:Foo"},
		},
		"global block members index under the parent": {
			members: []Decl{
				NewGlobal(NewVar("window", NewRef("Window"))),
			},
			get:  "window",
			want: []string{"var:window"},
		},
		"namespace members do not leak": {
			members: []Decl{
				NewNamespace("NS", NewClass("Foo")),
			},
			get: "Foo",
		},
		"module members do not leak": {
			members: []Decl{
				NewModule("lib", NewClass("Foo")),
			},
			get: "Foo",
		},
	} {
		t.Run(name, func(t *testing.T) {
			f := NewFile("test.d.ts", tc.members...)
			var got []string
			if matches := f.Index().Get(tc.get); len(matches) > 0 {
				got = declNames(matches)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndexNames(t *testing.T) {
	f := NewFile("test.d.ts",
		NewVar("b", nil),
		NewClass("a"),
		NewGlobal(NewFunc("c", nil)),
		NewExport(&ExportStar{From: "lib"}),
	)
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, f.Index().Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIndexUnnamed(t *testing.T) {
	g := NewGlobal(NewVar("x", nil))
	exp := NewExport(&ExportStar{From: "lib"})
	f := NewFile("test.d.ts", g, NewClass("Foo"), exp)
	got := f.Index().Unnamed()
	if len(got) != 2 {
		t.Fatalf("want 2 unnamed members, got %d", len(got))
	}
	if got[0] != Decl(g) || got[1] != Decl(exp) {
		t.Error("unnamed members out of order")
	}
}
