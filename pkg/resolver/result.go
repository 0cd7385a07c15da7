package resolver

import (
	"fmt"
	"sort"

	"github.com/declbridge/declbridge/pkg/decl"
)

// Result is one accepted lookup candidate together with the scope it was
// discovered in.
type Result struct {
	// Decl is the accepted (possibly projected) declaration.
	Decl decl.Decl
	// Scope is the discovery scope.
	Scope Scope
}

// String implements the fmt.Stringer interface.
func (r Result) String() string {
	name := r.Decl.Name()
	if !r.Decl.CodePath().IsEmpty() {
		name = r.Decl.CodePath().String()
	}
	return fmt.Sprintf("%s %s (in %s)", r.Decl.Kind(), name, r.Scope)
}

// rankResults orders ambiguous matches by the fixed precedence: variables,
// then functions, then others; the sort is stable so equal-ranked results
// keep their discovery order.
func rankResults(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return kindRank(results[i].Decl.Kind()) < kindRank(results[j].Decl.Kind())
	})
	return results
}

func kindRank(k decl.Kind) int {
	switch k {
	case decl.KindVar:
		return 0
	case decl.KindFunc:
		return 1
	default:
		return 2
	}
}
