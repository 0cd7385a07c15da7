package resolver

import (
	"fmt"

	"github.com/declbridge/declbridge/pkg/decl"
)

// Picker narrows a raw lookup result to the declaration kind a caller needs.
// Pick is a pure function: it rejects the declaration or accepts it,
// possibly projected to a narrower shape.  The String form is used as a memo
// cache key component, so distinct pickers must render distinctly.
type Picker interface {
	fmt.Stringer

	// Pick returns the (possibly projected) declaration and true if
	// accepted.
	Pick(d decl.Decl) (decl.Decl, bool)
}

// Seq composes pickers by sequential rejection: every picker must accept,
// and projections chain left to right.  Pickers never compose by union.
func Seq(pickers ...Picker) Picker {
	return pickerSeq(pickers)
}

type pickerSeq []Picker

// Pick implements part of the Picker interface.
func (s pickerSeq) Pick(d decl.Decl) (decl.Decl, bool) {
	for _, p := range s {
		next, ok := p.Pick(d)
		if !ok {
			return nil, false
		}
		d = next
	}
	return d, true
}

// String implements the fmt.Stringer interface.
func (s pickerSeq) String() string {
	out := "seq("
	for i, p := range s {
		if i > 0 {
			out += ","
		}
		out += p.String()
	}
	return out + ")"
}
