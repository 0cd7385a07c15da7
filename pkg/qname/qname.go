package qname

import "strings"

// QName is an ordered, non-empty sequence of identifier parts, compared
// part-by-part.  The zero value is the empty name.  QName values are
// immutable; all operations return new values.
type QName struct {
	parts []string
}

// New constructs a QName from the given parts.
func New(parts ...string) QName {
	return QName{parts: parts}
}

// Parse splits a dotted name like "a.b.c" into its parts.
func Parse(s string) QName {
	if s == "" {
		return QName{}
	}
	return QName{parts: strings.Split(s, ".")}
}

// IsEmpty reports whether the name has no parts.
func (n QName) IsEmpty() bool {
	return len(n.parts) == 0
}

// Len returns the number of parts.
func (n QName) Len() int {
	return len(n.parts)
}

// Head returns the first part, or "" if the name is empty.
func (n QName) Head() string {
	if len(n.parts) == 0 {
		return ""
	}
	return n.parts[0]
}

// Last returns the final part, or "" if the name is empty.
func (n QName) Last() string {
	if len(n.parts) == 0 {
		return ""
	}
	return n.parts[len(n.parts)-1]
}

// Tail returns the name without its first part.
func (n QName) Tail() QName {
	if len(n.parts) <= 1 {
		return QName{}
	}
	return QName{parts: n.parts[1:]}
}

// Part returns the i'th part.
func (n QName) Part(i int) string {
	return n.parts[i]
}

// Parts returns a copy of the underlying parts.
func (n QName) Parts() []string {
	out := make([]string, len(n.parts))
	copy(out, n.parts)
	return out
}

// Add returns a new name with the given part appended.
func (n QName) Add(part string) QName {
	out := make([]string, 0, len(n.parts)+1)
	out = append(out, n.parts...)
	out = append(out, part)
	return QName{parts: out}
}

// Cons returns a new name with the given part prepended.
func (n QName) Cons(part string) QName {
	out := make([]string, 0, len(n.parts)+1)
	out = append(out, part)
	out = append(out, n.parts...)
	return QName{parts: out}
}

// WithHead returns a new name whose first part is replaced.
func (n QName) WithHead(part string) QName {
	if len(n.parts) == 0 {
		return New(part)
	}
	out := n.Parts()
	out[0] = part
	return QName{parts: out}
}

// Concat returns the concatenation of n and o.
func (n QName) Concat(o QName) QName {
	out := make([]string, 0, len(n.parts)+len(o.parts))
	out = append(out, n.parts...)
	out = append(out, o.parts...)
	return QName{parts: out}
}

// Equal reports part-by-part equality.
func (n QName) Equal(o QName) bool {
	if len(n.parts) != len(o.parts) {
		return false
	}
	for i := range n.parts {
		if n.parts[i] != o.parts[i] {
			return false
		}
	}
	return true
}

// String implements the fmt.Stringer interface.
func (n QName) String() string {
	return strings.Join(n.parts, ".")
}
