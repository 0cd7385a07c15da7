package collections

import "testing"

func TestStringStack(t *testing.T) {
	var s StringStack
	if !s.IsEmpty() {
		t.Fatal("new stack should be empty")
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("pop of empty stack should fail")
	}

	s.Push("a")
	s.Push("b")
	s.Push("c")

	if got := s.Join("/"); got != "a/b/c" {
		t.Errorf("join: want %q, got %q", "a/b/c", got)
	}

	if top, ok := s.Peek(); !ok || top != "c" {
		t.Errorf("peek: want %q, got %q (%v)", "c", top, ok)
	}
	if x, ok := s.Pop(); !ok || x != "c" {
		t.Errorf("pop: want %q, got %q (%v)", "c", x, ok)
	}
	if got := s.Join("/"); got != "a/b" {
		t.Errorf("join after pop: want %q, got %q", "a/b", got)
	}
}
