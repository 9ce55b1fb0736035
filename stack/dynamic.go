package stack

import (
	"fmt"
	"strings"
)

// Dynamic is an unbounded stack backed by a growable slice. The bottom
// of the stack sits at index 0 of the backing slice and the top (the X
// position) at the end; the stack can be legitimately empty, so every
// operand-consuming operation checks its operand count first and fails
// with NotEnoughOperandsError without touching the elements.
type Dynamic[E Number] struct {
	items []E
}

// NewDynamic returns an empty stack.
func NewDynamic[E Number]() *Dynamic[E] {
	return &Dynamic[E]{}
}

// DynamicFromSlice returns a stack holding a copy of values, with the
// last slice element on top.
func DynamicFromSlice[E Number](values []E) *Dynamic[E] {
	items := make([]E, len(values))
	copy(items, values)
	return &Dynamic[E]{items: items}
}

// Len returns the number of elements on the stack.
func (s *Dynamic[E]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Dynamic[E]) IsEmpty() bool { return len(s.items) == 0 }

// Get returns the element i positions below the top, so Get(0) is the
// top itself. The second result is false if i is out of range.
func (s *Dynamic[E]) Get(i int) (E, bool) {
	if i < 0 || i >= len(s.items) {
		var zero E
		return zero, false
	}
	return s.items[len(s.items)-1-i], true
}

// Push appends value as the new top. Never fails.
func (s *Dynamic[E]) Push(value E) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top element.
func (s *Dynamic[E]) Pop() (E, error) {
	if len(s.items) == 0 {
		var zero E
		return zero, notEnoughOperands(1, 0)
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Drop removes the top element and discards it.
func (s *Dynamic[E]) Drop() error {
	_, err := s.Pop()
	return err
}

// Swap exchanges the two topmost elements.
func (s *Dynamic[E]) Swap() error {
	n := len(s.items)
	if n < 2 {
		return notEnoughOperands(2, n)
	}
	s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
	return nil
}

// RotateUp cyclically shifts every element one position toward the
// top; the bottommost element becomes the new top. No-op on a stack
// with fewer than two elements.
func (s *Dynamic[E]) RotateUp() {
	if len(s.items) < 2 {
		return
	}
	bottom := s.items[0]
	copy(s.items, s.items[1:])
	s.items[len(s.items)-1] = bottom
}

// RotateDown is the inverse of RotateUp: the top element becomes the
// new bottom.
func (s *Dynamic[E]) RotateDown() {
	if len(s.items) < 2 {
		return
	}
	top := s.items[len(s.items)-1]
	copy(s.items[1:], s.items[:len(s.items)-1])
	s.items[0] = top
}

// Clear removes all elements.
func (s *Dynamic[E]) Clear() {
	s.items = s.items[:0]
}

// ApplyUnary applies fn to the top element in place.
func (s *Dynamic[E]) ApplyUnary(fn func(x *E)) error {
	if len(s.items) == 0 {
		return notEnoughOperands(1, 0)
	}
	fn(&s.items[len(s.items)-1])
	return nil
}

// ApplyBinaryKeepFirst applies fn(&top, second), removes the second
// element and keeps the mutated former top as the new top.
func (s *Dynamic[E]) ApplyBinaryKeepFirst(fn func(x *E, y E)) error {
	n := len(s.items)
	if n < 2 {
		return notEnoughOperands(2, n)
	}
	y := s.items[n-2]
	s.items[n-2] = s.items[n-1]
	s.items = s.items[:n-1]
	fn(&s.items[n-2], y)
	return nil
}

// ApplyBinaryKeepSecond applies fn(top, &second), discards the former
// top and keeps the mutated second as the new top.
func (s *Dynamic[E]) ApplyBinaryKeepSecond(fn func(x E, y *E)) error {
	n := len(s.items)
	if n < 2 {
		return notEnoughOperands(2, n)
	}
	x := s.items[n-1]
	s.items = s.items[:n-1]
	fn(x, &s.items[n-2])
	return nil
}

// String renders one "position: value" line per element, bottom of the
// stack first, positions counted from the top. Presentation only.
func (s *Dynamic[E]) String() string {
	b := strings.Builder{}
	for i, v := range s.items {
		b.WriteString(fmt.Sprintf("%d: %v\n", len(s.items)-1-i, v))
	}
	return b.String()
}
