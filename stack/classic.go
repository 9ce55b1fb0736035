package stack

import "fmt"

// Classic is the fixed four-register stack of classic scientific
// calculators. The registers are X (top), Y, Z and T; the stack never
// grows or shrinks. Whenever an operation consumes operands, the T
// register is duplicated downward to fill the vacated slot, which is
// how a finite set of registers emulates an infinite stack. That
// duplication is a domain rule, not an artifact.
//
// Every Core and Applier operation on a Classic stack is infallible;
// the error results exist to satisfy the shared contracts and are
// always nil.
type Classic[E Number] struct {
	x, y, z, t E
}

// NewClassic returns a stack with the given register values, X first.
func NewClassic[E Number](x, y, z, t E) *Classic[E] {
	return &Classic[E]{x: x, y: y, z: z, t: t}
}

// NewClassicZero returns a stack with all four registers zeroed.
func NewClassicZero[E Number]() *Classic[E] {
	return &Classic[E]{}
}

// X returns the top register.
func (s *Classic[E]) X() E { return s.x }

// Y returns the second register.
func (s *Classic[E]) Y() E { return s.y }

// Z returns the third register.
func (s *Classic[E]) Z() E { return s.z }

// T returns the fourth register.
func (s *Classic[E]) T() E { return s.t }

// Push shifts X→Y→Z→T, discarding the old T, and stores value in X.
func (s *Classic[E]) Push(value E) {
	s.t, s.z, s.y, s.x = s.z, s.y, s.x, value
}

// Pop removes and returns X, shifting Y→X and Z→Y and duplicating T
// into Z. The error is always nil.
func (s *Classic[E]) Pop() (E, error) {
	v := s.x
	s.x, s.y, s.z = s.y, s.z, s.t
	return v, nil
}

// Drop discards X with the same register shift as Pop.
func (s *Classic[E]) Drop() error {
	_, err := s.Pop()
	return err
}

// Swap exchanges X and Y. The error is always nil.
func (s *Classic[E]) Swap() error {
	s.x, s.y = s.y, s.x
	return nil
}

// RotateUp moves T into X and shifts the rest up: X→Y, Y→Z, Z→T.
func (s *Classic[E]) RotateUp() {
	s.x, s.y, s.z, s.t = s.t, s.x, s.y, s.z
}

// RotateDown moves X into T and shifts the rest down: Y→X, Z→Y, T→Z.
func (s *Classic[E]) RotateDown() {
	s.x, s.y, s.z, s.t = s.y, s.z, s.t, s.x
}

// Clear sets all four registers to zero.
func (s *Classic[E]) Clear() {
	var zero E
	s.x, s.y, s.z, s.t = zero, zero, zero, zero
}

// ApplyUnary applies fn to the X register in place.
func (s *Classic[E]) ApplyUnary(fn func(x *E)) error {
	fn(&s.x)
	return nil
}

// ApplyBinaryKeepFirst applies fn(&X, Y), then shifts Z→Y and
// duplicates T into Z. The result stays in X.
func (s *Classic[E]) ApplyBinaryKeepFirst(fn func(x *E, y E)) error {
	fn(&s.x, s.y)
	s.y, s.z = s.z, s.t
	return nil
}

// ApplyBinaryKeepSecond applies fn(X, &Y), then shifts the result into
// X, Z→Y, and duplicates T into Z. The old X is discarded.
func (s *Classic[E]) ApplyBinaryKeepSecond(fn func(x E, y *E)) error {
	fn(s.x, &s.y)
	s.x, s.y, s.z = s.y, s.z, s.t
	return nil
}

// String renders the registers top-of-output last, the way calculator
// displays list them. Presentation only.
func (s *Classic[E]) String() string {
	return fmt.Sprintf("T: %v\nZ: %v\nY: %v\nX: %v\n", s.t, s.z, s.y, s.x)
}
