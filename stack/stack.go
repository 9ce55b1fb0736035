// Package stack implements the register stack of an RPN calculator.
//
// Two representations are provided: Classic, the fixed four-register
// X/Y/Z/T stack of scientific calculators, and Dynamic, an unbounded
// stack. Both satisfy the same two contracts, Core and Applier, and all
// arithmetic is derived from Applier alone (see math.go and float.go),
// so an operation defined once works for every representation.
package stack

// Number is the full set of element types a stack can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed covers the types for which negation and absolute value are
// meaningful.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float covers the types the transcendental operations work on.
type Float interface {
	~float32 | ~float64
}

// Core is the contract for the stack-shuffling primitives. The top of
// the stack is the X register: the most recently pushed element.
//
// Push, RotateUp, RotateDown and Clear cannot fail on any
// representation (rotating a stack with fewer than two elements is a
// no-op), so they carry no error result. Pop, Drop and Swap report
// NotEnoughOperandsError when the stack holds fewer elements than the
// operation consumes; on failure the stack is left untouched.
type Core[E Number] interface {
	// Push inserts value at the top of the stack.
	Push(value E)

	// Pop removes and returns the top element.
	Pop() (E, error)

	// Drop removes the top element and discards it.
	Drop() error

	// Swap exchanges the two topmost elements.
	Swap() error

	// RotateUp cyclically shifts the stack so the bottommost element
	// becomes the top. Applying it length-many times restores the
	// original order.
	RotateUp()

	// RotateDown is the exact inverse of RotateUp.
	RotateDown()

	// Clear resets the stack: a fixed-size representation zeroes its
	// registers, a dynamic one removes all elements.
	Clear()
}

// Applier is the contract the derived operations are built on: apply a
// caller-supplied pure function to the top one or two elements.
//
// For the binary variants, fn receives the top element as x and the
// second-from-top as y; both consume the two operands and leave exactly
// one result, the variant name stating which argument survives. Either
// variant fails with NotEnoughOperandsError when fewer than two
// elements are present, leaving the stack untouched.
type Applier[E Number] interface {
	// ApplyUnary mutates the top element in place. No shape change.
	ApplyUnary(fn func(x *E)) error

	// ApplyBinaryKeepFirst applies fn(&top, second) and collapses the
	// stack by one, keeping the mutated former top as the new top.
	ApplyBinaryKeepFirst(fn func(x *E, y E)) error

	// ApplyBinaryKeepSecond applies fn(top, &second) and collapses the
	// stack by one, keeping the mutated former second as the new top.
	ApplyBinaryKeepSecond(fn func(x E, y *E)) error
}

var (
	_ Core[int]    = (*Classic[int])(nil)
	_ Core[int]    = (*Dynamic[int])(nil)
	_ Applier[int] = (*Classic[int])(nil)
	_ Applier[int] = (*Dynamic[int])(nil)
)
