package stack

// The arithmetic operations are defined once, against Applier only, as
// one-line compositions of the apply primitives. Which primitive an
// operation picks pins its operand order: the keep-first variant lets
// the top accumulate (new top = old top OP old second), the keep-second
// variant keeps the second operand's slot, which is what division
// needs so that the most recently pushed value acts as the divisor.

// Add replaces the top two elements with their sum.
func Add[E Number](s Applier[E]) error {
	return s.ApplyBinaryKeepFirst(func(x *E, y E) { *x += y })
}

// Subtract replaces the top two elements with top - second.
func Subtract[E Number](s Applier[E]) error {
	return s.ApplyBinaryKeepFirst(func(x *E, y E) { *x -= y })
}

// Multiply replaces the top two elements with their product.
func Multiply[E Number](s Applier[E]) error {
	return s.ApplyBinaryKeepFirst(func(x *E, y E) { *x *= y })
}

// Divide replaces the top two elements with second / top: the value
// pushed last is the divisor. Division by zero is left to the element
// type (a runtime panic for integers, ±Inf or NaN for floats).
func Divide[E Number](s Applier[E]) error {
	return s.ApplyBinaryKeepSecond(func(x E, y *E) { *y /= x })
}

// Negate flips the sign of the top element.
func Negate[E Signed](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = -*x })
}

// Abs replaces the top element with its absolute value.
func Abs[E Signed](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) {
		if *x < 0 {
			*x = -*x
		}
	})
}
