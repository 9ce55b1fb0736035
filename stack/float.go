package stack

import "math"

// Transcendental operations for float-valued stacks. Like the
// arithmetic in math.go these are built purely on Applier, computing
// through float64 and converting back to the element type.
//
// Domain errors are not trapped here: Asin of a value outside [-1, 1],
// Ln of a negative number and so on yield NaN, which propagates through
// the stack as an ordinary element value. NotEnoughOperandsError is
// reserved for operand-count failures.

// Pow replaces the top two elements with second raised to the top: the
// value pushed last is the exponent.
func Pow[E Float](s Applier[E]) error {
	return s.ApplyBinaryKeepFirst(func(x *E, y E) {
		*x = E(math.Pow(float64(y), float64(*x)))
	})
}

// Ln replaces the top element with its natural logarithm.
func Ln[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Log(float64(*x))) })
}

// Log2 replaces the top element with its base-2 logarithm.
func Log2[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Log2(float64(*x))) })
}

// Log10 replaces the top element with its base-10 logarithm.
func Log10[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Log10(float64(*x))) })
}

// Exp replaces the top element with e raised to it.
func Exp[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Exp(float64(*x))) })
}

// Exp2 replaces the top element with 2 raised to it.
func Exp2[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Exp2(float64(*x))) })
}

// Sin replaces the top element with its sine (radians).
func Sin[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Sin(float64(*x))) })
}

// Cos replaces the top element with its cosine (radians).
func Cos[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Cos(float64(*x))) })
}

// Tan replaces the top element with its tangent (radians).
func Tan[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Tan(float64(*x))) })
}

// Asin replaces the top element with its arcsine.
func Asin[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Asin(float64(*x))) })
}

// Acos replaces the top element with its arccosine.
func Acos[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Acos(float64(*x))) })
}

// Atan replaces the top element with its arctangent.
func Atan[E Float](s Applier[E]) error {
	return s.ApplyUnary(func(x *E) { *x = E(math.Atan(float64(*x))) })
}

// Atan2 replaces the top two elements with atan2(second, top).
func Atan2[E Float](s Applier[E]) error {
	return s.ApplyBinaryKeepFirst(func(x *E, y E) {
		*x = E(math.Atan2(float64(y), float64(*x)))
	})
}
