package stack

import (
	"errors"
	"testing"
)

func TestNotEnoughOperandsError(t *testing.T) {
	var err error = notEnoughOperands(2, 1)

	expected := "not enough operands: 2 required, 1 available"
	if err.Error() != expected {
		t.Errorf("unexpected message: expected %q, got %q", expected, err.Error())
	}

	var underflow *NotEnoughOperandsError
	if !errors.As(err, &underflow) {
		t.Fatal("error is not matchable as NotEnoughOperandsError")
	}
	if underflow.Required != 2 || underflow.Available != 1 {
		t.Errorf("unexpected operand counts: {%d %d}", underflow.Required, underflow.Available)
	}
}
