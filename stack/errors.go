package stack

import (
	"errors"
	"fmt"
)

// NotEnoughOperandsError reports that an operation needed more occupied
// stack positions than were available. Available is the stack length at
// the time of the call and is always less than Required.
type NotEnoughOperandsError struct {
	Required  int
	Available int
}

func (e *NotEnoughOperandsError) Error() string {
	return fmt.Sprintf("not enough operands: %d required, %d available", e.Required, e.Available)
}

// ErrOther is reserved for failure modes future representations may
// need. Nothing in this package returns it.
var ErrOther = errors.New("stack operation failed")

func notEnoughOperands(required, available int) error {
	return &NotEnoughOperandsError{Required: required, Available: available}
}
