package poslist

import (
	"errors"
	"fmt"
)

// ErrZeroValue is returned when a list item parses to zero. Positions
// are written 1-based, so zero is never a legal value.
var ErrZeroValue = errors.New("list values may not include zero")

// IllegalValueError reports a list token that is not a valid item or
// numeric component. Value holds the offending token text exactly as
// the user wrote it.
type IllegalValueError struct {
	Value string
}

func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("illegal list value: '%s'", e.Value)
}

// RangeOrderError reports a range whose second bound is not strictly
// greater than its first. Both bounds are the 1-based values as
// written by the user.
type RangeOrderError struct {
	First  int
	Second int
}

func (e *RangeOrderError) Error() string {
	return fmt.Sprintf("first number in range (%d) must be lower than second number (%d)", e.First, e.Second)
}
