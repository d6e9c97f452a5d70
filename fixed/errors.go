// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the fixed
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors that cannot
// be triggered by runtime data (an out-of-range FindSize guess).

package fixed

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeShift is returned when a shift count < 0 is requested.
	ErrNegativeShift = errors.New("fixed: negative shift count")

	// ErrShiftOverflow is returned when a left shift would push the mantissa
	// past 63 bits (size + count > 63).
	ErrShiftOverflow = errors.New("fixed: left shift overflows 63-bit mantissa")

	// ErrAliased is returned by Sub when the three operands are not distinct
	// objects. Add and Mul accept aliasing; Sub does not.
	ErrAliased = errors.New("fixed: operands must be distinct objects")

	// ErrDivideByZero is returned by Invert and Div when the divisor
	// represents zero.
	ErrDivideByZero = errors.New("fixed: division by zero scalar")
)

// Operation name constants for unified error wrapping.
const (
	opShiftLeft  = "ShiftLeft"
	opShiftRight = "ShiftRight"
	opSub        = "Sub"
	opDiv        = "Div"
	opInvert     = "Invert"
)

// fixedErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func fixedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
