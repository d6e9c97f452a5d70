// SPDX-License-Identifier: MIT
// Package fixed: the Scalar type, constructors and renormalization.

package fixed

// Scalar is a standalone fixed-point number: the represented value is
// data * 2^exponent. Unlike a block.Region's conservative bound, size is
// always tight: the smallest n >= 0 with |data| < 2^n.
//
// The zero value is a valid representation of zero. Scalars are plain
// values; y := x copies all three fields, which is the supported way to
// duplicate one.
type Scalar struct {
	data     int64 // mantissa, |data| < 2^63
	exponent int   // power-of-two scale
	size     int   // tight bit-size of |data|
}

// NewScalar builds a Scalar from a mantissa and an exponent, computing the
// tight size. Complexity: O(|size - DefaultSizeGuess|).
func NewScalar(data int64, exponent int) Scalar {
	return Scalar{
		data:     data,
		exponent: exponent,
		size:     FindSize(Abs64(data), DefaultSizeGuess),
	}
}

// NewScalarFromInt builds a Scalar representing the integer v exactly
// (exponent zero).
func NewScalarFromInt(v int64) Scalar {
	return NewScalar(v, 0)
}

// Data returns the integer mantissa.
func (s Scalar) Data() int64 { return s.data }

// Exponent returns the power-of-two scale factor.
func (s Scalar) Exponent() int { return s.exponent }

// Size returns the tight bit-size: the smallest n >= 0 with |Data()| < 2^n.
func (s Scalar) Size() int { return s.size }

// IsZero reports whether the scalar represents zero.
func (s Scalar) IsZero() bool { return s.size == 0 }

// Negate flips the sign in place. Exponent and size are unchanged.
func (s *Scalar) Negate() { s.data = -s.data }

// ShiftRight divides the mantissa by 2^k and raises the exponent by k, so
// the represented value is preserved up to the bits shifted out (the shift
// is arithmetic: truncation toward minus infinity, the documented rounding
// for all lossy right shifts in this module). The tight size is recomputed,
// seeded by the predicted size-k, so the cost is O(1) in practice.
//
// Returns ErrNegativeShift when k < 0.
func (s *Scalar) ShiftRight(k int) error {
	if k < 0 {
		return fixedErrorf(opShiftRight, ErrNegativeShift)
	}
	s.data >>= uint(min(k, MaxSize))
	s.exponent += k
	s.size = FindSize(Abs64(s.data), max(s.size-k, 0))

	return nil
}

// ShiftLeft multiplies the mantissa by 2^k and lowers the exponent by k.
// The shift is exact, so size grows by exactly k. Kept public chiefly for
// verification; the arithmetic operations renormalize on their own.
//
// Returns ErrNegativeShift when k < 0 and ErrShiftOverflow when
// size + k > 63.
func (s *Scalar) ShiftLeft(k int) error {
	if k < 0 {
		return fixedErrorf(opShiftLeft, ErrNegativeShift)
	}
	if s.size+k > MaxSize {
		return fixedErrorf(opShiftLeft, ErrShiftOverflow)
	}
	s.data <<= uint(k)
	s.exponent -= k
	if s.data != 0 {
		s.size += k
	}

	return nil
}
