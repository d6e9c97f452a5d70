// SPDX-License-Identifier: MIT
// Package fixed: scalar arithmetic kernels.
//
// Every kernel follows the same shape:
//   - Stage 1 (Align): pick an output exponent that keeps every aligned
//     operand within 62 bits, so no int64 intermediate can overflow.
//   - Stage 2 (Execute): integer-only arithmetic, widened to 128 bits where
//     the exact result demands it (Mul, Invert).
//   - Stage 3 (Finalize): store mantissa/exponent and recompute the tight
//     size, seeding FindSize with the bound derived during alignment.
//
// Add and Mul accept aliased operand/output pointers (inputs are read in
// full before the output is written). Sub requires three distinct objects,
// matching its original contract.

package fixed

import "math/bits"

// mulTargetSize caps a product mantissa at 62 bits, leaving one bit of
// headroom for a following addition.
const mulTargetSize = 62

// invertPrecision is the number of extra numerator bits used by Invert:
// the reciprocal mantissa lands in (2^60, 2^62].
const invertPrecision = 61

// Add computes y := a + b. Aliasing among the pointers is allowed.
//
// The operands are brought to a common exponent: the smaller of the two
// input exponents, raised just enough that both aligned mantissas stay
// within 62 bits. Bits of the lower-magnitude operand that fall below that
// exponent are truncated, which is the expected precision loss when the
// operands' scales differ by more than ~62 binary digits.
func Add(a, b, y *Scalar) error {
	if a.size == 0 {
		*y = *b

		return nil
	}
	if b.size == 0 {
		*y = *a

		return nil
	}

	// Stage 1: common exponent. top is the position of the highest possible
	// set bit across both operands; the sum needs at most top+1 bits.
	topA, topB := a.exponent+a.size, b.exponent+b.size
	top := max(topA, topB)
	e := max(min(a.exponent, b.exponent), top+1-MaxSize)

	// Stage 2: aligned mantissas are < 2^62 each, so the sum fits int64.
	sum := shiftBy(a.data, a.exponent-e) + shiftBy(b.data, b.exponent-e)

	// Stage 3: tight size, seeded with the a-priori bound top+1-e <= 63.
	y.data = sum
	y.exponent = e
	y.size = FindSize(Abs64(sum), min(top+1-e, MaxSize))

	return nil
}

// Sub computes y := a - b. Unlike Add, the three pointers must reference
// distinct objects; ErrAliased is returned otherwise.
func Sub(a, b, y *Scalar) error {
	if a == b || a == y || b == y {
		return fixedErrorf(opSub, ErrAliased)
	}
	nb := *b
	nb.Negate()

	return Add(a, &nb, y)
}

// Mul computes y := a * b. Aliasing among the pointers is allowed.
//
// The exact product is formed in 128 bits and right-shifted (truncating
// toward zero) just enough to fit 62 bits, so a following Add never needs
// to renormalize first.
func Mul(a, b, y *Scalar) error {
	if a.size == 0 || b.size == 0 {
		*y = Scalar{}

		return nil
	}

	hi, lo, neg := mulWide(a.data, b.data)
	e := a.exponent + b.exponent
	bound := a.size + b.size // exact product is < 2^bound
	if k := bound - mulTargetSize; k > 0 {
		hi, lo = shr128(hi, lo, k)
		e += k
		bound = mulTargetSize
	}
	// hi is zero now: the remaining magnitude is < 2^62.
	y.data = int64(lo)
	if neg {
		y.data = -y.data
	}
	y.exponent = e
	y.size = FindSize(lo, bound)

	return nil
}

// Invert computes y := 1 / a. Aliasing y with a is allowed.
// Returns ErrDivideByZero when a represents zero.
//
// The reciprocal is floor(2^(a.size+61) / |a|) at exponent
// -(a.size+61)-a.exponent: because the tight size puts |a| in
// [2^(size-1), 2^size), the quotient lands in (2^60, 2^62] — at least 61
// significant bits.
func Invert(a, y *Scalar) error {
	if a.size == 0 {
		return fixedErrorf(opInvert, ErrDivideByZero)
	}

	mag := Abs64(a.data)
	neg := a.data < 0
	num := a.size + invertPrecision

	var q uint64
	if num < 64 {
		q = (uint64(1) << uint(num)) / mag
	} else {
		// bits.Div64 needs hi < mag: hi = 2^(size-3) < 2^(size-1) <= |a|.
		q, _ = bits.Div64(uint64(1)<<uint(num-64), 0, mag)
	}

	y.data = int64(q)
	if neg {
		y.data = -y.data
	}
	y.exponent = -num - a.exponent
	y.size = FindSize(q, mulTargetSize)

	return nil
}

// Div computes y := a / b as a * (1/b). Aliasing among the pointers is
// allowed. Returns ErrDivideByZero when b represents zero.
//
// The reciprocal carries >= 61 significant bits and the product another
// truncation, so the relative error stays below 2^-60 — far inside the
// float64 reference tolerance used for verification.
func Div(a, b, y *Scalar) error {
	if b.size == 0 {
		return fixedErrorf(opDiv, ErrDivideByZero)
	}

	var inv Scalar
	if err := Invert(b, &inv); err != nil {
		return fixedErrorf(opDiv, err)
	}

	return Mul(a, &inv, y)
}
