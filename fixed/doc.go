// Package fixed implements standalone 64-bit fixed-point scalars.
//
// A Scalar holds an integer mantissa, a power-of-two exponent, and a tight
// bit-size: the real value is data * 2^exponent, and size is the smallest
// n >= 0 with |data| < 2^n. Every operation picks the output exponent so
// the mantissa stays inside 63 bits, right-shifting (truncating) only when
// the exact result would not fit.
//
// The package provides:
//
//   - FindSize — the bit-width estimator shared with package block,
//     O(1) amortized when the caller's guess is close.
//   - Shift-based renormalization (ShiftLeft / ShiftRight) that changes the
//     integer scale without changing the represented value.
//   - Add, Sub, Mul, Div, Invert, Negate — deterministic integer-only
//     arithmetic; intermediates widen to 128 bits where the exact result
//     demands it.
//   - ToDouble and ApproxEqual — float64 conversion for inspection and
//     testing only.
//
// All operations are allocation-free and complete in O(1) time. Contract
// violations (aliased Sub operands, negative shift counts, division by a
// zero scalar) are reported through package sentinel errors; only a
// FindSize guess outside [0,63] panics, as that can never be data-driven.
package fixed
