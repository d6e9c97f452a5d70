// Package blockfp is a deterministic block floating-point arithmetic
// kernel: real numbers stored as 64-bit integers that share a single
// power-of-two exponent per memory region, with automatic rescaling to
// keep magnitudes inside 63 bits.
//
// 🚀 What is blockfp?
//
//	A small, allocation-free library for exactly-reproducible arithmetic:
//		• fixed/  — standalone Scalar values with tight bit-size tracking,
//		  shift-based renormalization, add/sub/mul/div/invert, and the
//		  FindSize bit-width estimator
//		• block/  — Region memory with one shared exponent, plus Vector,
//		  Matrix and Elem views over it; saxpy, scale, dot product and
//		  matrix-vector kernels with conservative size bookkeeping
//
// ✨ Why choose blockfp?
//
//   - Deterministic – integer-only arithmetic, identical results on every
//     platform; no hidden floating-point rounding
//   - Caller-owned memory – regions wrap slices you allocate; views are
//     lightweight windows, never owners
//   - Fail-fast contracts – sentinel errors for every shape/stride/aliasing
//     violation, checked before any data is touched
//   - Pure Go – no cgo; the only dependency is testify (tests)
//
// Concurrency contract: regions and scalars are not synchronized. Distinct
// regions may be used from distinct goroutines freely; any two operations
// touching one region (including reads concurrent with a renormalizing
// write) require external coordination.
//
// A stored value is reconstructed as data[i] * 2^exponent. The exponent
// lives on the Region, never on a view, so renormalizing one view
// renormalizes every view of the same region consistently.
//
// Conversion to float64 (Scalar.ToDouble, block.VectorElemToDouble) exists
// for inspection and testing only and is not a supported persistence
// format.
//
// Dive into fixed/ and block/ package docs for the full operation set, and
// examples/ for end-to-end scenarios.
package blockfp
