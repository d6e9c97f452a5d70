// Package block implements shared-exponent ("block floating point") memory
// regions and the view types built over them.
//
// A Region wraps a caller-owned []int64 together with a single power-of-two
// exponent and a conservative magnitude bound (size): element i represents
// data[i] * 2^exponent and every element satisfies |data[i]| < 2^size. The
// exponent lives on the region — never on a view — so renormalizing (shift
// left/right) keeps every view of the region consistent at once.
//
// Views are lightweight, non-owning windows addressed by offset and stride:
//
//   - Vector — strided, dimension-bounded window
//   - Matrix — row-major window, unit column stride only
//   - Elem   — single-element handle for moving one number between a
//     fixed.Scalar and a position inside a region
//
// Views never outlive their region's backing slice; the caller owns the
// memory and must keep it alive.
//
// Numeric kernels (Copy, Axpy, Scale, broadcast add/set, Dot, MatVec)
// read the operand exponents and sizes, compute a result exponent, and
// conservatively update the destination region's size. When a result would
// not fit the destination region's current scale, the kernel renormalizes
// that region (value-preserving for every resident, up to documented
// right-shift truncation) — never a source region.
//
// Aliasing rules are contracts, not hints: binary vector kernels require
// operands from distinct regions, MatVec requires the output region to be
// distinct from both inputs, and overlapping same-region mutation is
// undefined. Violations surface as package sentinel errors before any data
// is touched.
//
// Everything is single-threaded, allocation-free and bounded-time; see the
// root package doc for the concurrency contract.
package block
