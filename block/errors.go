// SPDX-License-Identifier: MIT
// Package block: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the block
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on a caller-triggered condition; every
// contract violation is detected before any region data is modified.

package block

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRegion indicates that a nil *Region was passed to a constructor.
	ErrNilRegion = errors.New("block: region is nil")

	// ErrEmptyRegion indicates that a region was constructed over an empty
	// backing slice (dim must be > 0).
	ErrEmptyRegion = errors.New("block: empty backing slice")

	// ErrBadDim indicates a non-positive view dimension (dim/rows/cols).
	ErrBadDim = errors.New("block: dimension must be > 0")

	// ErrZeroStride indicates a vector stride of zero.
	ErrZeroStride = errors.New("block: stride must be non-zero")

	// ErrColStride indicates a matrix column stride other than 1, which this
	// kernel does not support and must reject.
	ErrColStride = errors.New("block: column stride must be 1")

	// ErrRowStride indicates a matrix row stride smaller than the number of
	// columns (rows would overlap).
	ErrRowStride = errors.New("block: row stride must be >= cols")

	// ErrOutOfRange indicates that an index or an addressed span falls
	// outside the region's (or parent view's) bounds.
	ErrOutOfRange = errors.New("block: index out of range")

	// ErrDimMismatch indicates incompatible dimensions between operands.
	ErrDimMismatch = errors.New("block: dimension mismatch")

	// ErrSameRegion indicates that operands required to live in distinct
	// regions share one (aliasing hazard under differing exponents).
	ErrSameRegion = errors.New("block: operands must be from distinct regions")

	// ErrNegativeShift is returned when a shift count < 0 is requested.
	ErrNegativeShift = errors.New("block: negative shift count")

	// ErrShiftOverflow is returned when a left shift would push the region's
	// size bound past 63 bits.
	ErrShiftOverflow = errors.New("block: left shift overflows 63-bit bound")

	// ErrSizeHint indicates a size hint outside [0,63].
	ErrSizeHint = errors.New("block: size hint outside [0,63]")
)

// Operation name constants for unified error wrapping and reducing magic
// strings.
const (
	opNewRegion  = "NewRegion"
	opSetSize    = "SetSize"
	opShiftLeft  = "ShiftLeft"
	opShiftRight = "ShiftRight"
	opAt         = "At"
	opNewVector  = "NewVector"
	opSubVector  = "SubVector"
	opNewMatrix  = "NewMatrix"
	opRow        = "Row"
	opNewElem    = "NewElem"
	opCopy       = "Copy"
	opAxpy       = "Axpy"
	opScale      = "Scale"
	opAddScalar  = "AddScalar"
	opSetScalar  = "SetScalar"
	opDot        = "Dot"
	opMatVec     = "MatVec"
	opElemInject = "CopyScalarToVectorElem"
	opElemFetch  = "CopyVectorElemToScalar"
	opIntInject  = "CopyIntToVectorElem"
	opToDouble   = "VectorElemToDouble"
)

// blockErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with a non-nil err.
func blockErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
