// SPDX-License-Identifier: MIT
// Package block: the Elem handle and scalar transfer.

package block

import "github.com/katalvlaran/blockfp/fixed"

// NewElem builds a one-element handle over region storage index off.
//
// Errors: ErrNilRegion, ErrOutOfRange.
func NewElem(r *Region, off int) (Elem, error) {
	if r == nil {
		return Elem{}, blockErrorf(opNewElem, ErrNilRegion)
	}
	if err := validateIndex(off, r.dim); err != nil {
		return Elem{}, blockErrorf(opNewElem, err)
	}

	return Elem{region: r, off: off}, nil
}

// CopyElemToScalar extracts the element as a standalone scalar carrying the
// region's exponent and a freshly computed tight size: y := a.
func CopyElemToScalar(e Elem) fixed.Scalar {
	return fixed.NewScalar(e.region.data[e.off], e.region.exponent)
}

// CopyScalarToElem injects s into the element, translating between the
// scalar's exponent and the region's. The region may be renormalized to
// make the value fit; its size bound grows conservatively.
func CopyScalarToElem(s fixed.Scalar, e Elem) {
	storeScaled(e.region, e.off, s.Data(), s.Size(), s.Exponent())
}
