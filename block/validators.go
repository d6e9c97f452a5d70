// SPDX-License-Identifier: MIT
// Package block: canonical validation helpers.
//
// Purpose:
//   - Provide a single source of truth for the contract checks shared by
//     constructors and kernels (bounds, shapes, hints, region distinctness).
//   - Keep kernels minimal: every public operation validates through these
//     helpers before touching any data, then never re-checks mid-loop.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing; each is O(1).
//
// AI-Hints:
//   - Use requireDistinctRegions before any kernel that writes while reading
//     another view; same-region aliasing under differing scale factors is
//     the classic silent-corruption path this package refuses to enter.

package block

// validateSizeHint checks that a caller-supplied size hint is a legal
// FindSize guess, i.e. in [0,63].
func validateSizeHint(hint int) error {
	if hint < 0 || hint > maxBound {
		return ErrSizeHint
	}

	return nil
}

// validateSpan checks that the strided span [off, off+(dim-1)*stride] lies
// entirely inside region storage. Assumes r is non-nil.
func validateSpan(r *Region, off, dim, stride int) error {
	if dim <= 0 {
		return ErrBadDim
	}
	if stride == 0 {
		return ErrZeroStride
	}
	end := off + (dim-1)*stride
	if off < 0 || off >= r.dim || end < 0 || end >= r.dim {
		return ErrOutOfRange
	}

	return nil
}

// validateIndex checks a logical element index against a view dimension.
func validateIndex(i, dim int) error {
	if i < 0 || i >= dim {
		return ErrOutOfRange
	}

	return nil
}

// requireSameDim checks that two vectors have equal logical dimension.
func requireSameDim(a, b Vector) error {
	if a.dim != b.dim {
		return ErrDimMismatch
	}

	return nil
}

// requireDistinctRegions checks that dst's region differs from every source
// region in srcs.
func requireDistinctRegions(dst *Region, srcs ...*Region) error {
	for _, s := range srcs {
		if s == dst {
			return ErrSameRegion
		}
	}

	return nil
}
