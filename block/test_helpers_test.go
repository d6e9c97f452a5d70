// Package block_test: shared fixtures and invariant checkers.
package block_test

import (
	"testing"

	"github.com/katalvlaran/blockfp/block"
	"github.com/katalvlaran/blockfp/fixed"
	"github.com/stretchr/testify/require"
)

// mustRegion builds a region over a fresh copy of vals (so table literals
// stay immutable) and fails the test on any constructor error.
func mustRegion(t *testing.T, vals []int64, exponent, sizeHint int) *block.Region {
	t.Helper()
	data := make([]int64, len(vals))
	copy(data, vals)
	r, err := block.NewRegion(data, exponent, sizeHint)
	require.NoError(t, err)

	return r
}

// mustZeroRegion builds an all-zero region of the given dimension.
func mustZeroRegion(t *testing.T, dim int) *block.Region {
	t.Helper()

	return mustRegion(t, make([]int64, dim), 0, 0)
}

// mustVector builds a vector view and fails the test on error.
func mustVector(t *testing.T, r *block.Region, off, dim, stride int) block.Vector {
	t.Helper()
	v, err := block.NewVector(r, off, dim, stride)
	require.NoError(t, err)

	return v
}

// mustFull builds a unit-stride vector spanning the whole region.
func mustFull(t *testing.T, r *block.Region) block.Vector {
	t.Helper()

	return mustVector(t, r, 0, r.Dim(), 1)
}

// mustMatrix builds a matrix view and fails the test on error.
func mustMatrix(t *testing.T, r *block.Region, off, rows, cols, rowStride int) block.Matrix {
	t.Helper()
	m, err := block.NewMatrix(r, off, rows, cols, rowStride, 1)
	require.NoError(t, err)

	return m
}

// checkRegionInvariant asserts |data[i]| < 2^size for every element — the
// conservative size invariant every operation must preserve.
func checkRegionInvariant(t *testing.T, r *block.Region) {
	t.Helper()
	require.GreaterOrEqual(t, r.Size(), 0)
	require.LessOrEqual(t, r.Size(), 63)
	for i := 0; i < r.Dim(); i++ {
		x, err := r.At(i)
		require.NoError(t, err)
		require.LessOrEqual(t, int(fixed.FindSize(fixed.Abs64(x), 0)), r.Size(),
			"element %d = %d breaks |x| < 2^%d", i, x, r.Size())
	}
}

// doubles converts every logical element of v to float64.
func doubles(t *testing.T, v block.Vector) []float64 {
	t.Helper()
	out := make([]float64, v.Dim())
	for i := range out {
		d, err := block.VectorElemToDouble(v, i)
		require.NoError(t, err)
		out[i] = d
	}

	return out
}

// requireApproxSlice compares two float64 slices element-wise with a
// relative tolerance (absolute for entries near zero).
func requireApproxSlice(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if want[i] == got[i] {
			continue
		}
		scale := max(abs(want[i]), abs(got[i]))
		require.LessOrEqual(t, abs(want[i]-got[i]), tol*max(scale, 1),
			"element %d: want %v, got %v", i, want[i], got[i])
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
