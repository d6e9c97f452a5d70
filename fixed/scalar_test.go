// Package fixed_test contains unit tests for Scalar construction and
// shift-based renormalization.
package fixed_test

import (
	"testing"

	"github.com/katalvlaran/blockfp/fixed"
	"github.com/stretchr/testify/require"
)

// requireTight asserts the Scalar size invariant: size is the smallest
// n >= 0 with |data| < 2^n.
func requireTight(t *testing.T, s fixed.Scalar) {
	t.Helper()
	require.Equal(t, fixed.FindSize(fixed.Abs64(s.Data()), 0), s.Size(),
		"scalar size must stay tight (data=%d)", s.Data())
}

func TestNewScalar_TightSize(t *testing.T) {
	for _, tc := range []struct {
		data int64
		size int
	}{
		{0, 0}, {1, 1}, {-1, 1}, {2, 2}, {-3, 2}, {7, 3}, {8, 4},
		{100, 7}, {-100, 7}, {1 << 40, 41},
	} {
		s := fixed.NewScalar(tc.data, -2)
		require.Equal(t, tc.size, s.Size(), "data=%d", tc.data)
		require.Equal(t, -2, s.Exponent())
		requireTight(t, s)
	}
}

func TestScalar_ZeroValue(t *testing.T) {
	var s fixed.Scalar
	require.True(t, s.IsZero())
	require.Equal(t, 0.0, s.ToDouble())
}

func TestScalar_Negate(t *testing.T) {
	s := fixed.NewScalarFromInt(100)
	s.Negate()
	require.Equal(t, int64(-100), s.Data())
	require.Equal(t, 7, s.Size(), "negation must not change size")
	s.Negate()
	require.Equal(t, int64(100), s.Data())
}

func TestScalar_ShiftRoundTrip(t *testing.T) {
	// No low bits set below position 3, so ShiftRight(3) is lossless.
	s := fixed.NewScalar(-5<<3, 2)
	orig := s
	require.NoError(t, s.ShiftRight(3))
	require.Equal(t, int64(-5), s.Data())
	require.Equal(t, 5, s.Exponent())
	requireTight(t, s)
	require.InDelta(t, orig.ToDouble(), s.ToDouble(), 0, "value preserved")

	require.NoError(t, s.ShiftLeft(3))
	require.Equal(t, orig, s, "lossless round trip restores the scalar")
}

func TestScalar_ShiftRightTruncates(t *testing.T) {
	// Arithmetic shift: truncation toward minus infinity.
	s := fixed.NewScalarFromInt(-3)
	require.NoError(t, s.ShiftRight(1))
	require.Equal(t, int64(-2), s.Data())
	requireTight(t, s)

	p := fixed.NewScalarFromInt(3)
	require.NoError(t, p.ShiftRight(1))
	require.Equal(t, int64(1), p.Data())
	requireTight(t, p)
}

func TestScalar_ShiftErrors(t *testing.T) {
	s := fixed.NewScalarFromInt(1)
	require.ErrorIs(t, s.ShiftRight(-1), fixed.ErrNegativeShift)
	require.ErrorIs(t, s.ShiftLeft(-1), fixed.ErrNegativeShift)

	big := fixed.NewScalar(1<<40, 0) // size 41
	require.ErrorIs(t, big.ShiftLeft(23), fixed.ErrShiftOverflow)
	require.NoError(t, big.ShiftLeft(22), "size 63 is still representable")
	require.Equal(t, 63, big.Size())
}

func TestScalar_ShiftZero(t *testing.T) {
	var s fixed.Scalar
	require.NoError(t, s.ShiftLeft(10))
	require.True(t, s.IsZero(), "zero stays zero with size 0")
	require.NoError(t, s.ShiftRight(10))
	require.True(t, s.IsZero())
}
