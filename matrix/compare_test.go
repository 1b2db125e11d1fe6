// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/matrix"
)

func TestAllClose(t *testing.T) {
	a := randomLower(t, 6, 11, 10)
	b := a.Clone()

	ok, err := a.AllClose(b, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, b.Set(4, 2, b.Row(4)[2]+1e-3))
	ok, err = a.AllClose(b, 0, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = a.AllClose(b, 0, 2e-3)
	require.NoError(t, err)
	require.True(t, ok)
	// Negative tolerances are normalized.
	ok, err = a.AllClose(b, 0, -2e-3)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllClose_NaNNeverClose(t *testing.T) {
	a := MustLower[float64](t, 2, matrix.WithNoValidateNaNInf())
	b := MustLower[float64](t, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, a.Set(1, 0, math.NaN()))
	require.NoError(t, b.Set(1, 0, math.NaN()))

	ok, err := a.AllClose(b, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := MustLower[float32](t, 2)
	_, err := a.AllClose(MustLower[float32](t, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.AllClose(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = a.AllClose(a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
