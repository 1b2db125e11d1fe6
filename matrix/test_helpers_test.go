// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the packed triangle.
//   • Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/matrix"
)

// MustLower allocates an n×n Lower or fails the test.
func MustLower[T matrix.Float](t *testing.T, n int, opts ...matrix.Option) *matrix.Lower[T] {
	t.Helper()
	m, err := matrix.NewLower[T](n, opts...)
	require.NoError(t, err)

	return m
}

// randomLower fills an n×n Lower with N(0, scale²) values from a fixed seed.
func randomLower(t *testing.T, n int, seed int64, scale float64) *matrix.Lower[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustLower[float64](t, n)
	for j := 0; j < n; j++ {
		row := m.Row(j)
		for i := range row {
			row[i] = rng.NormFloat64() * scale
		}
	}

	return m
}
