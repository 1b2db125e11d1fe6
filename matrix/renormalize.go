// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/cosmors/parallel"

// RenormalizeReferenceState shifts the matrix to the pure-segment reference
// state: afterwards every self-interaction is exactly zero and every pair
// energy is measured relative to the mean of the two self-interactions.
//
// Implementation:
//   - Stage 0: snapshot the diagonal d (pre-shift values).
//   - Stage 1: for every off-diagonal cell (j,i), j > i:
//     A(j,i) ← A(j,i) − ½·(d_i + d_j). Rows are independent and are handed
//     to r as parallel work.
//   - Stage 2: only after Stage 1 has joined, set A(j,j) = 0 for all j.
//
// Behavior highlights:
//   - Stage ordering is strict: zeroing first would corrupt the subtraction.
//   - On a Stage 1 failure the diagonal is left untouched and the matrix must
//     be treated as invalid (no rollback of rows already shifted).
//
// Inputs:
//   - r: parallel-for; nil runs serially.
//
// Complexity:
//   - Time O(n²/2), Space O(n) for the diagonal snapshot.
func (m *Lower[T]) RenormalizeReferenceState(r parallel.Runner) error {
	if r == nil {
		r = parallel.Serial{}
	}
	d := m.Diagonal()
	half := T(0.5)

	err := r.For(m.n, func(j int) error {
		row := m.Row(j)
		dj := d[j]
		for i := 0; i < j; i++ {
			row[i] = row[i] - half*(d[i]+dj)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for j := 0; j < m.n; j++ {
		m.data[rowStart(j)+j] = 0
	}

	return nil
}
