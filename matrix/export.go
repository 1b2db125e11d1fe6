// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToSymDense converts the matrix into a gonum *mat.SymDense (float64) for
// consumers built on gonum (formatting, eigen analysis, solvers).
// Errors: ErrEmpty for a 0×0 matrix, which gonum cannot represent.
// Complexity: O(n²).
func (m *Lower[T]) ToSymDense() (*mat.SymDense, error) {
	if m.n == 0 {
		return nil, ErrEmpty
	}
	s := mat.NewSymDense(m.n, nil)
	for j := 0; j < m.n; j++ {
		for i, v := range m.Row(j) {
			s.SetSym(i, j, float64(v))
		}
	}

	return s, nil
}
