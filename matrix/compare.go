// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// AllClose reports whether every stored cell satisfies
// |a−b| ≤ atol + rtol·|b|, with b taken from o.
//
// Policy:
//   - m and o must be non-nil and of equal size.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - A NaN cell never compares close.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²/2), early exit on the first violation.
func (m *Lower[T]) AllClose(o *Lower[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("AllClose: %w", ErrNaNInf)
	}
	if m == nil || o == nil {
		return false, fmt.Errorf("AllClose: %w", ErrNilMatrix)
	}
	if m.n != o.n {
		return false, fmt.Errorf("AllClose: %d vs %d: %w", m.n, o.n, ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for k, av := range m.data {
		a, b := float64(av), float64(o.data[k])
		if !(math.Abs(a-b) <= atol+rtol*math.Abs(b)) {
			return false, nil
		}
	}

	return true, nil
}
