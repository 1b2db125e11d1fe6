// SPDX-License-Identifier: MIT

// Package matrix - packed lower-triangular storage for symmetric matrices.
//
// Purpose:
//   - Store an n×n symmetric matrix as its lower triangle (row ≥ column) in one
//     flat buffer: row j holds columns 0..j at offset j*(j+1)/2.
//   - Guarantee symmetric reads: At(i,j) and At(j,i) address the same cell.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//   - Give hot loops direct row slices (Row) so builders avoid per-cell checks.
//
// Complexity quicksheet:
//   - NewLower: O(n²/2) zero-init; At/Set/Row: O(1); Clone/Mirror: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Float is the element constraint: single precision for the interaction
// matrix handed to the solver, double precision for partial matrices.
type Float interface {
	~float32 | ~float64
}

// lowerErrorf wraps an error with Lower method context and coordinates.
func lowerErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Lower.%s(%d,%d): %w", method, row, col, err)
}

// Lower is a symmetric matrix stored as a packed lower triangle.
//   - n is the order of the matrix.
//   - data holds n(n+1)/2 elements; cell (j,i), j ≥ i, lives at j*(j+1)/2 + i.
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Lower[T Float] struct {
	n              int
	data           []T
	validateNaNInf bool
}

// fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Lower[float32])(nil)
	_ fmt.Stringer = (*Lower[float64])(nil)
)

// NewLower allocates an n×n symmetric zero matrix.
// Implementation:
//   - Stage 1: validate n ≥ 0 (a 0×0 matrix is legal for empty collections).
//   - Stage 2: allocate the packed buffer and resolve the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//
// Complexity:
//   - Time O(n²/2), Space O(n²/2).
func NewLower[T Float](n int, opts ...Option) (*Lower[T], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Lower[T]{
		n:              n,
		data:           make([]T, packedLen(n)),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// packedLen returns n(n+1)/2.
func packedLen(n int) int { return n * (n + 1) / 2 }

// rowStart returns the offset of row j in the packed buffer.
func rowStart(j int) int { return j * (j + 1) / 2 }

// Size returns the order n of the matrix.
func (m *Lower[T]) Size() int { return m.n }

// Len returns the number of stored cells, n(n+1)/2.
func (m *Lower[T]) Len() int { return len(m.data) }

// Bytes returns the size of the packed buffer in bytes.
func (m *Lower[T]) Bytes() uint64 {
	var zero T

	return uint64(len(m.data)) * uint64(unsafe.Sizeof(zero))
}

// indexOf validates (row,col) and maps it to the packed offset of
// (max(row,col), min(row,col)).
// Complexity: O(1).
func (m *Lower[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}
	if row < col {
		row, col = col, row
	}

	return rowStart(row) + col, nil
}

// At returns the energy between i and j; At(i,j) == At(j,i).
// Errors: ErrOutOfRange.
func (m *Lower[T]) At(i, j int) (T, error) {
	off, err := m.indexOf(i, j)
	if err != nil {
		return 0, lowerErrorf(ctxAt, i, j, err)
	}

	return m.data[off], nil
}

// Set stores v for the pair (i,j), in either argument order.
// Errors: ErrOutOfRange; ErrNaNInf when the numeric policy is on.
func (m *Lower[T]) Set(i, j int, v T) error {
	off, err := m.indexOf(i, j)
	if err != nil {
		return lowerErrorf(ctxSet, i, j, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return lowerErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns the packed row j, i.e. cells (j,0)..(j,j), aliasing storage.
// Writes through the slice bypass the numeric policy. Goroutines writing
// different cells may share rows safely.
// Panics (slice bounds) when j is outside [0, Size()); callers iterate
// validated ranges.
func (m *Lower[T]) Row(j int) []T {
	s := rowStart(j)

	return m.data[s : s+j+1 : s+j+1]
}

// Diagonal returns a copy of the diagonal.
// Complexity: O(n).
func (m *Lower[T]) Diagonal() []T {
	d := make([]T, m.n)
	for j := range d {
		d[j] = m.data[rowStart(j)+j]
	}

	return d
}

// Fill sets every cell to v.
func (m *Lower[T]) Fill(v T) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Clone returns a deep copy with the same numeric policy.
func (m *Lower[T]) Clone() *Lower[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Lower[T]{n: m.n, data: cp, validateNaNInf: m.validateNaNInf}
}

// Mirror expands the triangle into a full row-major n×n slice of rows.
// Complexity: O(n²).
func (m *Lower[T]) Mirror() [][]T {
	out := make([][]T, m.n)
	for i := range out {
		out[i] = make([]T, m.n)
	}
	for j := 0; j < m.n; j++ {
		row := m.Row(j)
		for i, v := range row {
			out[j][i] = v
			out[i][j] = v
		}
	}

	return out
}

// CheckFinite scans the stored cells and reports the first NaN/±Inf.
// Complexity: O(n²/2).
func (m *Lower[T]) CheckFinite() error {
	for j := 0; j < m.n; j++ {
		for i, v := range m.Row(j) {
			if !isFinite(v) {
				return lowerErrorf("CheckFinite", j, i, ErrNaNInf)
			}
		}
	}

	return nil
}

// String dumps the lower triangle row by row for diagnostics.
func (m *Lower[T]) String() string {
	var b strings.Builder
	for j := 0; j < m.n; j++ {
		b.WriteString(_fmtRowOpen)
		row := m.Row(j)
		for i, v := range row {
			fmt.Fprintf(&b, "%g", float64(v))
			if i+1 < len(row) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite[T Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
