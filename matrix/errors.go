// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns these sentinels (optionally wrapped
// with coordinates via %w); tests match them with errors.Is. Nothing here
// panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a negative matrix size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	// Public accessors (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a matrix size does not match the
	// segment collection it is built for, or that too few partial matrices
	// were supplied.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmpty is returned by exports that cannot represent a 0×0 matrix.
	ErrEmpty = errors.New("matrix: empty matrix")
)
