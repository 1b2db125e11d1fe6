// Package matrix stores symmetric segment–segment interaction matrices.
//
// The matrix package provides:
//
//   - Lower[T], an n×n symmetric matrix kept as a packed lower triangle;
//     float32 for the interaction matrix consumed by the COSMOSPACE solver,
//     float64 for partial (per-property) matrices.
//   - Symmetric access: At(i,j) and At(j,i) read the same cell, so callers
//     never have to mirror indices themselves.
//   - RenormalizeReferenceState, the two-pass shift to a zero diagonal.
//   - ToSymDense, an export to gonum for downstream linear algebra.
//   - AllClose, a tolerance comparison of two matrices of equal size.
//
// The caller owns every matrix: builders write into a Lower handed to them
// and never allocate behind the caller's back.
package matrix
