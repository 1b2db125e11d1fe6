// SPDX-License-Identifier: MIT

package segment

import "errors"

// Sentinel errors. Callers match them with errors.Is; Add wraps them with the
// offending value.
var (
	// ErrMoleculeIndex is returned when a molecule index is outside [0, Molecules()).
	ErrMoleculeIndex = errors.New("segment: molecule index out of range")

	// ErrInvalidGroup is returned for a group value outside [0, NumGroups).
	ErrInvalidGroup = errors.New("segment: invalid group")

	// ErrInvalidHBType is returned for a hydrogen-bond class other than 0, 1 or 2.
	ErrInvalidHBType = errors.New("segment: invalid hydrogen-bond type")

	// ErrInvalidArea is returned for a NaN or infinite area.
	ErrInvalidArea = errors.New("segment: invalid area")

	// ErrInvalidSigma is returned for a NaN or infinite σ or σcorr.
	ErrInvalidSigma = errors.New("segment: invalid sigma")

	// ErrInvalidMolecules is returned by NewCollection for a non-positive molecule count.
	ErrInvalidMolecules = errors.New("segment: molecule count must be > 0")
)
