// SPDX-License-Identifier: MIT

package interaction

import "errors"

var (
	// ErrHBOrientation signals donor/acceptor classes opposite to the σ sign
	// pattern of a hydrogen-bonding pair. It is an upstream data-construction
	// defect, never a user input problem; the build must be discarded.
	ErrHBOrientation = errors.New("interaction: hydrogen-bond classes in unexpected orientation")

	// ErrNotSorted is returned when the collection has not been sorted since
	// its last new type was added.
	ErrNotSorted = errors.New("interaction: segment collection is not sorted")

	// ErrNilCollection is returned for a nil collection.
	ErrNilCollection = errors.New("interaction: nil segment collection")

	// ErrInvalidTemperature is returned for a non-positive or non-finite temperature.
	ErrInvalidTemperature = errors.New("interaction: temperature must be finite and > 0")

	// ErrInvalidParameters wraps every Parameters.Validate failure.
	ErrInvalidParameters = errors.New("interaction: invalid parameters")

	// ErrUnknownPartial is returned for a partial matrix name the builder cannot fill.
	ErrUnknownPartial = errors.New("interaction: unknown partial interaction matrix")
)
