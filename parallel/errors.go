// SPDX-License-Identifier: MIT

package parallel

import "errors"

var (
	// ErrWorkerPanic wraps a panic recovered inside a parallel body.
	ErrWorkerPanic = errors.New("parallel: worker panicked")

	// ErrNegativeCount is returned by For when n < 0.
	ErrNegativeCount = errors.New("parallel: negative iteration count")
)
