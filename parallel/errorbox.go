// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"sync"
)

// ErrorBox is a single-slot, first-error-wins failure holder shared by the
// workers of one parallel pass. The zero value is ready to use.
type ErrorBox struct {
	mu  sync.Mutex
	err error
}

// Capture stores err unless an earlier error is already held. nil is ignored.
// Complexity: O(1).
func (b *ErrorBox) Capture(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	if b.err == nil {
		b.err = err
	}
	b.mu.Unlock()
}

// Failed reports whether an error has been captured.
func (b *ErrorBox) Failed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.err != nil
}

// Err returns the captured error (nil when none).
func (b *ErrorBox) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.err
}

// Run executes f unless the box already holds an error.
// Implementation:
//   - Stage 1: skip when Failed (no new work after the first failure).
//   - Stage 2: recover a panic from f into ErrWorkerPanic.
//   - Stage 3: capture the returned error.
//
// Run never lets a panic escape the calling goroutine.
func (b *ErrorBox) Run(f func() error) {
	if b.Failed() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.Capture(fmt.Errorf("%w: %v", ErrWorkerPanic, r))
		}
	}()
	b.Capture(f())
}
