// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Runner is a parallel-for: it calls body(i) for every i in [0, n) and
// returns the first failure after all invocations have finished.
// Implementations may run bodies concurrently and in any order.
type Runner interface {
	For(n int, body func(i int) error) error
}

// Compile-time assertions.
var (
	_ Runner = (*Pool)(nil)
	_ Runner = Serial{}
)

// Pool runs bodies on at most Workers goroutines per For call.
// Goroutines live only for the duration of one For call.
type Pool struct {
	workers int
}

// NewPool returns a Pool with the given worker limit.
// workers <= 0 selects runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Pool{workers: workers}
}

// Workers returns the configured worker limit.
func (p *Pool) Workers() int { return p.workers }

// For distributes [0, n) over the pool.
// Implementation:
//   - Stage 1: start min(workers, n) goroutines under an errgroup limit.
//   - Stage 2: each goroutine claims indices from a shared atomic counter,
//     so rows of uneven cost (triangular loops) balance themselves.
//   - Stage 3: every body goes through ErrorBox.Run; after Wait the box
//     holds the first failure, if any.
//
// Complexity:
//   - O(n) claims plus the cost of the bodies; O(workers) goroutines.
func (p *Pool) For(n int, body func(i int) error) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n == 0 {
		return nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return Serial{}.For(n, body)
	}

	var (
		box  ErrorBox
		next atomic.Int64
		g    errgroup.Group
	)
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n || box.Failed() {
					return nil
				}
				box.Run(func() error { return body(i) })
			}
		})
	}
	_ = g.Wait() // workers report through box only

	return box.Err()
}

// Serial is a Runner that executes bodies in index order on the caller's
// goroutine.
type Serial struct{}

// For runs body(0..n-1) sequentially, stopping at the first failure.
func (Serial) For(n int, body func(i int) error) error {
	if n < 0 {
		return ErrNegativeCount
	}

	var box ErrorBox
	for i := 0; i < n && !box.Failed(); i++ {
		box.Run(func() error { return body(i) })
	}

	return box.Err()
}
