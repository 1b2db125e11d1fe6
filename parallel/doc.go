// Package parallel provides the fork-join parallel-for used by the
// interaction-matrix builder.
//
// The builder never owns threads. It is handed a Runner and calls
// Runner.For once per pass; each body invocation writes disjoint cells, so
// iteration order never affects the result.
//
// Failure model:
//
//	A body may fail by returning an error or by panicking. The first failure
//	is captured in an ErrorBox under a mutex, remaining work is skipped, and
//	For returns that single error once every worker has joined. Work already
//	done is not rolled back; callers must discard the output of a failed pass.
//
// Runners:
//   - Pool   — bounded goroutine pool on top of errgroup, atomic work counter.
//   - Serial — in-order loop on the calling goroutine with identical failure
//     semantics (handy for tests and for nesting inside a parallel pass).
package parallel
