// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. It runs a function across a slice of items
// using a fixed number of worker goroutines, preserving input order in results.
//
// Page services use it in two shapes: Run for homogeneous slices, and
// RunSteps for the heterogeneous fetches behind a single page, where each
// step writes its own destination and only the errors come back.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a semaphore slot,
// that goroutine records ctx.Err() and does not call fn. Goroutines that
// have already acquired a slot run to completion (fn is responsible for
// checking ctx internally if it supports cancellation).
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately.
//
// maxWorkers must be >= 1. If maxWorkers >= len(items), all items run
// concurrently with no semaphore contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			// Context-aware semaphore acquisition.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Step is one named fetch within a page assembly. Fn stores its result
// through a captured destination; only the error is reported back.
type Step struct {
	Name string
	Fn   func(context.Context) error
}

// RunSteps executes the steps concurrently (bounded by maxWorkers) and
// returns their errors in step order. A nil entry means the step
// succeeded.
func RunSteps(ctx context.Context, maxWorkers int, steps []Step) []error {
	results := Run(ctx, maxWorkers, steps, func(ctx context.Context, st Step) (struct{}, error) {
		return struct{}{}, st.Fn(ctx)
	})

	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}
