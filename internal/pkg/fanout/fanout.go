// Package fanout implements a best-effort broadcast: dispatch an operation
// for every item concurrently, wait for all of them, and collect independent
// outcomes. A failure on one item never cancels or fails the others, and the
// caller decides what to do with the failures (typically log and move on).
package fanout

import (
	"context"
	"sync"
)

// Outcome is the per-item result of a broadcast.
type Outcome[T any] struct {
	Item T
	Err  error
}

// Broadcast runs fn for every item in its own goroutine and waits for all of
// them to finish. The returned outcomes are in the same order as items.
// The shared ctx bounds every dispatch; it is not cancelled on item failure.
func Broadcast[T any](ctx context.Context, items []T, fn func(context.Context, T) error) []Outcome[T] {
	outcomes := make([]Outcome[T], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			outcomes[i] = Outcome[T]{Item: item, Err: fn(ctx, item)}
		}(i, item)
	}
	wg.Wait()

	return outcomes
}

// Failed filters a broadcast result down to the failed outcomes.
func Failed[T any](outcomes []Outcome[T]) []Outcome[T] {
	var failed []Outcome[T]
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
