// Package fanout runs a function over a slice with bounded concurrency,
// keeping results in input order. Budget evaluation uses it to price
// several budgets at once.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome for one item. Err is set when fn failed or the
// context ended before fn could start.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns one Result per item in input order. A maxWorkers below 1 runs
// items one at a time.
//
// Items still waiting for a slot when ctx ends get ctx.Err() and fn is not
// called for them. Run blocks until every started call returns. An empty
// items yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))
	var wg sync.WaitGroup
	for i := range items {
		if err := sem.Acquire(ctx, 1); err != nil {
			for j := i; j < len(items); j++ {
				results[j].Err = err
			}
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			v, err := fn(ctx, items[i])
			results[i] = Result[R]{Value: v, Err: err}
		}()
	}

	wg.Wait()
	return results
}
