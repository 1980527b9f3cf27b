package aggregate

import (
	"context"
	"sync"
)

// maxConcurrentFetches bounds simultaneous per-game upstream calls.
const maxConcurrentFetches = 10

// fetchResult pairs a game id with its fetch outcome so callers can decide
// how partial failures degrade.
type fetchResult[T any] struct {
	gameID string
	value  T
	err    error
}

// fanOut runs fetch for every game id with bounded concurrency and returns
// the results in completion order.
func fanOut[T any](ctx context.Context, gameIDs []string, fetch func(ctx context.Context, gameID string) (T, error)) []fetchResult[T] {
	sem := make(chan struct{}, maxConcurrentFetches)
	results := make(chan fetchResult[T], len(gameIDs))

	var wg sync.WaitGroup
	for _, id := range gameIDs {
		wg.Add(1)
		go func(gameID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			value, err := fetch(ctx, gameID)
			results <- fetchResult[T]{gameID: gameID, value: value, err: err}
		}(id)
	}
	wg.Wait()
	close(results)

	out := make([]fetchResult[T], 0, len(gameIDs))
	for r := range results {
		out = append(out, r)
	}
	return out
}
