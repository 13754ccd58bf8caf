package statuscache

import (
	"context"
	"sync"
)

// Key identifies one status lookup.
type Key struct {
	Item string
	Step string
}

// LookupFunc fetches the status for a single pair from the asset
// database.
type LookupFunc func(ctx context.Context, key Key) (string, error)

// defaultWorkers bounds concurrent outstanding lookups when the caller
// passes a non-positive count.
const defaultWorkers = 16

// FetchAll resolves every key and returns the statuses that could be
// fetched, keyed by pair. It blocks until all lookups complete; no
// partial results are exposed earlier. A lookup error or empty status
// simply leaves the key absent from the result.
func FetchAll(ctx context.Context, keys []Key, lookup LookupFunc, workers int) map[Key]string {
	results := make(map[Key]string, len(keys))
	if len(keys) == 0 || lookup == nil {
		return results
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	type fetched struct {
		key    Key
		status string
		ok     bool
	}

	work := make(chan Key)
	out := make(chan fetched)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range work {
				status, err := lookup(ctx, key)
				out <- fetched{key: key, status: status, ok: err == nil && status != ""}
			}
		}()
	}

	go func() {
		defer close(work)
		for _, key := range keys {
			select {
			case work <- key:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	for item := range out {
		if item.ok {
			results[item.key] = item.status
		}
	}
	return results
}
