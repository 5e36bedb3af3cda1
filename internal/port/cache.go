package port

import (
	"context"
	"time"
)

// ResponseCache maps a normalized query to a previously computed answer.
// It is an optimization layer, never a correctness dependency: every method
// must degrade cleanly when the backing store is unreachable.
type ResponseCache interface {
	// Available reports whether the backing store was reachable at
	// construction time.
	Available() bool

	// Get returns the cached response for the query, or false on a miss.
	// It never returns errors; a broken backend reads as a miss.
	Get(ctx context.Context, query string) (string, bool)

	// Set stores the response under the normalized query with the given
	// expiry. It reports whether the write happened.
	Set(ctx context.Context, query, response string, ttl time.Duration) bool

	// Clear removes every entry under this cache's own namespace, never
	// the whole backing store.
	Clear(ctx context.Context) error
}
