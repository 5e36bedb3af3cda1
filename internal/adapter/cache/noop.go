package cache

import (
	"context"
	"time"
)

// NoopCache is the cache used when caching is disabled. Every read misses
// and every write is discarded.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (*NoopCache) Available() bool {
	return false
}

func (*NoopCache) Get(context.Context, string) (string, bool) {
	return "", false
}

func (*NoopCache) Set(context.Context, string, string, time.Duration) bool {
	return false
}

func (*NoopCache) Clear(context.Context) error {
	return nil
}
