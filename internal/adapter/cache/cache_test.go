package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNoopCacheNeverHits(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	if c.Available() {
		t.Error("noop cache should report unavailable")
	}

	if ok := c.Set(ctx, "hola", "respuesta", time.Hour); ok {
		t.Error("noop Set should report false")
	}

	if _, ok := c.Get(ctx, "hola"); ok {
		t.Error("noop Get should miss")
	}

	if err := c.Clear(ctx); err != nil {
		t.Errorf("noop Clear should not error, got %v", err)
	}
}

func TestUnreachableRedisDegrades(t *testing.T) {
	c := NewRedisCache(Options{
		Addr:           "localhost:1", // nothing listens here
		ConnectTimeout: 100 * time.Millisecond,
	})
	ctx := context.Background()

	if c.Available() {
		t.Fatal("cache should be unavailable with no server")
	}

	if ok := c.Set(ctx, "hola", "respuesta", time.Hour); ok {
		t.Error("Set against an unavailable cache should report false")
	}

	if _, ok := c.Get(ctx, "hola"); ok {
		t.Error("Get against an unavailable cache should miss")
	}

	if err := c.Clear(ctx); err != nil {
		t.Errorf("Clear against an unavailable cache should not error, got %v", err)
	}
}

func TestKeyNormalization(t *testing.T) {
	c := &RedisCache{namespace: "chatbot_response:"}

	base := c.key("cuanto cuesta la clase")

	for _, q := range []string{
		"Cuanto Cuesta La Clase",
		"  cuanto cuesta la clase  ",
		"CUANTO CUESTA LA CLASE",
	} {
		if got := c.key(q); got != base {
			t.Errorf("key(%q) = %q, want same key as normalized form", q, got)
		}
	}

	if got := c.key("otra pregunta"); got == base {
		t.Error("distinct queries should hash to distinct keys")
	}

	if !strings.HasPrefix(base, "chatbot_response:") {
		t.Errorf("key %q missing namespace prefix", base)
	}
}
