package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	type record struct {
		ID    string `json:"id"`
		Value int    `json:"value"`
	}

	if err := store.Set(ctx, "studyflow:test", record{ID: "r1", Value: 42}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got record
	if err := store.Get(ctx, "studyflow:test", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "r1" || got.Value != 42 {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestRedisStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	var dest string
	if err := store.Get(ctx, "missing", &dest); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	if err := store.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Remove(ctx, "key"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	var dest string
	if err := store.Get(ctx, "key", &dest); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Remove, got %v", err)
	}
}

func TestRedisStore_Ping(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
