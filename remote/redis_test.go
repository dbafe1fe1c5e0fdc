package remote

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amonks/focusstation/session"
)

func TestRedisBackendRoundTrip(t *testing.T) {
	redisURL := os.Getenv("FOCUS_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("FOCUS_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	key := "focusstation:test:" + uuid.NewString()

	backend, err := NewRedisBackend(ctx, redisURL, key)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		backend.client.Del(context.Background(), key)
		backend.Close()
	})

	log := NewLog(backend)
	if _, err := log.Append(ctx, session.NewSummary("Alice", 25, nil, time.Now())); err != nil {
		t.Fatalf("append: %v", err)
	}
	records, err := log.FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 || records[0].Minutes() != 25 {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestOpenBackendRejectsUnknownStorage(t *testing.T) {
	if _, err := OpenBackend(context.Background(), BackendOptions{Storage: "mongo"}); err == nil {
		t.Fatal("expected error for unknown storage")
	}
	if _, err := OpenBackend(context.Background(), BackendOptions{Storage: "redis"}); err == nil {
		t.Fatal("expected error for redis without url")
	}
	backend, err := OpenBackend(context.Background(), BackendOptions{DataFile: "/tmp/focus.json"})
	if err != nil {
		t.Fatalf("open file backend: %v", err)
	}
	if _, ok := backend.(*FileBackend); !ok {
		t.Fatalf("expected file backend, got %T", backend)
	}
}
