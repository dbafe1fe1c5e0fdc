package remote

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amonks/focusstation/session"
)

func TestLogAppendAndFetch(t *testing.T) {
	log := NewLog(NewFileBackend(filepath.Join(t.TempDir(), "sessions.json")))
	ctx := context.Background()
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	first, err := log.Append(ctx, session.NewSummary("Alice", 25, []string{"Write report"}, at))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := log.Append(ctx, session.NewIncrement("Bob", "Dishes", at))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if parsed, err := uuid.Parse(first); err != nil || parsed.Version() != 7 {
		t.Fatalf("expected a v7 uuid, got %q (%v)", first, err)
	}

	records, err := log.FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestLogAppendRawRejectsNonObjects(t *testing.T) {
	log := NewLog(NewFileBackend(filepath.Join(t.TempDir(), "sessions.json")))

	for _, body := range []string{`[]`, `"x"`, `42`, `null`, `{"broken":`} {
		if _, err := log.AppendRaw(context.Background(), json.RawMessage(body)); !errors.Is(err, ErrNotObject) {
			t.Fatalf("AppendRaw(%s): expected ErrNotObject, got %v", body, err)
		}
	}
}

func TestLogAppendRawKeepsUnknownFields(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "sessions.json"))
	log := NewLog(backend)
	ctx := context.Background()

	id, err := log.AppendRaw(ctx, json.RawMessage(`{ "username": "Alice", "mood": "great" }`))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	raw, err := backend.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if got, want := string(raw[id]), `{"username":"Alice","mood":"great"}`; got != want {
		t.Fatalf("expected stored body %s, got %s", want, got)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw[id], &fields); err != nil {
		t.Fatalf("decode stored body: %v", err)
	}
	if fields["mood"] != "great" {
		t.Fatalf("expected unknown field to survive, got %v", fields)
	}
}

func TestFileBackendKeepsEarlierBodiesStable(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "sessions.json"))
	ctx := context.Background()

	first := json.RawMessage(`{"username":"Bob","tasks_done":["Read"]}`)
	if err := backend.Put(ctx, "a", first); err != nil {
		t.Fatalf("put a: %v", err)
	}
	if err := backend.Put(ctx, "b", json.RawMessage(`{"username":"Alice"}`)); err != nil {
		t.Fatalf("put b: %v", err)
	}

	raw, err := backend.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if string(raw["a"]) != string(first) {
		t.Fatalf("expected %s after a second put, got %s", first, raw["a"])
	}
}
