package timer

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/amonks/focusstation/internal/notify"
	"github.com/amonks/focusstation/session"
	"github.com/amonks/focusstation/task"
)

type memoryRepository struct {
	mu      sync.Mutex
	records []session.Record
}

func (r *memoryRepository) FetchAll(context.Context) ([]session.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]session.Record(nil), r.records...), nil
}

func (r *memoryRepository) Append(_ context.Context, record session.Record) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return "id", nil
}

func TestCommitMarksTasksAndUploadsOneSummary(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)
	repo := &memoryRepository{}
	uploader := session.NewUploader(repo, session.UploaderOptions{})
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"), task.Options{
		Username: "Alice",
		Recorder: uploader,
		Now:      func() time.Time { return now },
	})
	day := store.Today()
	for _, text := range []string{"Write report", "Email client"} {
		if err := store.AddTask(day, text); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	notifier := &notify.Recorder{}

	timer := startTimer(t, 25)
	timer.Tick(90 * time.Second)
	if _, err := timer.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	upload, err := timer.Commit(CommitOptions{
		Username: "Alice",
		Tasks:    []string{"Write report", "Email client", "Write report"},
		Store:    store,
		Recorder: uploader,
		Notifier: notifier,
		Now:      func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := upload.Wait(context.Background()); err != nil {
		t.Fatalf("upload: %v", err)
	}

	if pending := store.ListPending(day); len(pending) != 0 {
		t.Fatalf("expected every task done, got %v", pending)
	}

	records, _ := repo.FetchAll(context.Background())
	if len(records) != 1 {
		t.Fatalf("expected exactly one summary record, got %d", len(records))
	}
	want := session.Record{
		Username:  "Alice",
		Date:      "2026-10-19 09:30",
		Duration:  "1 min",
		TasksDone: []string{"Write report", "Email client"},
		TaskCount: 2,
	}
	if !reflect.DeepEqual(records[0], want) {
		t.Fatalf("expected %+v, got %+v", want, records[0])
	}

	if len(notifier.Messages) != 1 || notifier.Messages[0].Body != "Session Done! 1 min logged." {
		t.Fatalf("unexpected notifications %+v", notifier.Messages)
	}

	if _, err := timer.Commit(CommitOptions{}); !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("expected ErrAlreadyCommitted, got %v", err)
	}
}

func TestCommitRequiresFinishedSession(t *testing.T) {
	timer := startTimer(t, 25)
	if _, err := timer.Commit(CommitOptions{}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

type brokenStore struct{}

func (brokenStore) Today() string { return "2026-10-19" }

func (brokenStore) MarkDone(string, string) error { return errors.New("disk full") }

func TestCommitStillUploadsWhenStoreFails(t *testing.T) {
	repo := &memoryRepository{}
	uploader := session.NewUploader(repo, session.UploaderOptions{})

	timer := startTimer(t, 5)
	timer.Tick(5 * time.Minute)

	upload, err := timer.Commit(CommitOptions{
		Username: "Bob",
		Tasks:    []string{"A"},
		Store:    brokenStore{},
		Recorder: uploader,
	})
	if err == nil {
		t.Fatal("expected store error")
	}
	if _, err := upload.Wait(context.Background()); err != nil {
		t.Fatalf("upload: %v", err)
	}
	records, _ := repo.FetchAll(context.Background())
	if len(records) != 1 || records[0].Duration != "5 min" {
		t.Fatalf("unexpected records %+v", records)
	}
}
