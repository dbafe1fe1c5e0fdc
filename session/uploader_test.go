package session

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"
)

type memoryRepository struct {
	mu      sync.Mutex
	records []Record
	err     error
	block   chan struct{}
}

func (repo *memoryRepository) FetchAll(context.Context) ([]Record, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return append([]Record(nil), repo.records...), nil
}

func (repo *memoryRepository) Append(ctx context.Context, record Record) (string, error) {
	if repo.block != nil {
		select {
		case <-repo.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if repo.err != nil {
		return "", repo.err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.records = append(repo.records, record)
	return "id-" + record.Username, nil
}

func TestUploaderSubmitAppends(t *testing.T) {
	repo := &memoryRepository{}
	uploader := NewUploader(repo, UploaderOptions{})

	upload := uploader.Submit(NewIncrement("Alice", "Write report", time.Now()))
	id, err := upload.Wait(context.Background())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if id != "id-Alice" {
		t.Fatalf("id = %q", id)
	}

	records, _ := repo.FetchAll(context.Background())
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
}

func TestUploaderLogsFailures(t *testing.T) {
	var logs bytes.Buffer
	repo := &memoryRepository{err: errors.New("connection refused")}
	uploader := NewUploader(repo, UploaderOptions{Logger: log.New(&logs, "", 0)})

	_, err := uploader.Submit(NewIncrement("Alice", "X", time.Now())).Wait(context.Background())
	if err == nil {
		t.Fatal("expected upload error")
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Fatalf("expected failure to be logged, got %q", logs.String())
	}
}

func TestUploaderWaitDrainsPendingUploads(t *testing.T) {
	repo := &memoryRepository{block: make(chan struct{})}
	uploader := NewUploader(repo, UploaderOptions{})

	first := uploader.Submit(NewIncrement("Alice", "A", time.Now()))
	second := uploader.Submit(NewIncrement("Bob", "B", time.Now()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := uploader.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline while uploads are blocked, got %v", err)
	}

	close(repo.block)
	if err := uploader.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	for _, upload := range []*Upload{first, second} {
		select {
		case <-upload.Done():
		default:
			t.Fatal("expected upload to be done after Wait")
		}
	}
}

func TestUploaderWithoutRepository(t *testing.T) {
	uploader := NewUploader(nil, UploaderOptions{})

	_, err := uploader.Submit(Record{}).Wait(context.Background())
	if !errors.Is(err, ErrNoRepository) {
		t.Fatalf("expected ErrNoRepository, got %v", err)
	}
	if err := uploader.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
}
