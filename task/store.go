package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amonks/focusstation/session"
)

// Recorder accepts session records for upload.
type Recorder interface {
	Submit(record session.Record) *session.Upload
}

// Options configures a Store.
type Options struct {
	// Username is written into the records of completed tasks.
	Username string

	// Recorder receives one increment record per CompleteTask. Nil disables
	// uploads.
	Recorder Recorder

	// Logger receives load failures. Defaults to stderr.
	Logger *log.Logger

	// Now overrides the clock.
	Now func() time.Time
}

// Store reads and writes the task file.
//
// The file has a single writer, the running client. Concurrent edits by other
// processes are not detected; the last save wins.
type Store struct {
	path     string
	username string
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time
}

// NewStore creates a store backed by the JSON file at path.
func NewStore(path string, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "task: ", log.LstdFlags)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		path:     path,
		username: opts.Username,
		recorder: opts.Recorder,
		logger:   logger,
		now:      now,
	}
}

// Path returns the location of the task file.
func (s *Store) Path() string {
	return s.path
}

// Today returns the bucket key for the current day.
func (s *Store) Today() string {
	return DayKey(s.now())
}

// Load reads the task file. A missing or unreadable file yields empty
// buckets; a legacy bare list is returned as today's bucket without
// rewriting the file.
func (s *Store) Load() Buckets {
	buckets, err := s.load()
	if err != nil {
		s.logger.Print(err)
		return Buckets{}
	}
	return buckets
}

func (s *Store) load() (Buckets, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Buckets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, s.path, err)
	}

	buckets, err := decodeBuckets(data, s.Today())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, s.path, err)
	}
	return buckets, nil
}

// Save writes buckets to disk atomically.
func (s *Store) Save(buckets Buckets) error {
	if buckets == nil {
		buckets = Buckets{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create tasks dir: %w", err)
	}

	data, err := json.MarshalIndent(buckets, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp tasks file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp tasks file: %w", err)
	}

	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename tasks file: %w", err)
	}
	return nil
}

// update loads, applies fn, and saves when fn reports a change. A file that
// exists but cannot be parsed is left alone.
func (s *Store) update(fn func(Buckets) bool) error {
	buckets, err := s.load()
	if err != nil {
		return err
	}
	if !fn(buckets) {
		return nil
	}
	return s.Save(buckets)
}

// AddTask appends a pending task to day. Blank text is ignored.
func (s *Store) AddTask(day, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return s.update(func(b Buckets) bool {
		b[day] = append(b[day], Task{Text: text})
		return true
	})
}

// CompleteTask marks the first pending task matching text done, adding a
// done entry if there is none, and submits one single-task record.
//
// The returned upload is nil when the store has no recorder.
func (s *Store) CompleteTask(day, text string) (*session.Upload, error) {
	text = strings.TrimSpace(text)
	if err := s.MarkDone(day, text); err != nil {
		return nil, err
	}
	if s.recorder == nil {
		return nil, nil
	}
	return s.recorder.Submit(session.NewIncrement(s.username, text, s.now())), nil
}

// MarkDone applies the CompleteTask mutation without uploading anything.
func (s *Store) MarkDone(day, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	return s.update(func(b Buckets) bool {
		b.complete(day, text)
		return true
	})
}

// DeleteTask removes the first task of day matching text and reports
// whether one was found.
func (s *Store) DeleteTask(day, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, ErrEmptyText
	}
	var removed bool
	err := s.update(func(b Buckets) bool {
		removed = b.remove(day, text)
		return removed
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// List returns every task of day.
func (s *Store) List(day string) []Task {
	return s.Load()[day]
}

// ListPending returns the tasks of day that are not done.
func (s *Store) ListPending(day string) []Task {
	return s.Load().Pending(day)
}

// Days returns the days that have a bucket, ascending.
func (s *Store) Days() []string {
	return s.Load().Days()
}
