package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// FileBackend keeps record bodies in a single JSON object on disk.
//
// Writers are serialized within the process by a mutex and across processes
// by an flock on a sibling lock file. Readers see either the previous or the
// next snapshot because writes go through a rename.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend creates a backend for the JSON file at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the location of the data file.
func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) lockPath() string {
	return b.path + ".lock"
}

// All implements Backend.
func (b *FileBackend) All(ctx context.Context) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.read()
}

func (b *FileBackend) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session log: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return map[string]json.RawMessage{}, nil
	}
	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse session log %s: %w", b.path, err)
	}
	if records == nil {
		records = map[string]json.RawMessage{}
	}
	return records, nil
}

// Put implements Backend.
func (b *FileBackend) Put(ctx context.Context, id string, body json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create session log dir: %w", err)
	}

	lockFile, err := os.OpenFile(b.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)

	records, err := b.read()
	if err != nil {
		return err
	}
	records[id] = body

	// Bodies are written compact so they read back byte for byte.
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal session log: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp session log: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(append(data, '\n'))
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp session log: %w", err)
	}
	if err := os.Rename(name, b.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename session log: %w", err)
	}
	return nil
}

// Close implements Backend.
func (b *FileBackend) Close() error {
	return nil
}
