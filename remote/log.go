package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/amonks/focusstation/session"
)

// Log is a session.Repository over a Backend.
type Log struct {
	backend Backend
	newID   func() string
}

// NewLog wraps backend. Record IDs are time-ordered UUIDs.
func NewLog(backend Backend) *Log {
	return &Log{backend: backend, newID: newRecordID}
}

// Backend returns the underlying storage.
func (l *Log) Backend() Backend {
	return l.backend
}

// FetchAll implements session.Repository.
func (l *Log) FetchAll(ctx context.Context) ([]session.Record, error) {
	raw, err := l.backend.All(ctx)
	if err != nil {
		return nil, err
	}
	return session.DecodeRecordSet(raw), nil
}

// Append implements session.Repository.
func (l *Log) Append(ctx context.Context, record session.Record) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return l.AppendRaw(ctx, body)
}

// AppendRaw stores body, compacted, under a new ID. Unknown fields are kept,
// so records written by other clients survive.
func (l *Log) AppendRaw(ctx context.Context, body json.RawMessage) (string, error) {
	if !session.IsObject(body) {
		return "", ErrNotObject
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return "", fmt.Errorf("compact record: %w", err)
	}
	id := l.newID()
	if err := l.backend.Put(ctx, id, compact.Bytes()); err != nil {
		return "", err
	}
	return id, nil
}

// Snapshot returns every stored body keyed by ID.
func (l *Log) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	return l.backend.All(ctx)
}

// Close releases the backend.
func (l *Log) Close() error {
	return l.backend.Close()
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
