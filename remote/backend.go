// Package remote implements the shared session log: an HTTP client for
// Firebase-style endpoints, a local file emulation, and the server behind
// `focus serve`.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Backend stores raw record bodies by ID.
type Backend interface {
	// All returns every stored body keyed by ID.
	All(ctx context.Context) (map[string]json.RawMessage, error)

	// Put stores body under id.
	Put(ctx context.Context, id string, body json.RawMessage) error

	Close() error
}

// BackendOptions selects and configures a Backend.
type BackendOptions struct {
	// Storage is "file" or "redis".
	Storage string

	DataFile string
	RedisURL string
	RedisKey string
}

// OpenBackend opens the backend named by opts.Storage.
func OpenBackend(ctx context.Context, opts BackendOptions) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Storage)) {
	case "", "file":
		if opts.DataFile == "" {
			return nil, fmt.Errorf("file storage requires a data file")
		}
		return NewFileBackend(opts.DataFile), nil
	case "redis":
		return NewRedisBackend(ctx, opts.RedisURL, opts.RedisKey)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStorage, opts.Storage)
	}
}
