package session

import "context"

// Repository is the shared, append-only log of session records.
//
// Implementations make no read-after-write promise: a FetchAll running
// concurrently with an Append may or may not observe the new record.
type Repository interface {
	// FetchAll returns every record in the log, in no particular order.
	FetchAll(ctx context.Context) ([]Record, error)

	// Append adds one record and returns the ID the log assigned to it.
	Append(ctx context.Context, record Record) (string, error)
}
