package remote

import "errors"

var (
	// ErrNotObject is returned when a record body is not a JSON object.
	ErrNotObject = errors.New("record must be a JSON object")

	// ErrUnknownStorage is returned for an unsupported storage name.
	ErrUnknownStorage = errors.New("unknown storage")
)
