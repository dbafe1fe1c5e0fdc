package timer

import "errors"

var (
	// ErrNoDuration is returned when starting without a positive duration.
	ErrNoDuration = errors.New("no session length entered")

	// ErrInvalidState is returned when an action does not apply to the
	// current state.
	ErrInvalidState = errors.New("invalid timer state")

	// ErrNotDigit is returned when non-digit input is typed.
	ErrNotDigit = errors.New("session length must be digits")
)
