// Package timer implements the countdown focus timer.
//
// A timer moves idle → editing → running ⇄ paused → finished. Cancel returns
// to idle from any state. The timer does not own a clock: callers feed it
// elapsed time through Tick.
package timer

import (
	"fmt"
	"strconv"
	"time"
)

// MaxDigits is the longest session length that can be typed.
const MaxDigits = 3

// State is the phase of a Timer.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateRunning
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timer is a countdown focus session. The zero value is an idle timer.
type Timer struct {
	state     State
	input     string
	planned   int
	remaining time.Duration
	logged    int
	committed bool
}

// New returns an idle timer.
func New() *Timer {
	return &Timer{}
}

// State returns the current phase.
func (t *Timer) State() State { return t.state }

// Input returns the digits typed while editing.
func (t *Timer) Input() string { return t.input }

// Planned returns the session length in minutes once started.
func (t *Timer) Planned() int { return t.planned }

// Remaining returns the time left in the session.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Elapsed returns how long the session has run.
func (t *Timer) Elapsed() time.Duration {
	if t.planned == 0 {
		return 0
	}
	return time.Duration(t.planned)*time.Minute - t.remaining
}

// Logged returns the minutes credited to a finished session.
func (t *Timer) Logged() int { return t.logged }

// Edit starts entering a session length.
func (t *Timer) Edit() error {
	if t.state != StateIdle && t.state != StateEditing {
		return fmt.Errorf("edit while %s: %w", t.state, ErrInvalidState)
	}
	t.state = StateEditing
	t.input = ""
	return nil
}

// Type appends one digit to the session length. Digits past MaxDigits are
// ignored.
func (t *Timer) Type(r rune) error {
	if t.state == StateIdle {
		if err := t.Edit(); err != nil {
			return err
		}
	}
	if t.state != StateEditing {
		return fmt.Errorf("type while %s: %w", t.state, ErrInvalidState)
	}
	if r < '0' || r > '9' {
		return ErrNotDigit
	}
	if len(t.input) < MaxDigits {
		t.input += string(r)
	}
	return nil
}

// Backspace removes the last typed digit.
func (t *Timer) Backspace() {
	if t.state == StateEditing && t.input != "" {
		t.input = t.input[:len(t.input)-1]
	}
}

// SetMinutes replaces the typed input with minutes.
func (t *Timer) SetMinutes(minutes int) error {
	if err := t.Edit(); err != nil {
		return err
	}
	if minutes < 0 {
		return ErrNoDuration
	}
	digits := strconv.Itoa(minutes)
	if len(digits) > MaxDigits {
		return fmt.Errorf("session length %d exceeds %d digits", minutes, MaxDigits)
	}
	t.input = digits
	return nil
}

// Start begins the countdown from the typed length.
func (t *Timer) Start() error {
	if t.state != StateEditing {
		return fmt.Errorf("start while %s: %w", t.state, ErrInvalidState)
	}
	minutes, err := strconv.Atoi(t.input)
	if t.input == "" || err != nil || minutes <= 0 {
		return ErrNoDuration
	}
	t.planned = minutes
	t.remaining = time.Duration(minutes) * time.Minute
	t.state = StateRunning
	return nil
}

// Pause stops the countdown.
func (t *Timer) Pause() error {
	if t.state != StateRunning {
		return fmt.Errorf("pause while %s: %w", t.state, ErrInvalidState)
	}
	t.state = StatePaused
	return nil
}

// Resume continues a paused countdown.
func (t *Timer) Resume() error {
	if t.state != StatePaused {
		return fmt.Errorf("resume while %s: %w", t.state, ErrInvalidState)
	}
	t.state = StateRunning
	return nil
}

// Toggle starts, pauses or resumes depending on the state.
func (t *Timer) Toggle() error {
	switch t.state {
	case StateEditing:
		return t.Start()
	case StateRunning:
		return t.Pause()
	case StatePaused:
		return t.Resume()
	default:
		return fmt.Errorf("toggle while %s: %w", t.state, ErrInvalidState)
	}
}

// Tick advances a running countdown by d and reports whether the session
// finished naturally. Natural finishes credit the planned minutes.
func (t *Timer) Tick(d time.Duration) bool {
	if t.state != StateRunning || d <= 0 {
		return false
	}
	t.remaining -= d
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.state = StateFinished
	t.logged = t.planned
	return true
}

// Finish ends a running or paused session early, crediting the whole
// minutes elapsed and never less than one.
func (t *Timer) Finish() (int, error) {
	if t.state != StateRunning && t.state != StatePaused {
		return 0, fmt.Errorf("finish while %s: %w", t.state, ErrInvalidState)
	}
	t.logged = max(1, int(t.Elapsed()/time.Minute))
	t.state = StateFinished
	return t.logged, nil
}

// Cancel abandons the session and returns to idle.
func (t *Timer) Cancel() {
	*t = Timer{}
}

// FormatClock renders d as MM:SS, rounding partial seconds up.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Display renders the timer face for the current state.
func (t *Timer) Display() string {
	switch t.state {
	case StateIdle:
		return "--:--"
	case StateEditing:
		if t.input == "" {
			return "00:00"
		}
		return t.input + ":00"
	default:
		return FormatClock(t.remaining)
	}
}
