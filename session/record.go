// Package session models the focus session records that clients append to
// the shared leaderboard log.
//
// Records are immutable facts. Two shapes occur in practice:
//   - a summary, written when a timer session ends ("25 min" plus the tasks
//     finished during the session)
//   - an increment, written when a single task is completed outside of a
//     timer session ("0 min" plus that one task)
//
// Both shapes share the Record type and are aggregated identically.
package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TimestampLayout is the layout of Record.Date.
	TimestampLayout = "2006-01-02 15:04"

	// IncrementDuration is the duration label of single-task records.
	IncrementDuration = "0 min"
)

// Record is one uploaded focus session.
//
// The JSON keys match what every client of the shared log writes, so the
// field names differ slightly from the Go names.
type Record struct {
	// Username identifies who focused. Empty names aggregate as "Unknown".
	Username string `json:"username"`

	// Date is the local time the record was written, "YYYY-MM-DD HH:MM".
	Date string `json:"date"`

	// Duration is a label such as "25 min". Only its leading integer matters.
	Duration string `json:"duration"`

	// TasksDone lists the text of every task finished in the session.
	TasksDone []string `json:"tasks_done"`

	// TaskCount is the number of tasks the client reported. It usually
	// equals len(TasksDone) but nothing enforces that.
	TaskCount int `json:"task_count"`
}

// NewSummary builds the record written when a timer session ends.
func NewSummary(username string, minutes int, tasks []string, at time.Time) Record {
	done := make([]string, len(tasks))
	copy(done, tasks)
	return Record{
		Username:  username,
		Date:      at.Format(TimestampLayout),
		Duration:  DurationLabel(minutes),
		TasksDone: done,
		TaskCount: len(done),
	}
}

// NewIncrement builds the record written when one task is completed outside
// of a timer session.
func NewIncrement(username, task string, at time.Time) Record {
	return Record{
		Username:  username,
		Date:      at.Format(TimestampLayout),
		Duration:  IncrementDuration,
		TasksDone: []string{task},
		TaskCount: 1,
	}
}

// DurationLabel formats minutes the way clients write durations.
func DurationLabel(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// Minutes returns the whole minutes encoded in the duration label.
func (r Record) Minutes() int {
	return ParseMinutes(r.Duration)
}

// ParseMinutes returns the leading whitespace-delimited integer of label.
// Anything unparsable, and any negative value, counts as zero minutes.
func ParseMinutes(label string) int {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

// Time parses Date in the given location.
func (r Record) Time(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	parsed, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(r.Date), loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
