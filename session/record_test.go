package session

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{label: "25 min", want: 25},
		{label: "0 min", want: 0},
		{label: "90", want: 90},
		{label: "  7 minutes ", want: 7},
		{label: "+5 min", want: 5},
		{label: "-5 min", want: 0},
		{label: "abc", want: 0},
		{label: "", want: 0},
		{label: "25min", want: 0},
		{label: "25.5 min", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := ParseMinutes(tc.label); got != tc.want {
				t.Fatalf("ParseMinutes(%q) = %d, want %d", tc.label, got, tc.want)
			}
		})
	}
}

func TestNewSummary(t *testing.T) {
	at := time.Date(2026, 3, 4, 9, 7, 0, 0, time.UTC)
	tasks := []string{"Write report", "Email client"}

	record := NewSummary("Alice", 25, tasks, at)
	tasks[0] = "mutated"

	if record.Username != "Alice" {
		t.Errorf("Username = %q", record.Username)
	}
	if record.Date != "2026-03-04 09:07" {
		t.Errorf("Date = %q", record.Date)
	}
	if record.Duration != "25 min" {
		t.Errorf("Duration = %q", record.Duration)
	}
	if record.TaskCount != 2 || len(record.TasksDone) != 2 {
		t.Fatalf("expected two tasks, got %d / %v", record.TaskCount, record.TasksDone)
	}
	if record.TasksDone[0] != "Write report" {
		t.Errorf("summary should copy its tasks, got %q", record.TasksDone[0])
	}
}

func TestNewSummaryWithoutTasksEncodesEmptyList(t *testing.T) {
	record := NewSummary("Bob", 50, nil, time.Now())

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(fields["tasks_done"]) != "[]" {
		t.Fatalf("tasks_done = %s, want []", fields["tasks_done"])
	}
}

func TestNewIncrement(t *testing.T) {
	record := NewIncrement("Alice", "Email client", time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC))

	if record.Duration != IncrementDuration {
		t.Errorf("Duration = %q, want %q", record.Duration, IncrementDuration)
	}
	if record.Minutes() != 0 {
		t.Errorf("Minutes() = %d, want 0", record.Minutes())
	}
	if record.TaskCount != 1 || len(record.TasksDone) != 1 || record.TasksDone[0] != "Email client" {
		t.Fatalf("unexpected tasks: %d %v", record.TaskCount, record.TasksDone)
	}
}

func TestRecordTime(t *testing.T) {
	record := Record{Date: "2026-10-19 14:05"}

	got, ok := record.Time(time.UTC)
	if !ok {
		t.Fatal("expected date to parse")
	}
	want := time.Date(2026, 10, 19, 14, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Time() = %v, want %v", got, want)
	}

	if _, ok := (Record{Date: "yesterday"}).Time(time.UTC); ok {
		t.Fatal("expected malformed date to fail")
	}
}
