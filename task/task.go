// Package task stores the per-day task lists of a single user.
package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DayLayout is the layout of day bucket keys.
const DayLayout = "2006-01-02"

// Task is one entry of a day bucket.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Buckets maps a day key to the tasks of that day, in insertion order.
type Buckets map[string][]Task

// DayKey returns the bucket key for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Days returns the bucket keys in ascending order.
func (b Buckets) Days() []string {
	days := make([]string, 0, len(b))
	for day := range b {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Pending returns the tasks of day that are not done.
func (b Buckets) Pending(day string) []Task {
	var pending []Task
	for _, task := range b[day] {
		if !task.Done {
			pending = append(pending, task)
		}
	}
	return pending
}

// complete marks the first pending task matching text as done, appending a
// done task when none matches. It reports whether a new entry was appended.
func (b Buckets) complete(day, text string) bool {
	tasks := b[day]
	for i := range tasks {
		if tasks[i].Text == text && !tasks[i].Done {
			tasks[i].Done = true
			return false
		}
	}
	b[day] = append(tasks, Task{Text: text, Done: true})
	return true
}

// remove deletes the first task matching text, whatever its state.
func (b Buckets) remove(day, text string) bool {
	tasks := b[day]
	for i := range tasks {
		if tasks[i].Text != text {
			continue
		}
		b[day] = append(tasks[:i:i], tasks[i+1:]...)
		return true
	}
	return false
}

// decodeBuckets accepts both the current day-keyed object and the legacy bare
// list, which becomes the bucket for today.
func decodeBuckets(data []byte, today string) (Buckets, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Buckets{}, nil
	}

	if data[0] == '[' {
		var tasks []Task
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("decode legacy task list: %w", err)
		}
		if tasks == nil {
			tasks = []Task{}
		}
		return Buckets{today: tasks}, nil
	}

	var buckets Buckets
	if err := json.Unmarshal(data, &buckets); err != nil {
		return nil, fmt.Errorf("decode task buckets: %w", err)
	}
	if buckets == nil {
		buckets = Buckets{}
	}
	for day, tasks := range buckets {
		if tasks == nil {
			buckets[day] = []Task{}
		}
	}
	return buckets, nil
}
