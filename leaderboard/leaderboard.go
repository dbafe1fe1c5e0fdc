// Package leaderboard folds session records into ranked per-user totals.
//
// Aggregation is a pure function of the record set: the order records arrive
// in never changes the result. Users with equal minutes are ordered by
// username so that the ranking is deterministic.
package leaderboard

import (
	"sort"

	"github.com/amonks/focusstation/session"
)

// UnknownUser names records that carry no username.
const UnknownUser = "Unknown"

// Entry is one ranked row of the leaderboard.
type Entry struct {
	Rank         int            `json:"rank"`
	Username     string         `json:"username"`
	TotalMinutes int            `json:"total_minutes"`
	TotalTasks   int            `json:"total_task_count"`
	Histogram    map[string]int `json:"task_histogram"`
}

// Tier returns the display tier of the entry's rank.
func (e Entry) Tier() Tier {
	return TierForRank(e.Rank)
}

// Aggregate groups records by username, sums minutes and task counts, merges
// task histograms and ranks the result.
func Aggregate(records []session.Record) []Entry {
	byUser := make(map[string]*Entry)
	for _, record := range records {
		name := record.Username
		if name == "" {
			name = UnknownUser
		}

		entry, ok := byUser[name]
		if !ok {
			entry = &Entry{Username: name, Histogram: make(map[string]int)}
			byUser[name] = entry
		}

		entry.TotalMinutes += record.Minutes()
		if record.TaskCount > 0 {
			entry.TotalTasks += record.TaskCount
		}
		for _, text := range record.TasksDone {
			entry.Histogram[text]++
		}
	}

	entries := make([]Entry, 0, len(byUser))
	for _, entry := range byUser {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalMinutes != entries[j].TotalMinutes {
			return entries[i].TotalMinutes > entries[j].TotalMinutes
		}
		return entries[i].Username < entries[j].Username
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Find returns the entry for username.
func Find(entries []Entry, username string) (Entry, bool) {
	if username == "" {
		username = UnknownUser
	}
	for _, entry := range entries {
		if entry.Username == username {
			return entry, true
		}
	}
	return Entry{}, false
}
