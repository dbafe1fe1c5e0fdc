package leaderboard

import (
	"reflect"
	"testing"
)

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		0:   "0m",
		59:  "59m",
		60:  "1h 0m",
		90:  "1h 30m",
		125: "2h 5m",
	}
	for total, want := range cases {
		if got := FormatMinutes(total); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", total, got, want)
		}
	}
}

func TestTierForRank(t *testing.T) {
	cases := []struct {
		rank  int
		tier  Tier
		color string
	}{
		{rank: 1, tier: TierGold, color: "#fcd34d"},
		{rank: 2, tier: TierSilver, color: "#e2e8f0"},
		{rank: 3, tier: TierBronze, color: "#fdba74"},
		{rank: 4, tier: TierNone, color: ""},
		{rank: 40, tier: TierNone, color: ""},
	}
	for _, tc := range cases {
		tier := TierForRank(tc.rank)
		if tier != tc.tier {
			t.Errorf("rank %d: expected %s, got %s", tc.rank, tc.tier, tier)
		}
		if tier.Color() != tc.color {
			t.Errorf("rank %d: expected colour %q, got %q", tc.rank, tc.color, tier.Color())
		}
	}
}

func TestHistoryOrdering(t *testing.T) {
	entry := Entry{Histogram: map[string]int{"b": 1, "a": 1, "c": 3}}

	want := []HistoryItem{{Text: "c", Count: 3}, {Text: "a", Count: 1}, {Text: "b", Count: 1}}
	if got := entry.History(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFormatHistoryItem(t *testing.T) {
	if got := FormatHistoryItem("Homework", 1); got != "Homework" {
		t.Errorf("got %q", got)
	}
	if got := FormatHistoryItem("Homework", 3); got != "Homework (x3)" {
		t.Errorf("got %q", got)
	}
}

func TestEntryMarkdown(t *testing.T) {
	entry := Entry{
		Rank:         2,
		Username:     "Alice",
		TotalMinutes: 90,
		TotalTasks:   3,
		Histogram:    map[string]int{"Homework": 2, "fix_bug": 1},
	}

	want := "# #2 Alice\n\n" +
		"Focused **1h 30m** and finished **3** tasks.\n\n" +
		"## History\n\n" +
		"- Homework (x2)\n" +
		"- fix\\_bug\n"
	if got := entry.Markdown(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}

	empty := Entry{Rank: 1, Username: "Bob"}
	if got := empty.Markdown(); got != "# #1 Bob\n\nFocused **0m** and finished **0** tasks.\n\nNo tasks completed yet.\n" {
		t.Fatalf("unexpected empty history %q", got)
	}
}
