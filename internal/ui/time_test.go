package ui

import (
	"testing"
	"time"
)

func TestShortDuration(t *testing.T) {
	cases := []struct {
		duration time.Duration
		want     string
	}{
		{duration: -time.Second, want: "0s"},
		{duration: 59 * time.Second, want: "59s"},
		{duration: 90 * time.Second, want: "1m"},
		{duration: 3 * time.Hour, want: "3h"},
		{duration: 50 * time.Hour, want: "2d"},
	}
	for _, tc := range cases {
		if got := ShortDuration(tc.duration); got != tc.want {
			t.Errorf("ShortDuration(%s) = %q, want %q", tc.duration, got, tc.want)
		}
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		then time.Time
		want string
	}{
		{name: "minutes", then: now.Add(-2 * time.Minute), want: "2m ago"},
		{name: "seconds", then: now.Add(-20 * time.Second), want: "just now"},
		{name: "zero", then: time.Time{}, want: "never"},
		{name: "future", then: now.Add(time.Hour), want: "never"},
	}
	for _, tc := range cases {
		if got := Ago(tc.then, now); got != tc.want {
			t.Errorf("%s: Ago() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestColorizeWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := Colorize("gold", "#fcd34d"); got != "gold" {
		t.Fatalf("expected plain text, got %q", got)
	}
}
