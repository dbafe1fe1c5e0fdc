package ui

import (
	"strconv"
	"time"
)

var ageUnits = []struct {
	size   time.Duration
	suffix string
}{
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
}

// Ago describes then relative to now, e.g. "3h ago". Times under a minute
// old read "just now"; zero or future times read "never".
func Ago(then, now time.Time) string {
	if then.IsZero() || then.After(now) {
		return "never"
	}
	age := now.Sub(then)
	if age < time.Minute {
		return "just now"
	}
	return ShortDuration(age) + " ago"
}

// ShortDuration renders d in its largest whole unit: days, hours, minutes or
// seconds. Negative durations render as "0s".
func ShortDuration(d time.Duration) string {
	for _, unit := range ageUnits {
		if d >= unit.size {
			return strconv.FormatInt(int64(d/unit.size), 10) + unit.suffix
		}
	}
	return strconv.FormatInt(int64(max(d, 0)/time.Second), 10) + "s"
}
