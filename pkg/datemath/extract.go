package datemath

import (
	"strings"
	"time"
)

// Extract finds the moment a command refers to, relative to now and in now's
// location. It recognizes an optional date ("on may 5", "on 20/06",
// "next friday") followed by a required time of day ("at 6pm").
//
// The result is absent when there is no time of day, when the time of day is
// out of range, or when a written date does not exist. Without an explicit
// date the time lands today, or tomorrow if it already passed.
func Extract(text string, now time.Time) (time.Time, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	day, explicit, ok := resolveDay(normalized, now)
	if !ok {
		return time.Time{}, false
	}

	hour, minute, ok := matchClock(normalized)
	if !ok {
		return time.Time{}, false
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	if !explicit && at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, true
}

// resolveDay picks the calendar day. explicit is false when the text names no
// day and today is used. ok is false when a date was written but is invalid.
func resolveDay(text string, now time.Time) (day time.Time, explicit, ok bool) {
	written := false
	for _, rule := range dateRules {
		d, matched, valid := rule(text, now)
		if valid {
			return d, true, true
		}
		written = written || matched
	}
	if written {
		return time.Time{}, false, false
	}

	if d, found := matchWeekday(text, now); found {
		return d, true, true
	}
	return startOfDay(now), false, true
}
