package datemath

import (
	"regexp"
	"strconv"
)

// "at 6pm", "at 10:30", "at 9 am"
var reClock = regexp.MustCompile(`\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

// matchClock returns the first "at" time of day on a 24-hour clock.
func matchClock(text string) (hour, minute int, ok bool) {
	m := reClock.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	hour = applyMeridiem(hour, m[3])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func applyMeridiem(hour int, meridiem string) int {
	switch meridiem {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}
