package datemath

import (
	"regexp"
	"strconv"
	"time"
)

// dateRule looks for one written date form. matched reports that the surface
// form was present; ok reports that it named a real calendar day.
type dateRule func(text string, now time.Time) (day time.Time, matched, ok bool)

var (
	monthPattern   = alternation(months)
	weekdayPattern = alternation(weekdays)

	// "on 5th of may", "on the 3rd march", "on 21 december"
	reDayOfMonthName = regexp.MustCompile(`\bon\s+(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthPattern + `)\b`)
	// "on 5 may"
	reDayMonthName = regexp.MustCompile(`\bon\s+(\d{1,2})\s+(` + monthPattern + `)\b`)
	// "on may 5", "on may 5th"
	reMonthNameDay = regexp.MustCompile(`\bon\s+(` + monthPattern + `)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	// "on 20/06", "on 06-20", "on 5.6"
	reNumericDate = regexp.MustCompile(`\bon\s+(\d{1,2})[/.-](\d{1,2})\b`)

	reWeekday = regexp.MustCompile(`\b(on|this|next)\s+(` + weekdayPattern + `)\b`)
)

// dateRules run in order; the first rule that yields a real date wins.
var dateRules = []dateRule{
	matchDayOfMonthName,
	matchDayMonthName,
	matchMonthNameDay,
	matchNumericDate,
}

func matchDayOfMonthName(text string, now time.Time) (time.Time, bool, bool) {
	m := reDayOfMonthName.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	day, _ := strconv.Atoi(m[1])
	d, ok := resolveDate(day, months[m[2]], now)
	return d, true, ok
}

func matchDayMonthName(text string, now time.Time) (time.Time, bool, bool) {
	m := reDayMonthName.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	day, _ := strconv.Atoi(m[1])
	d, ok := resolveDate(day, months[m[2]], now)
	return d, true, ok
}

func matchMonthNameDay(text string, now time.Time) (time.Time, bool, bool) {
	m := reMonthNameDay.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	day, _ := strconv.Atoi(m[2])
	d, ok := resolveDate(day, months[m[1]], now)
	return d, true, ok
}

func matchNumericDate(text string, now time.Time) (time.Time, bool, bool) {
	m := reNumericDate.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	n1, _ := strconv.Atoi(m[1])
	n2, _ := strconv.Atoi(m[2])
	day, month := disambiguate(n1, n2)
	d, ok := resolveDate(day, time.Month(month), now)
	return d, true, ok
}

// disambiguate orders two numbers into day and month. A lone value above 12
// can only be the day; otherwise the first number is the day.
func disambiguate(n1, n2 int) (day, month int) {
	if n1 <= 12 && n2 > 12 {
		return n2, n1
	}
	return n1, n2
}

// matchWeekday resolves "on|this|next <weekday>" to a day relative to now.
func matchWeekday(text string, now time.Time) (time.Time, bool) {
	m := reWeekday.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	offset := weekdayOffset(m[1], now.Weekday(), weekdays[m[2]])
	return startOfDay(now).AddDate(0, 0, offset), true
}

// weekdayOffset is the number of days from today to target. "next" always
// lands in the following week; "this" and "on" pick the nearest upcoming
// occurrence, today included.
func weekdayOffset(prefix string, today, target time.Weekday) int {
	naive := int(target) - int(today)
	if prefix == "next" {
		return (naive+7)%7 + 7
	}
	if naive < 0 {
		return naive + 7
	}
	return naive
}

// resolveDate anchors day and month to now's year, moving to next year when
// that day already passed. ok is false when the date does not exist.
func resolveDate(day int, month time.Month, now time.Time) (time.Time, bool) {
	d, ok := civilDate(now.Year(), month, day, now.Location())
	if !ok {
		return time.Time{}, false
	}
	if d.Before(startOfDay(now)) {
		return civilDate(now.Year()+1, month, day, now.Location())
	}
	return d, true
}

// civilDate builds midnight of year-month-day, rejecting values that
// time.Date would silently normalize (31 February, month 13).
func civilDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
