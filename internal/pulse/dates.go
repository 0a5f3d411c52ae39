// Package pulse holds the log store and the streak and completion folds
// computed over it. Every function is pure: inputs are never mutated.
package pulse

import (
	"time"
)

// DayLayout is the canonical day key format.
const DayLayout = "2006-01-02"

// DayKey formats t as a calendar day in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDayKey is the inverse of DayKey. The returned time is the start of
// that day in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	civil, err := time.Parse(DayLayout, key)
	if err != nil {
		return time.Time{}, err
	}
	return dayStart(civil, loc), nil
}

func StartOfDay(t time.Time) time.Time {
	return dayStart(civilDate(t), t.Location())
}

// AddDays moves t by n calendar days and returns the start of that day in
// t's location.
func AddDays(t time.Time, n int) time.Time {
	return dayStart(civilDate(t).AddDate(0, 0, n), t.Location())
}

// WeekInterval returns the Monday-start week containing t: the start of
// Monday up to the last instant of Sunday.
func WeekInterval(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) + 6) % 7
	start := AddDays(t, -offset)
	end := AddDays(start, 7).Add(-time.Nanosecond)
	return start, end
}

// DaysInInterval enumerates the starts of every day from start to end,
// inclusive and ascending, in start's location.
func DaysInInterval(start, end time.Time) []time.Time {
	loc := start.Location()
	first, last := civilDate(start), civilDate(end.In(loc))
	if last.Before(first) {
		return nil
	}
	days := make([]time.Time, 0, 7)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, dayStart(d, loc))
	}
	return days
}

// civilDate is t's calendar day as midnight UTC. Stepping these never
// crosses a clock change.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayStart is the first instant of the calendar day civil in loc. Where the
// clock jumps over midnight the day starts at the end of the jump.
func dayStart(civil time.Time, loc *time.Location) time.Time {
	y, m, d := civil.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if ty, tm, td := t.Date(); ty == y && tm == m && td == d {
		return t
	}
	_, offMidnight := t.Zone()
	_, offNoon := time.Date(y, m, d, 12, 0, 0, 0, loc).Zone()
	return t.Add(time.Duration(offNoon-offMidnight) * time.Second)
}
