// Package history holds the calendar-day helpers behind rank histories:
// nearest-date lookup, day formatting and contiguous day ranges.
package history

import (
	"errors"
	"time"
)

// DateLayout is the day/month/year key format used in stored documents.
const DateLayout = "02/01/2006"

var ErrEmptyHistory = errors.New("history has no entries")

// Nearest returns the element of dates closest to pivot. Ties go to the
// first element encountered. Callers that need "history excluding today"
// must filter today out themselves.
func Nearest(dates []time.Time, pivot time.Time) (time.Time, error) {
	if len(dates) == 0 {
		return time.Time{}, ErrEmptyHistory
	}

	best := dates[0]
	bestDistance := distance(best, pivot)
	for _, d := range dates[1:] {
		if dist := distance(d, pivot); dist < bestDistance {
			best = d
			bestDistance = dist
		}
	}
	return best, nil
}

func distance(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}

// Day truncates t to midnight of its calendar day, in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a stored day key in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Span returns the earliest and latest of dates.
func Span(dates []time.Time) (first, last time.Time, err error) {
	if len(dates) == 0 {
		return time.Time{}, time.Time{}, ErrEmptyHistory
	}
	first, last = dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	return first, last, nil
}

// Days expands [from, to] into one entry per calendar day, both ends included.
// An inverted range yields nothing.
func Days(from, to time.Time) []time.Time {
	from, to = Day(from), Day(to)
	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
