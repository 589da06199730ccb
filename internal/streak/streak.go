// Package streak computes daily-activity streaks.
//
// A streak counts consecutive calendar days with at least one login. Dates are
// compared in the location of the timestamp passed as "now", so callers decide
// which wall clock the calendar follows.
package streak

import (
	"errors"
	"strings"
	"time"
)

// Record is the persisted streak of one user. LastActivity is kept as the raw
// stored text so that unparseable values can be tolerated.
type Record struct {
	Current      int
	Longest      int
	LastActivity string
}

// State is the streak after an update.
type State struct {
	Current      int
	Longest      int
	LastActivity time.Time
}

var ErrUnparseable = errors.New("streak: unparseable last activity")

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Next applies one day of activity at now to prev. A nil prev starts a new
// streak of one.
func Next(prev *Record, now time.Time) State {
	if prev == nil {
		return State{Current: 1, Longest: 1, LastActivity: now}
	}
	last, err := ParseActivity(prev.LastActivity, now.Location())
	if err != nil {
		last = now
	}
	current := prev.Current
	switch diff := DaysBetween(last, now); {
	case diff == 1:
		current = prev.Current + 1
	case diff > 1:
		current = 1
	}
	longest := prev.Longest
	if current > longest {
		longest = current
	}
	return State{Current: current, Longest: longest, LastActivity: now}
}

// Zero is the snapshot reported for users without a streak row.
func Zero(now time.Time) State {
	return State{LastActivity: now}
}

// DaysBetween returns the number of calendar days from a to b, using the
// location of b for both dates. Negative when a is after b.
func DaysBetween(a, b time.Time) int {
	loc := b.Location()
	a = a.In(loc)
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// ParseActivity reads a stored timestamp. Values without a zone are taken as
// wall-clock time in loc.
func ParseActivity(raw string, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrUnparseable
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrUnparseable
}

// Format renders a timestamp the way ParseActivity reads it back.
func Format(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
