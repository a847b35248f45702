// Package streak implements the daily-activity continuity rules.
//
// The evaluation runs exactly once per session bootstrap, comparing
// today's calendar date against the stored last-active date. It must not
// run per action or per render.
package streak

import "time"

// State is the streak-relevant slice of the user profile.
type State struct {
	Count          int
	Longest        int
	LastActiveDate time.Time // zero value means no prior activity
	DailyXPEarned  int
}

// Result is the outcome of a day-transition evaluation.
type Result struct {
	State

	// DayChanged is true when today differs from the stored last-active
	// date, meaning the daily XP counter was reset.
	DayChanged bool

	// FreezeConsumed is true when an active streak freeze absorbed a
	// lapse; the caller must deactivate the power-up.
	FreezeConsumed bool
}

// Evaluate applies the day-transition state machine:
//
//	same day        -> no change
//	exactly one day -> count + 1
//	more than one   -> preserved if a freeze is held (and consumed),
//	                   otherwise reset to 0
//
// On any day change the daily XP counter resets, the last-active date
// moves to today, and the longest streak absorbs the new count.
func Evaluate(s State, hasActiveFreeze bool, now time.Time) Result {
	today := dateOnly(now)

	if s.LastActiveDate.IsZero() {
		s.LastActiveDate = today
		return Result{State: s, DayChanged: true}
	}

	last := dateOnly(s.LastActiveDate)
	days := daysBetween(last, today)
	if days == 0 {
		return Result{State: s}
	}

	res := Result{DayChanged: true}
	switch {
	case days == 1:
		s.Count++
	case hasActiveFreeze:
		res.FreezeConsumed = true
	default:
		s.Count = 0
	}

	s.DailyXPEarned = 0
	s.LastActiveDate = today
	if s.Count > s.Longest {
		s.Longest = s.Count
	}
	res.State = s
	return res
}

// dateOnly truncates a timestamp to its calendar date in local time.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween returns whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
