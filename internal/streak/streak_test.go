package streak

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestSameDayNoChange(t *testing.T) {
	s := State{Count: 4, Longest: 6, LastActiveDate: daysAgo(0), DailyXPEarned: 20}
	res := Evaluate(s, false, now)

	if res.DayChanged {
		t.Error("same day should not register a day change")
	}
	if res.Count != 4 || res.DailyXPEarned != 20 {
		t.Errorf("same day mutated state: %+v", res.State)
	}
}

func TestConsecutiveDayIncrements(t *testing.T) {
	s := State{Count: 4, Longest: 4, LastActiveDate: daysAgo(1), DailyXPEarned: 35}
	res := Evaluate(s, false, now)

	if res.Count != 5 {
		t.Errorf("count = %d, want 5", res.Count)
	}
	if res.Longest != 5 {
		t.Errorf("longest = %d, want 5", res.Longest)
	}
	if res.DailyXPEarned != 0 {
		t.Errorf("daily XP = %d, want 0", res.DailyXPEarned)
	}
	if !res.DayChanged || res.FreezeConsumed {
		t.Errorf("flags = %+v", res)
	}
}

func TestLapseResetsWithoutFreeze(t *testing.T) {
	s := State{Count: 4, Longest: 9, LastActiveDate: daysAgo(3)}
	res := Evaluate(s, false, now)

	if res.Count != 0 {
		t.Errorf("count = %d, want 0", res.Count)
	}
	if res.Longest != 9 {
		t.Errorf("longest = %d, want 9", res.Longest)
	}
	if res.FreezeConsumed {
		t.Error("no freeze was held")
	}
}

func TestLapsePreservedByFreeze(t *testing.T) {
	s := State{Count: 4, Longest: 4, LastActiveDate: daysAgo(3)}
	res := Evaluate(s, true, now)

	if res.Count != 4 {
		t.Errorf("count = %d, want 4 (preserved)", res.Count)
	}
	if !res.FreezeConsumed {
		t.Error("freeze should be consumed")
	}
	if !res.DayChanged {
		t.Error("day change expected")
	}
}

func TestFirstActivity(t *testing.T) {
	res := Evaluate(State{}, false, now)
	if !res.DayChanged {
		t.Error("first activity should register a day change")
	}
	if res.LastActiveDate.Day() != now.Day() {
		t.Errorf("last active = %v, want today", res.LastActiveDate)
	}
}

func TestLastActiveAdvancesToToday(t *testing.T) {
	s := State{Count: 1, LastActiveDate: daysAgo(1)}
	res := Evaluate(s, false, now)

	y, m, d := res.LastActiveDate.Date()
	if y != 2025 || m != time.June || d != 15 {
		t.Errorf("last active = %v, want 2025-06-15", res.LastActiveDate)
	}
}
