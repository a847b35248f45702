package achievements

import "testing"

func find(achievs []Achievement, id string) Achievement {
	for _, a := range achievs {
		if a.ID == id {
			return a
		}
	}
	return Achievement{}
}

func TestEvaluateUnlocksAtTarget(t *testing.T) {
	out := Evaluate(Seed(), Stats{LessonsCompleted: 5, Streak: 2, TotalXP: 120})

	tests := []struct {
		id       string
		unlocked bool
		progress int
	}{
		{"first-lesson", true, 5},
		{"5-lessons", true, 5},
		{"10-lessons", false, 5},
		{"3-day-streak", false, 2},
		{"100-xp", true, 120},
		{"500-xp", false, 120},
		{"perfect-lesson", false, 0},
	}

	for _, tt := range tests {
		a := find(out, tt.id)
		if a.Unlocked != tt.unlocked || a.Progress != tt.progress {
			t.Errorf("%s: unlocked=%v progress=%d, want %v/%d",
				tt.id, a.Unlocked, a.Progress, tt.unlocked, tt.progress)
		}
	}
}

func TestEvaluatePerfectCategory(t *testing.T) {
	out := Evaluate(Seed(), Stats{StarsJustEarned: 3})
	if a := find(out, "perfect-lesson"); !a.Unlocked {
		t.Error("perfect-lesson should unlock on a 3-star result")
	}

	out = Evaluate(Seed(), Stats{StarsJustEarned: 2})
	if a := find(out, "perfect-lesson"); a.Unlocked || a.Progress != 0 {
		t.Errorf("perfect-lesson should stay locked on 2 stars, got %+v", a)
	}
}

func TestUnlockIsSticky(t *testing.T) {
	first := Evaluate(Seed(), Stats{Streak: 7})
	if a := find(first, "7-day-streak"); !a.Unlocked {
		t.Fatal("7-day-streak should unlock at streak 7")
	}

	// Streak has since collapsed; the unlock must survive.
	second := Evaluate(first, Stats{Streak: 0})
	a := find(second, "7-day-streak")
	if !a.Unlocked {
		t.Error("unlocked achievement was re-locked by decreased stats")
	}
	if a.Progress != 7 {
		t.Errorf("unlocked achievement progress rewritten to %d", a.Progress)
	}
}

func TestSpecialPassesThrough(t *testing.T) {
	in := []Achievement{{
		ID:       "beta-tester",
		Category: CategorySpecial,
		Target:   1,
		Progress: 0,
	}}
	out := Evaluate(in, Stats{LessonsCompleted: 50, TotalXP: 9999})
	if out[0].Progress != 0 || out[0].Unlocked {
		t.Errorf("special achievement mutated by engine stats: %+v", out[0])
	}
}

func TestNewlyUnlocked(t *testing.T) {
	before := Evaluate(Seed(), Stats{LessonsCompleted: 1})
	after := Evaluate(before, Stats{LessonsCompleted: 5, TotalXP: 100})

	fresh := NewlyUnlocked(before, after)
	got := make(map[string]bool, len(fresh))
	for _, a := range fresh {
		got[a.ID] = true
	}

	if !got["5-lessons"] || !got["100-xp"] {
		t.Errorf("expected 5-lessons and 100-xp in fresh unlocks, got %v", got)
	}
	if got["first-lesson"] {
		t.Error("first-lesson unlocked earlier; must not re-appear")
	}
}

func TestSeedCatalog(t *testing.T) {
	seed := Seed()
	if len(seed) != 8 {
		t.Fatalf("seed has %d achievements, want 8", len(seed))
	}
	seen := make(map[string]bool)
	for _, a := range seed {
		if a.ID == "" || a.Target <= 0 || a.XPReward <= 0 {
			t.Errorf("malformed seed entry: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
}
