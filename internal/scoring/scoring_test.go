package scoring

import "testing"

func TestStars(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{10, 10, 3},
		{9, 10, 3},
		{8, 10, 2},
		{7, 10, 2},
		{6, 10, 1},
		{5, 10, 1},
		{4, 10, 0},
		{0, 10, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := Stars(tt.correct, tt.total)
		if got != tt.want {
			t.Errorf("Stars(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestBonusEligible(t *testing.T) {
	tests := []struct {
		remaining int
		want      bool
	}{
		{30, true},
		{20, true},
		{19, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := BonusEligible(tt.remaining, 20); got != tt.want {
			t.Errorf("BonusEligible(%d, 20) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestTallyFastCorrectEarnsBonus(t *testing.T) {
	tally := NewTally(DefaultConfig())

	tally.Record(true, 25)
	if tally.Score != 2 || tally.BonusPoints != 1 {
		t.Errorf("fast correct: score=%d bonus=%d, want 2/1", tally.Score, tally.BonusPoints)
	}

	tally.Record(true, 10)
	if tally.Score != 3 || tally.BonusPoints != 1 {
		t.Errorf("slow correct: score=%d bonus=%d, want 3/1", tally.Score, tally.BonusPoints)
	}
}

func TestTallyWrongResetsStreak(t *testing.T) {
	tally := NewTally(DefaultConfig())

	tally.Record(true, 5)
	tally.Record(true, 5)
	if tally.Streak != 2 {
		t.Fatalf("streak = %d, want 2", tally.Streak)
	}

	tally.Record(false, 25)
	if tally.Streak != 0 {
		t.Errorf("streak after wrong = %d, want 0", tally.Streak)
	}
	if tally.BonusPoints != 0 {
		t.Errorf("wrong answer granted a bonus")
	}
	if tally.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", tally.BestStreak)
	}
	if tally.Answered != 3 || tally.Correct != 2 {
		t.Errorf("answered=%d correct=%d, want 3/2", tally.Answered, tally.Correct)
	}
}

func TestTallyTimeout(t *testing.T) {
	tally := NewTally(DefaultConfig())
	tally.Record(true, 22)
	tally.Record(false, 0) // timeout

	if tally.Streak != 0 {
		t.Errorf("streak after timeout = %d, want 0", tally.Streak)
	}
	if tally.Score != 2 {
		t.Errorf("score = %d, want 2", tally.Score)
	}
}
