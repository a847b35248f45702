package xp

import "testing"

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
		{500, 11},
	}

	for _, tt := range tests {
		if got := LevelFromXP(tt.xp); got != tt.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestProgressForBounds(t *testing.T) {
	for xpTotal := 0; xpTotal <= 1000; xpTotal++ {
		p := ProgressFor(xpTotal)
		if p.Current < 0 || p.Current >= p.Needed {
			t.Fatalf("ProgressFor(%d).Current = %d, want [0,%d)", xpTotal, p.Current, p.Needed)
		}
		if p.Needed != PerLevel {
			t.Fatalf("ProgressFor(%d).Needed = %d, want %d", xpTotal, p.Needed, PerLevel)
		}
		if p.Percentage != 100*p.Current/PerLevel {
			t.Fatalf("ProgressFor(%d).Percentage = %d", xpTotal, p.Percentage)
		}
	}
}

func TestProgressForMatchesLevel(t *testing.T) {
	p := ProgressFor(75)
	if p.Current != 25 || p.Percentage != 50 {
		t.Errorf("ProgressFor(75) = %+v, want Current=25 Percentage=50", p)
	}
}
