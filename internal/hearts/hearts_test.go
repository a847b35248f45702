package hearts

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestLoseFloorsAtZero(t *testing.T) {
	h := Max
	for i := 0; i < 6; i++ {
		h = Lose(h)
	}
	if h != 0 {
		t.Errorf("hearts after 6 losses = %d, want 0", h)
	}
}

func TestMinutesUntilRefill(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 30},
		{1 * time.Second, 30},
		{10 * time.Minute, 20},
		{29*time.Minute + 30*time.Second, 1},
		{30 * time.Minute, 0},
		{45 * time.Minute, 0},
	}

	for _, tt := range tests {
		got := MinutesUntilRefill(now.Add(-tt.elapsed), now)
		if got != tt.want {
			t.Errorf("MinutesUntilRefill(elapsed %v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestRefillDue(t *testing.T) {
	if RefillDue(now.Add(-29*time.Minute), now) {
		t.Error("refill due before 30 minutes")
	}
	if !RefillDue(now.Add(-30*time.Minute), now) {
		t.Error("refill not due at exactly 30 minutes")
	}
}

func TestApplyRefillSingle(t *testing.T) {
	lost := now.Add(-35 * time.Minute)
	h, next := ApplyRefill(2, Max, lost, now)
	if h != 3 {
		t.Errorf("hearts = %d, want 3", h)
	}
	if !next.Equal(lost.Add(RefillAfter)) {
		t.Errorf("next loss timestamp = %v, want advanced by one window", next)
	}
}

func TestApplyRefillMultipleWindows(t *testing.T) {
	h, _ := ApplyRefill(1, Max, now.Add(-95*time.Minute), now)
	if h != 4 {
		t.Errorf("hearts = %d, want 4 (three windows elapsed)", h)
	}
}

func TestApplyRefillCapsAtMax(t *testing.T) {
	h, next := ApplyRefill(4, Max, now.Add(-3*time.Hour), now)
	if h != Max {
		t.Errorf("hearts = %d, want %d", h, Max)
	}
	if !next.IsZero() {
		t.Errorf("full pool should clear the loss timestamp, got %v", next)
	}
}

func TestApplyRefillNothingElapsed(t *testing.T) {
	lost := now.Add(-10 * time.Minute)
	h, next := ApplyRefill(2, Max, lost, now)
	if h != 2 || !next.Equal(lost) {
		t.Errorf("ApplyRefill = (%d, %v), want unchanged", h, next)
	}
}
