package powerup

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestExpiry(t *testing.T) {
	boost := PowerUp{Type: TypeXPBoost, Active: true, ExpiresAt: now.Add(10 * time.Minute)}
	if boost.Expired(now) {
		t.Error("boost expired early")
	}
	if !boost.Expired(now.Add(10 * time.Minute)) {
		t.Error("boost should expire exactly at ExpiresAt")
	}

	freeze := PowerUp{Type: TypeStreakFreeze, Active: true}
	if freeze.Expired(now.Add(100 * time.Hour)) {
		t.Error("freezes never expire by time")
	}
}

func TestHasActiveFreeze(t *testing.T) {
	inv := []PowerUp{
		{Type: TypeXPBoost, Active: true, ExpiresAt: now.Add(time.Minute)},
		{Type: TypeStreakFreeze, Active: false},
	}
	if HasActiveFreeze(inv, now) {
		t.Error("inactive freeze counted as usable")
	}

	inv = append(inv, PowerUp{Type: TypeStreakFreeze, Active: true})
	if !HasActiveFreeze(inv, now) {
		t.Error("active freeze not found")
	}
}

func TestMultipliers(t *testing.T) {
	inv := []PowerUp{
		{Type: TypeXPBoost, Active: true, ExpiresAt: now.Add(5 * time.Minute)},
	}

	if m := XPMultiplier(inv, now); m != 2 {
		t.Errorf("XP multiplier = %d, want 2", m)
	}
	if m := CoinMultiplier(inv, now); m != 1 {
		t.Errorf("coin multiplier = %d, want 1 (no double-coins held)", m)
	}
	if m := XPMultiplier(inv, now.Add(6*time.Minute)); m != 1 {
		t.Errorf("XP multiplier after expiry = %d, want 1", m)
	}
}
