// Package powerup models the consumable inventory: streak freezes and
// time-boxed reward multipliers.
package powerup

import "time"

// Type identifies a power-up kind.
type Type string

const (
	TypeStreakFreeze Type = "streak-freeze"
	TypeXPBoost      Type = "xp-boost"
	TypeDoubleCoins  Type = "double-coins"
)

// BoostDuration is how long a purchased multiplier stays active.
const BoostDuration = 30 * time.Minute

// PowerUp is one inventory entry. Entries with an expiry are logically
// gone once now >= ExpiresAt.
type PowerUp struct {
	ID        int
	Type      Type
	Active    bool
	ExpiresAt time.Time // zero for freezes, which expire by consumption
}

// Expired reports whether a time-boxed entry has lapsed.
func (p PowerUp) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && !now.Before(p.ExpiresAt)
}

// Usable reports whether the entry is active and not expired.
func (p PowerUp) Usable(now time.Time) bool {
	return p.Active && !p.Expired(now)
}

// HasActiveFreeze reports whether the inventory holds a usable streak
// freeze.
func HasActiveFreeze(inventory []PowerUp, now time.Time) bool {
	for _, p := range inventory {
		if p.Type == TypeStreakFreeze && p.Usable(now) {
			return true
		}
	}
	return false
}

// XPMultiplier returns 2 while a usable XP boost is held, else 1.
func XPMultiplier(inventory []PowerUp, now time.Time) int {
	return multiplier(inventory, TypeXPBoost, now)
}

// CoinMultiplier returns 2 while a usable double-coins boost is held,
// else 1.
func CoinMultiplier(inventory []PowerUp, now time.Time) int {
	return multiplier(inventory, TypeDoubleCoins, now)
}

func multiplier(inventory []PowerUp, t Type, now time.Time) int {
	for _, p := range inventory {
		if p.Type == t && p.Usable(now) {
			return 2
		}
	}
	return 1
}
