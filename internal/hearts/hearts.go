// Package hearts implements the regenerating life pool.
//
// Refills are pull-based: nothing runs on a timer. Callers evaluate
// ApplyRefill against the stored loss timestamp whenever hearts are
// consulted.
package hearts

import "time"

const (
	// Max is the default heart capacity per account.
	Max = 5

	// RefillAfter is how long after a loss a heart regenerates.
	RefillAfter = 30 * time.Minute
)

// Lose removes one heart, floored at zero, and returns the new count.
func Lose(current int) int {
	if current <= 0 {
		return 0
	}
	return current - 1
}

// MinutesUntilRefill returns the whole minutes (rounded up) until the
// next heart regenerates, or 0 when a refill is already due.
func MinutesUntilRefill(lastLost, now time.Time) int {
	remaining := RefillAfter - now.Sub(lastLost)
	if remaining <= 0 {
		return 0
	}
	mins := int(remaining / time.Minute)
	if remaining%time.Minute != 0 {
		mins++
	}
	return mins
}

// RefillDue reports whether at least one refill window has elapsed since
// the last heart loss.
func RefillDue(lastLost, now time.Time) bool {
	return now.Sub(lastLost) >= RefillAfter
}

// ApplyRefill regenerates one heart per elapsed refill window, capped at
// max. It returns the new count and the advanced loss timestamp; when the
// pool is full the timestamp is zeroed so no further refills are pending.
func ApplyRefill(current, max int, lastLost, now time.Time) (int, time.Time) {
	if current >= max || lastLost.IsZero() {
		return current, time.Time{}
	}

	elapsed := now.Sub(lastLost)
	refills := int(elapsed / RefillAfter)
	if refills == 0 {
		return current, lastLost
	}

	current += refills
	if current >= max {
		return max, time.Time{}
	}
	return current, lastLost.Add(time.Duration(refills) * RefillAfter)
}
