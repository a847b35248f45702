package engine

import (
	"context"
	"fmt"

	"github.com/arnavj/mathsprint/internal/hearts"
	"github.com/arnavj/mathsprint/internal/powerup"
	"github.com/arnavj/mathsprint/internal/store"
	"github.com/arnavj/mathsprint/internal/streak"
)

// DefaultUsername names the profile created on first run.
const DefaultUsername = "player"

// Snapshot is the state handed to the UI after bootstrap.
type Snapshot struct {
	Profile   *store.Profile
	Inventory []powerup.PowerUp

	// StreakExtended is true when today's load advanced the streak.
	StreakExtended bool

	// StreakLost is true when a lapse reset the streak.
	StreakLost bool

	// FreezeUsed is true when a streak freeze absorbed a lapse.
	FreezeUsed bool
}

// Bootstrap loads the profile (creating one on first run) and applies
// the once-per-day transitions: streak evaluation, daily XP reset, lazy
// heart refill, and expired-boost pruning. It must be called exactly
// once per session, before any other action.
func (e *Engine) Bootstrap(ctx context.Context) (*Snapshot, error) {
	now := e.clock()

	profile, err := e.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile = defaultProfile(DefaultUsername)
	}

	if err := e.powerUps.DeleteExpired(ctx, now); err != nil {
		return nil, fmt.Errorf("prune expired power-ups: %w", err)
	}
	inventory, err := e.powerUps.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	prevStreak := profile.StreakCount
	res := streak.Evaluate(streak.State{
		Count:          profile.StreakCount,
		Longest:        profile.LongestStreak,
		LastActiveDate: profile.LastActiveDate,
		DailyXPEarned:  profile.DailyXPEarned,
	}, powerup.HasActiveFreeze(inventory, now), now)

	profile.StreakCount = res.Count
	profile.LongestStreak = res.Longest
	profile.LastActiveDate = res.LastActiveDate
	profile.DailyXPEarned = res.DailyXPEarned

	if res.FreezeConsumed {
		if err := e.consumeFreeze(ctx, inventory); err != nil {
			return nil, err
		}
	}

	profile.Hearts, profile.LastHeartLoss = hearts.ApplyRefill(
		profile.Hearts, profile.MaxHearts, profile.LastHeartLoss, now)

	if err := e.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	inventory, err = e.powerUps.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload inventory: %w", err)
	}

	return &Snapshot{
		Profile:        profile,
		Inventory:      inventory,
		StreakExtended: res.DayChanged && profile.StreakCount > prevStreak,
		StreakLost:     res.DayChanged && profile.StreakCount == 0 && prevStreak > 0,
		FreezeUsed:     res.FreezeConsumed,
	}, nil
}

// consumeFreeze deactivates one active streak freeze.
func (e *Engine) consumeFreeze(ctx context.Context, inventory []powerup.PowerUp) error {
	for _, p := range inventory {
		if p.Type == powerup.TypeStreakFreeze && p.Active {
			if err := e.powerUps.Deactivate(ctx, p.ID); err != nil {
				return fmt.Errorf("consume streak freeze: %w", err)
			}
			return nil
		}
	}
	return nil
}
