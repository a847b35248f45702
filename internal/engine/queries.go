package engine

import (
	"context"
	"fmt"

	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/powerup"
	"github.com/arnavj/mathsprint/internal/store"
)

// Profile returns the current persisted profile.
func (e *Engine) Profile(ctx context.Context) (*store.Profile, error) {
	return e.loadProfile(ctx)
}

// Achievements returns the seeded catalog merged with persisted state.
func (e *Engine) Achievements(ctx context.Context) ([]achievements.Achievement, error) {
	achievs, err := e.achievs.Load(ctx, achievements.Seed())
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	return achievs, nil
}

// Inventory returns the stored power-ups.
func (e *Engine) Inventory(ctx context.Context) ([]powerup.PowerUp, error) {
	inv, err := e.powerUps.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return inv, nil
}
