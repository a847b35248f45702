package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavj/mathsprint/ent"
	"github.com/arnavj/mathsprint/ent/achievementstate"
	"github.com/arnavj/mathsprint/internal/achievements"
)

// achievementRepo implements AchievementRepo using the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Load(ctx context.Context, catalog []achievements.Achievement) ([]achievements.Achievement, error) {
	rows, err := r.client.AchievementState.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement state: %w", err)
	}

	byID := make(map[string]*ent.AchievementState, len(rows))
	for _, row := range rows {
		byID[row.AchievementID] = row
	}

	out := make([]achievements.Achievement, len(catalog))
	for i, a := range catalog {
		if row, ok := byID[a.ID]; ok {
			a.Progress = row.Progress
			a.Unlocked = row.Unlocked
		}
		out[i] = a
	}
	return out, nil
}

func (r *achievementRepo) Save(ctx context.Context, achievs []achievements.Achievement, now time.Time) error {
	for _, a := range achievs {
		existing, err := r.client.AchievementState.Query().
			Where(achievementstate.AchievementID(a.ID)).
			First(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return fmt.Errorf("query achievement %s: %w", a.ID, err)
			}
			create := r.client.AchievementState.Create().
				SetAchievementID(a.ID).
				SetProgress(a.Progress).
				SetUnlocked(a.Unlocked)
			if a.Unlocked {
				create.SetUnlockedAt(now)
			}
			if _, err := create.Save(ctx); err != nil {
				return fmt.Errorf("create achievement %s: %w", a.ID, err)
			}
			continue
		}

		// Unlock is sticky at the storage layer too.
		update := r.client.AchievementState.UpdateOne(existing).
			SetProgress(a.Progress)
		if a.Unlocked && !existing.Unlocked {
			update.SetUnlocked(true).SetUnlockedAt(now)
		}
		if _, err := update.Save(ctx); err != nil {
			return fmt.Errorf("update achievement %s: %w", a.ID, err)
		}
	}
	return nil
}
