package store

import (
	"context"
	"time"

	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/powerup"
	"github.com/arnavj/mathsprint/internal/xp"
)

// Profile is the learner's persisted identity and resources. Level is
// derived from XP on read and never stored.
type Profile struct {
	ID                    int
	Username              string
	XP                    int
	Hearts                int
	MaxHearts             int
	Coins                 int
	StreakCount           int
	LongestStreak         int
	LastActiveDate        time.Time
	LastHeartLoss         time.Time
	DailyXPGoal           int
	DailyXPEarned         int
	TotalXPEarned         int
	TotalLessonsCompleted int
}

// Level returns the level derived from cumulative XP.
func (p *Profile) Level() int {
	return xp.LevelFromXP(p.XP)
}

// ProfileRepo manages the single learner profile.
type ProfileRepo interface {
	// Load returns the profile, or nil if none exists yet.
	Load(ctx context.Context) (*Profile, error)

	// Save upserts the profile.
	Save(ctx context.Context, p *Profile) error
}

// ProgressRepo manages per-lesson progress records.
type ProgressRepo interface {
	// All returns every progress record keyed by lesson ID.
	All(ctx context.Context) (map[string]curriculum.Progress, error)

	// Upsert writes one record (create on first attempt).
	Upsert(ctx context.Context, p curriculum.Progress) error
}

// AchievementRepo manages persisted achievement state.
type AchievementRepo interface {
	// Load merges persisted state onto the seeded catalog.
	Load(ctx context.Context, catalog []achievements.Achievement) ([]achievements.Achievement, error)

	// Save upserts the state of every achievement, stamping fresh
	// unlocks with now.
	Save(ctx context.Context, achievs []achievements.Achievement, now time.Time) error
}

// PowerUpRepo manages the consumable inventory.
type PowerUpRepo interface {
	// All returns every stored entry.
	All(ctx context.Context) ([]powerup.PowerUp, error)

	// Add stores a new entry.
	Add(ctx context.Context, p powerup.PowerUp) error

	// Deactivate marks an entry consumed.
	Deactivate(ctx context.Context, id int) error

	// DeleteExpired removes time-boxed entries past their expiry.
	DeleteExpired(ctx context.Context, now time.Time) error
}
