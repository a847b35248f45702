package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavj/mathsprint/ent/achievementstate"
	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/powerup"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, p, "expected nil profile before first save")

	now := time.Now().UTC().Truncate(time.Second)
	saved := &Profile{
		Username:       "ada",
		XP:             120,
		Hearts:         3,
		MaxHearts:      5,
		Coins:          40,
		StreakCount:    4,
		LongestStreak:  6,
		LastActiveDate: now,
		DailyXPGoal:    50,
	}
	require.NoError(t, repo.Save(ctx, saved))
	require.NotZero(t, saved.ID, "save did not assign an id")

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, 120, got.XP)
	assert.Equal(t, 3, got.Hearts)
	assert.Equal(t, 3, got.Level(), "level derived from 120 xp")

	got.Coins = 90
	require.NoError(t, repo.Save(ctx, got))
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, again.Coins)
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := curriculum.Progress{LessonID: "add-1", Completed: true, Stars: 2, BestScore: 8, Attempts: 1}
	require.NoError(t, repo.Upsert(ctx, p))

	p.Stars = 3
	p.Attempts = 2
	require.NoError(t, repo.Upsert(ctx, p))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	got := all["add-1"]
	assert.Equal(t, 3, got.Stars)
	assert.Equal(t, 2, got.Attempts)
	assert.True(t, got.Completed)
}

func TestAchievementStateSticky(t *testing.T) {
	s := openTestStore(t)
	repo := s.AchievementRepo()
	ctx := context.Background()

	catalog := achievements.Seed()
	loaded, err := repo.Load(ctx, catalog)
	require.NoError(t, err)
	require.Len(t, loaded, len(catalog))

	unlockTime := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	loaded[0].Progress = loaded[0].Target
	loaded[0].Unlocked = true
	require.NoError(t, repo.Save(ctx, loaded, unlockTime))

	// A later save with the flag dropped must not re-lock.
	loaded[0].Unlocked = false
	loaded[0].Progress = 0
	require.NoError(t, repo.Save(ctx, loaded, unlockTime.Add(time.Hour)))

	again, err := repo.Load(ctx, catalog)
	require.NoError(t, err)
	assert.True(t, again[0].Unlocked, "persisted unlock was re-locked")

	// The unlock timestamp comes from the caller, not the wall clock.
	row, err := s.Client().AchievementState.Query().
		Where(achievementstate.AchievementID(loaded[0].ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, row.UnlockedAt.Equal(unlockTime), "unlocked_at %v, want %v", row.UnlockedAt, unlockTime)
}

func TestPowerUpLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.PowerUpRepo()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Add(ctx, powerup.PowerUp{Type: powerup.TypeStreakFreeze, Active: true}))
	require.NoError(t, repo.Add(ctx, powerup.PowerUp{
		Type: powerup.TypeXPBoost, Active: true, ExpiresAt: now.Add(-time.Minute),
	}))

	require.NoError(t, repo.DeleteExpired(ctx, now))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, powerup.TypeStreakFreeze, all[0].Type)

	require.NoError(t, repo.Deactivate(ctx, all[0].ID))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.False(t, all[0].Active, "freeze still active after deactivation")
}
