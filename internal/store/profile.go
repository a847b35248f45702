package store

import (
	"context"
	"fmt"

	"github.com/arnavj/mathsprint/ent"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (*Profile, error) {
	p, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &Profile{
		ID:                    p.ID,
		Username:              p.Username,
		XP:                    p.Xp,
		Hearts:                p.Hearts,
		MaxHearts:             p.MaxHearts,
		Coins:                 p.Coins,
		StreakCount:           p.StreakCount,
		LongestStreak:         p.LongestStreak,
		LastActiveDate:        p.LastActiveDate,
		LastHeartLoss:         p.LastHeartLoss,
		DailyXPGoal:           p.DailyXpGoal,
		DailyXPEarned:         p.DailyXpEarned,
		TotalXPEarned:         p.TotalXpEarned,
		TotalLessonsCompleted: p.TotalLessonsCompleted,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	if p.ID == 0 {
		created, err := r.client.Profile.Create().
			SetUsername(p.Username).
			SetXp(p.XP).
			SetHearts(p.Hearts).
			SetMaxHearts(p.MaxHearts).
			SetCoins(p.Coins).
			SetStreakCount(p.StreakCount).
			SetLongestStreak(p.LongestStreak).
			SetLastActiveDate(p.LastActiveDate).
			SetLastHeartLoss(p.LastHeartLoss).
			SetDailyXpGoal(p.DailyXPGoal).
			SetDailyXpEarned(p.DailyXPEarned).
			SetTotalXpEarned(p.TotalXPEarned).
			SetTotalLessonsCompleted(p.TotalLessonsCompleted).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		p.ID = created.ID
		return nil
	}

	_, err := r.client.Profile.UpdateOneID(p.ID).
		SetUsername(p.Username).
		SetXp(p.XP).
		SetHearts(p.Hearts).
		SetMaxHearts(p.MaxHearts).
		SetCoins(p.Coins).
		SetStreakCount(p.StreakCount).
		SetLongestStreak(p.LongestStreak).
		SetLastActiveDate(p.LastActiveDate).
		SetLastHeartLoss(p.LastHeartLoss).
		SetDailyXpGoal(p.DailyXPGoal).
		SetDailyXpEarned(p.DailyXPEarned).
		SetTotalXpEarned(p.TotalXPEarned).
		SetTotalLessonsCompleted(p.TotalLessonsCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
