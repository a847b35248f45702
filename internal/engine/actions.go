package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/chest"
	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/hearts"
	"github.com/arnavj/mathsprint/internal/powerup"
	"github.com/arnavj/mathsprint/internal/problemgen"
	"github.com/arnavj/mathsprint/internal/quiz"
	"github.com/arnavj/mathsprint/internal/scoring"
	"github.com/arnavj/mathsprint/internal/shop"
	"github.com/arnavj/mathsprint/internal/store"
)

// StartLesson validates hearts and the unlock chain, then builds a quiz
// for the lesson. Fails with ErrNoLivesRemaining or ErrLessonLocked.
func (e *Engine) StartLesson(ctx context.Context, lessonID string) (*quiz.Quiz, error) {
	profile, err := e.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Hearts <= 0 {
		return nil, ErrNoLivesRemaining
	}

	lesson, err := curriculum.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	progress, err := e.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	unlocked, err := curriculum.LessonUnlocked(lessonID, progress)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, ErrLessonLocked
	}

	return quiz.NewLesson(lesson, e.gen), nil
}

// StartArcade builds a free-practice quiz. Arcade mode costs no hearts
// and needs no unlock.
func (e *Engine) StartArcade(d problemgen.Difficulty) *quiz.Quiz {
	return quiz.NewArcade(d, e.gen)
}

// LoseHeart removes one heart and stamps the loss time for the lazy
// refill. Called by the quiz screen on each wrong or timed-out answer
// in lesson mode.
func (e *Engine) LoseHeart(ctx context.Context) (*store.Profile, error) {
	profile, err := e.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	profile.Hearts = hearts.Lose(profile.Hearts)
	profile.LastHeartLoss = e.clock()
	if err := e.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// LessonResult is the set of deltas applied by CompleteLesson.
type LessonResult struct {
	Stars       int
	Completed   bool
	XPEarned    int
	CoinsEarned int

	// AchievementXP is the one-shot bonus from freshly unlocked
	// achievements, already folded into the profile.
	AchievementXP int
	Unlocked      []achievements.Achievement

	LeveledUp bool
	Progress  curriculum.Progress
	Profile   *store.Profile
}

// CompleteLesson applies a finished lesson quiz: star rating, rewards
// (doubled under an active boost), progress max-merge, profile counters,
// and achievement evaluation with its one-shot XP bonus.
func (e *Engine) CompleteLesson(ctx context.Context, lessonID string, correct, total int) (*LessonResult, error) {
	now := e.clock()

	lesson, err := curriculum.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	profile, err := e.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	allProgress, err := e.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	inventory, err := e.powerUps.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	// Finishing the quiz completes the lesson and earns the full reward
	// at any star rating; the stars only grade the run.
	stars := scoring.Stars(correct, total)

	result := &LessonResult{Stars: stars, Completed: true}
	levelBefore := profile.Level()

	prev := allProgress[lessonID]
	prev.LessonID = lessonID
	firstCompletion := !prev.Completed
	result.Progress = prev.Merge(true, stars, correct)

	result.XPEarned = lesson.XPReward * powerup.XPMultiplier(inventory, now)
	result.CoinsEarned = lesson.CoinReward * powerup.CoinMultiplier(inventory, now)

	profile.XP += result.XPEarned
	profile.TotalXPEarned += result.XPEarned
	profile.DailyXPEarned += result.XPEarned
	profile.Coins += result.CoinsEarned
	if firstCompletion {
		profile.TotalLessonsCompleted++
	}

	// Feed the updated aggregate to the achievement evaluator and grant
	// each fresh unlock's reward exactly once.
	before, err := e.achievs.Load(ctx, achievements.Seed())
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	after := achievements.Evaluate(before, achievements.Stats{
		LessonsCompleted: profile.TotalLessonsCompleted,
		Streak:           profile.StreakCount,
		TotalXP:          profile.TotalXPEarned,
		StarsJustEarned:  stars,
	})
	result.Unlocked = achievements.NewlyUnlocked(before, after)
	for _, a := range result.Unlocked {
		result.AchievementXP += a.XPReward
	}
	profile.XP += result.AchievementXP
	profile.TotalXPEarned += result.AchievementXP
	profile.DailyXPEarned += result.AchievementXP

	if err := e.progress.Upsert(ctx, result.Progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	if err := e.achievs.Save(ctx, after, now); err != nil {
		return nil, fmt.Errorf("save achievements: %w", err)
	}
	if err := e.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	result.LeveledUp = profile.Level() > levelBefore
	result.Profile = profile
	return result, nil
}

// PurchaseResult reports a completed shop transaction.
type PurchaseResult struct {
	Item    shop.Item
	Profile *store.Profile

	// ChestReward is set when the item was a chest.
	ChestReward *chest.Reward
}

// Purchase runs the coin-gated shop handler and applies its effect.
// Fails with shop.ErrInsufficientFunds leaving all state untouched.
func (e *Engine) Purchase(ctx context.Context, itemID string) (*PurchaseResult, error) {
	now := e.clock()

	item, err := shop.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	profile, err := e.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	eff, err := shop.Purchase(profile.Coins, item, now)
	if err != nil {
		return nil, err
	}

	profile.Coins -= eff.CoinsSpent
	result := &PurchaseResult{Item: item}

	if eff.RefillHearts {
		profile.Hearts = profile.MaxHearts
		profile.LastHeartLoss = time.Time{}
	}
	if eff.GrantPowerUp != nil {
		if err := e.powerUps.Add(ctx, *eff.GrantPowerUp); err != nil {
			return nil, fmt.Errorf("store power-up: %w", err)
		}
	}
	if eff.Chest != nil {
		reward := e.chest.Draw()
		profile.Coins += reward.Coins
		profile.XP += reward.XP
		profile.TotalXPEarned += reward.XP
		profile.DailyXPEarned += reward.XP
		result.ChestReward = &reward
	}

	if err := e.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	result.Profile = profile
	return result, nil
}

func (e *Engine) loadProfile(ctx context.Context) (*store.Profile, error) {
	profile, err := e.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile; call Bootstrap first")
	}
	return profile, nil
}
