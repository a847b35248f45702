// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arnavj/mathsprint/ent/achievementstate"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
	"github.com/arnavj/mathsprint/ent/powerup"
	"github.com/arnavj/mathsprint/ent/profile"
	"github.com/arnavj/mathsprint/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementstateFields := schema.AchievementState{}.Fields()
	_ = achievementstateFields
	// achievementstateDescAchievementID is the schema descriptor for achievement_id field.
	achievementstateDescAchievementID := achievementstateFields[0].Descriptor()
	// achievementstate.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementstate.AchievementIDValidator = achievementstateDescAchievementID.Validators[0].(func(string) error)
	// achievementstateDescProgress is the schema descriptor for progress field.
	achievementstateDescProgress := achievementstateFields[1].Descriptor()
	// achievementstate.DefaultProgress holds the default value on creation for the progress field.
	achievementstate.DefaultProgress = achievementstateDescProgress.Default.(int)
	// achievementstate.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	achievementstate.ProgressValidator = achievementstateDescProgress.Validators[0].(func(int) error)
	// achievementstateDescUnlocked is the schema descriptor for unlocked field.
	achievementstateDescUnlocked := achievementstateFields[2].Descriptor()
	// achievementstate.DefaultUnlocked holds the default value on creation for the unlocked field.
	achievementstate.DefaultUnlocked = achievementstateDescUnlocked.Default.(bool)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[0].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescCompleted is the schema descriptor for completed field.
	lessonprogressDescCompleted := lessonprogressFields[1].Descriptor()
	// lessonprogress.DefaultCompleted holds the default value on creation for the completed field.
	lessonprogress.DefaultCompleted = lessonprogressDescCompleted.Default.(bool)
	// lessonprogressDescStars is the schema descriptor for stars field.
	lessonprogressDescStars := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultStars holds the default value on creation for the stars field.
	lessonprogress.DefaultStars = lessonprogressDescStars.Default.(int)
	// lessonprogress.StarsValidator is a validator for the "stars" field. It is called by the builders before save.
	lessonprogress.StarsValidator = lessonprogressDescStars.Validators[0].(func(int) error)
	// lessonprogressDescBestScore is the schema descriptor for best_score field.
	lessonprogressDescBestScore := lessonprogressFields[3].Descriptor()
	// lessonprogress.DefaultBestScore holds the default value on creation for the best_score field.
	lessonprogress.DefaultBestScore = lessonprogressDescBestScore.Default.(int)
	// lessonprogress.BestScoreValidator is a validator for the "best_score" field. It is called by the builders before save.
	lessonprogress.BestScoreValidator = lessonprogressDescBestScore.Validators[0].(func(int) error)
	// lessonprogressDescAttempts is the schema descriptor for attempts field.
	lessonprogressDescAttempts := lessonprogressFields[4].Descriptor()
	// lessonprogress.DefaultAttempts holds the default value on creation for the attempts field.
	lessonprogress.DefaultAttempts = lessonprogressDescAttempts.Default.(int)
	// lessonprogress.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	lessonprogress.AttemptsValidator = lessonprogressDescAttempts.Validators[0].(func(int) error)
	powerupFields := schema.PowerUp{}.Fields()
	_ = powerupFields
	// powerupDescType is the schema descriptor for type field.
	powerupDescType := powerupFields[0].Descriptor()
	// powerup.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	powerup.TypeValidator = powerupDescType.Validators[0].(func(string) error)
	// powerupDescActive is the schema descriptor for active field.
	powerupDescActive := powerupFields[1].Descriptor()
	// powerup.DefaultActive holds the default value on creation for the active field.
	powerup.DefaultActive = powerupDescActive.Default.(bool)
	// powerupDescAcquiredAt is the schema descriptor for acquired_at field.
	powerupDescAcquiredAt := powerupFields[3].Descriptor()
	// powerup.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	powerup.DefaultAcquiredAt = powerupDescAcquiredAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUsername is the schema descriptor for username field.
	profileDescUsername := profileFields[0].Descriptor()
	// profile.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	profile.UsernameValidator = profileDescUsername.Validators[0].(func(string) error)
	// profileDescXp is the schema descriptor for xp field.
	profileDescXp := profileFields[1].Descriptor()
	// profile.DefaultXp holds the default value on creation for the xp field.
	profile.DefaultXp = profileDescXp.Default.(int)
	// profile.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	profile.XpValidator = profileDescXp.Validators[0].(func(int) error)
	// profileDescHearts is the schema descriptor for hearts field.
	profileDescHearts := profileFields[2].Descriptor()
	// profile.DefaultHearts holds the default value on creation for the hearts field.
	profile.DefaultHearts = profileDescHearts.Default.(int)
	// profile.HeartsValidator is a validator for the "hearts" field. It is called by the builders before save.
	profile.HeartsValidator = profileDescHearts.Validators[0].(func(int) error)
	// profileDescMaxHearts is the schema descriptor for max_hearts field.
	profileDescMaxHearts := profileFields[3].Descriptor()
	// profile.DefaultMaxHearts holds the default value on creation for the max_hearts field.
	profile.DefaultMaxHearts = profileDescMaxHearts.Default.(int)
	// profile.MaxHeartsValidator is a validator for the "max_hearts" field. It is called by the builders before save.
	profile.MaxHeartsValidator = profileDescMaxHearts.Validators[0].(func(int) error)
	// profileDescCoins is the schema descriptor for coins field.
	profileDescCoins := profileFields[4].Descriptor()
	// profile.DefaultCoins holds the default value on creation for the coins field.
	profile.DefaultCoins = profileDescCoins.Default.(int)
	// profile.CoinsValidator is a validator for the "coins" field. It is called by the builders before save.
	profile.CoinsValidator = profileDescCoins.Validators[0].(func(int) error)
	// profileDescStreakCount is the schema descriptor for streak_count field.
	profileDescStreakCount := profileFields[5].Descriptor()
	// profile.DefaultStreakCount holds the default value on creation for the streak_count field.
	profile.DefaultStreakCount = profileDescStreakCount.Default.(int)
	// profile.StreakCountValidator is a validator for the "streak_count" field. It is called by the builders before save.
	profile.StreakCountValidator = profileDescStreakCount.Validators[0].(func(int) error)
	// profileDescLongestStreak is the schema descriptor for longest_streak field.
	profileDescLongestStreak := profileFields[6].Descriptor()
	// profile.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	profile.DefaultLongestStreak = profileDescLongestStreak.Default.(int)
	// profile.LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	profile.LongestStreakValidator = profileDescLongestStreak.Validators[0].(func(int) error)
	// profileDescDailyXpGoal is the schema descriptor for daily_xp_goal field.
	profileDescDailyXpGoal := profileFields[9].Descriptor()
	// profile.DefaultDailyXpGoal holds the default value on creation for the daily_xp_goal field.
	profile.DefaultDailyXpGoal = profileDescDailyXpGoal.Default.(int)
	// profile.DailyXpGoalValidator is a validator for the "daily_xp_goal" field. It is called by the builders before save.
	profile.DailyXpGoalValidator = profileDescDailyXpGoal.Validators[0].(func(int) error)
	// profileDescDailyXpEarned is the schema descriptor for daily_xp_earned field.
	profileDescDailyXpEarned := profileFields[10].Descriptor()
	// profile.DefaultDailyXpEarned holds the default value on creation for the daily_xp_earned field.
	profile.DefaultDailyXpEarned = profileDescDailyXpEarned.Default.(int)
	// profile.DailyXpEarnedValidator is a validator for the "daily_xp_earned" field. It is called by the builders before save.
	profile.DailyXpEarnedValidator = profileDescDailyXpEarned.Validators[0].(func(int) error)
	// profileDescTotalXpEarned is the schema descriptor for total_xp_earned field.
	profileDescTotalXpEarned := profileFields[11].Descriptor()
	// profile.DefaultTotalXpEarned holds the default value on creation for the total_xp_earned field.
	profile.DefaultTotalXpEarned = profileDescTotalXpEarned.Default.(int)
	// profile.TotalXpEarnedValidator is a validator for the "total_xp_earned" field. It is called by the builders before save.
	profile.TotalXpEarnedValidator = profileDescTotalXpEarned.Validators[0].(func(int) error)
	// profileDescTotalLessonsCompleted is the schema descriptor for total_lessons_completed field.
	profileDescTotalLessonsCompleted := profileFields[12].Descriptor()
	// profile.DefaultTotalLessonsCompleted holds the default value on creation for the total_lessons_completed field.
	profile.DefaultTotalLessonsCompleted = profileDescTotalLessonsCompleted.Default.(int)
	// profile.TotalLessonsCompletedValidator is a validator for the "total_lessons_completed" field. It is called by the builders before save.
	profile.TotalLessonsCompletedValidator = profileDescTotalLessonsCompleted.Validators[0].(func(int) error)
}
