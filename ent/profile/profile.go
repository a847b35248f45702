// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldHearts holds the string denoting the hearts field in the database.
	FieldHearts = "hearts"
	// FieldMaxHearts holds the string denoting the max_hearts field in the database.
	FieldMaxHearts = "max_hearts"
	// FieldCoins holds the string denoting the coins field in the database.
	FieldCoins = "coins"
	// FieldStreakCount holds the string denoting the streak_count field in the database.
	FieldStreakCount = "streak_count"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldLastActiveDate holds the string denoting the last_active_date field in the database.
	FieldLastActiveDate = "last_active_date"
	// FieldLastHeartLoss holds the string denoting the last_heart_loss field in the database.
	FieldLastHeartLoss = "last_heart_loss"
	// FieldDailyXpGoal holds the string denoting the daily_xp_goal field in the database.
	FieldDailyXpGoal = "daily_xp_goal"
	// FieldDailyXpEarned holds the string denoting the daily_xp_earned field in the database.
	FieldDailyXpEarned = "daily_xp_earned"
	// FieldTotalXpEarned holds the string denoting the total_xp_earned field in the database.
	FieldTotalXpEarned = "total_xp_earned"
	// FieldTotalLessonsCompleted holds the string denoting the total_lessons_completed field in the database.
	FieldTotalLessonsCompleted = "total_lessons_completed"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldXp,
	FieldHearts,
	FieldMaxHearts,
	FieldCoins,
	FieldStreakCount,
	FieldLongestStreak,
	FieldLastActiveDate,
	FieldLastHeartLoss,
	FieldDailyXpGoal,
	FieldDailyXpEarned,
	FieldTotalXpEarned,
	FieldTotalLessonsCompleted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultHearts holds the default value on creation for the "hearts" field.
	DefaultHearts int
	// HeartsValidator is a validator for the "hearts" field. It is called by the builders before save.
	HeartsValidator func(int) error
	// DefaultMaxHearts holds the default value on creation for the "max_hearts" field.
	DefaultMaxHearts int
	// MaxHeartsValidator is a validator for the "max_hearts" field. It is called by the builders before save.
	MaxHeartsValidator func(int) error
	// DefaultCoins holds the default value on creation for the "coins" field.
	DefaultCoins int
	// CoinsValidator is a validator for the "coins" field. It is called by the builders before save.
	CoinsValidator func(int) error
	// DefaultStreakCount holds the default value on creation for the "streak_count" field.
	DefaultStreakCount int
	// StreakCountValidator is a validator for the "streak_count" field. It is called by the builders before save.
	StreakCountValidator func(int) error
	// DefaultLongestStreak holds the default value on creation for the "longest_streak" field.
	DefaultLongestStreak int
	// LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	LongestStreakValidator func(int) error
	// DefaultDailyXpGoal holds the default value on creation for the "daily_xp_goal" field.
	DefaultDailyXpGoal int
	// DailyXpGoalValidator is a validator for the "daily_xp_goal" field. It is called by the builders before save.
	DailyXpGoalValidator func(int) error
	// DefaultDailyXpEarned holds the default value on creation for the "daily_xp_earned" field.
	DefaultDailyXpEarned int
	// DailyXpEarnedValidator is a validator for the "daily_xp_earned" field. It is called by the builders before save.
	DailyXpEarnedValidator func(int) error
	// DefaultTotalXpEarned holds the default value on creation for the "total_xp_earned" field.
	DefaultTotalXpEarned int
	// TotalXpEarnedValidator is a validator for the "total_xp_earned" field. It is called by the builders before save.
	TotalXpEarnedValidator func(int) error
	// DefaultTotalLessonsCompleted holds the default value on creation for the "total_lessons_completed" field.
	DefaultTotalLessonsCompleted int
	// TotalLessonsCompletedValidator is a validator for the "total_lessons_completed" field. It is called by the builders before save.
	TotalLessonsCompletedValidator func(int) error
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByHearts orders the results by the hearts field.
func ByHearts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHearts, opts...).ToFunc()
}

// ByMaxHearts orders the results by the max_hearts field.
func ByMaxHearts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxHearts, opts...).ToFunc()
}

// ByCoins orders the results by the coins field.
func ByCoins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoins, opts...).ToFunc()
}

// ByStreakCount orders the results by the streak_count field.
func ByStreakCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakCount, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByLastActiveDate orders the results by the last_active_date field.
func ByLastActiveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveDate, opts...).ToFunc()
}

// ByLastHeartLoss orders the results by the last_heart_loss field.
func ByLastHeartLoss(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartLoss, opts...).ToFunc()
}

// ByDailyXpGoal orders the results by the daily_xp_goal field.
func ByDailyXpGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyXpGoal, opts...).ToFunc()
}

// ByDailyXpEarned orders the results by the daily_xp_earned field.
func ByDailyXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyXpEarned, opts...).ToFunc()
}

// ByTotalXpEarned orders the results by the total_xp_earned field.
func ByTotalXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXpEarned, opts...).ToFunc()
}

// ByTotalLessonsCompleted orders the results by the total_lessons_completed field.
func ByTotalLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLessonsCompleted, opts...).ToFunc()
}
