// Code generated by ent, DO NOT EDIT.

package achievementstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievementstate type in the database.
	Label = "achievement_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAchievementID holds the string denoting the achievement_id field in the database.
	FieldAchievementID = "achievement_id"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldUnlocked holds the string denoting the unlocked field in the database.
	FieldUnlocked = "unlocked"
	// FieldUnlockedAt holds the string denoting the unlocked_at field in the database.
	FieldUnlockedAt = "unlocked_at"
	// Table holds the table name of the achievementstate in the database.
	Table = "achievement_states"
)

// Columns holds all SQL columns for achievementstate fields.
var Columns = []string{
	FieldID,
	FieldAchievementID,
	FieldProgress,
	FieldUnlocked,
	FieldUnlockedAt,
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
	// AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	AchievementIDValidator func(string) error
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	ProgressValidator func(int) error
	// DefaultUnlocked holds the default value on creation for the "unlocked" field.
	DefaultUnlocked bool
)

// OrderOption defines the ordering options for the AchievementState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAchievementID orders the results by the achievement_id field.
func ByAchievementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementID, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByUnlocked orders the results by the unlocked field.
func ByUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlocked, opts...).ToFunc()
}

// ByUnlockedAt orders the results by the unlocked_at field.
func ByUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedAt, opts...).ToFunc()
}
