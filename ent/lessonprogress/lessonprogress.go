// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonprogress type in the database.
	Label = "lesson_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// FieldBestScore holds the string denoting the best_score field in the database.
	FieldBestScore = "best_score"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// Table holds the table name of the lessonprogress in the database.
	Table = "lesson_progresses"
)

// Columns holds all SQL columns for lessonprogress fields.
var Columns = []string{
	FieldID,
	FieldLessonID,
	FieldCompleted,
	FieldStars,
	FieldBestScore,
	FieldAttempts,
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
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultStars holds the default value on creation for the "stars" field.
	DefaultStars int
	// StarsValidator is a validator for the "stars" field. It is called by the builders before save.
	StarsValidator func(int) error
	// DefaultBestScore holds the default value on creation for the "best_score" field.
	DefaultBestScore int
	// BestScoreValidator is a validator for the "best_score" field. It is called by the builders before save.
	BestScoreValidator func(int) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	AttemptsValidator func(int) error
)

// OrderOption defines the ordering options for the LessonProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByStars orders the results by the stars field.
func ByStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStars, opts...).ToFunc()
}

// ByBestScore orders the results by the best_score field.
func ByBestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestScore, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}
