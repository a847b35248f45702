// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
)

// LessonProgress is the model entity for the LessonProgress schema.
type LessonProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Sticky: once true, stays true
	Completed bool `json:"completed,omitempty"`
	// Maximum ever achieved
	Stars int `json:"stars,omitempty"`
	// BestScore holds the value of the "best_score" field.
	BestScore int `json:"best_score,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts     int `json:"attempts,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldCompleted:
			values[i] = new(sql.NullBool)
		case lessonprogress.FieldID, lessonprogress.FieldStars, lessonprogress.FieldBestScore, lessonprogress.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case lessonprogress.FieldLessonID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonProgress fields.
func (_m *LessonProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonprogress.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonprogress.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case lessonprogress.FieldStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stars", values[i])
			} else if value.Valid {
				_m.Stars = int(value.Int64)
			}
		case lessonprogress.FieldBestScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_score", values[i])
			} else if value.Valid {
				_m.BestScore = int(value.Int64)
			}
		case lessonprogress.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LessonProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonProgress.
// Note that you need to call LessonProgress.Unwrap() before calling this method if this LessonProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonProgress) Update() *LessonProgressUpdateOne {
	return NewLessonProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonProgress) Unwrap() *LessonProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LessonProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stars))
	builder.WriteString(", ")
	builder.WriteString("best_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestScore))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteByte(')')
	return builder.String()
}

// LessonProgresses is a parsable slice of LessonProgress.
type LessonProgresses []*LessonProgress
