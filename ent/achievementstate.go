// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/achievementstate"
)

// AchievementState is the model entity for the AchievementState schema.
type AchievementState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AchievementID holds the value of the "achievement_id" field.
	AchievementID string `json:"achievement_id,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress int `json:"progress,omitempty"`
	// Sticky: never re-locked
	Unlocked bool `json:"unlocked,omitempty"`
	// UnlockedAt holds the value of the "unlocked_at" field.
	UnlockedAt   time.Time `json:"unlocked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AchievementState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case achievementstate.FieldUnlocked:
			values[i] = new(sql.NullBool)
		case achievementstate.FieldID, achievementstate.FieldProgress:
			values[i] = new(sql.NullInt64)
		case achievementstate.FieldAchievementID:
			values[i] = new(sql.NullString)
		case achievementstate.FieldUnlockedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AchievementState fields.
func (_m *AchievementState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case achievementstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case achievementstate.FieldAchievementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_id", values[i])
			} else if value.Valid {
				_m.AchievementID = value.String
			}
		case achievementstate.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case achievementstate.FieldUnlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked", values[i])
			} else if value.Valid {
				_m.Unlocked = value.Bool
			}
		case achievementstate.FieldUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_at", values[i])
			} else if value.Valid {
				_m.UnlockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AchievementState.
// This includes values selected through modifiers, order, etc.
func (_m *AchievementState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AchievementState.
// Note that you need to call AchievementState.Unwrap() before calling this method if this AchievementState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AchievementState) Update() *AchievementStateUpdateOne {
	return NewAchievementStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AchievementState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AchievementState) Unwrap() *AchievementState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AchievementState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AchievementState) String() string {
	var builder strings.Builder
	builder.WriteString("AchievementState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("achievement_id=")
	builder.WriteString(_m.AchievementID)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("unlocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unlocked))
	builder.WriteString(", ")
	builder.WriteString("unlocked_at=")
	builder.WriteString(_m.UnlockedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AchievementStates is a parsable slice of AchievementState.
type AchievementStates []*AchievementState
