// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Cumulative XP; level derives from this
	Xp int `json:"xp,omitempty"`
	// Hearts holds the value of the "hearts" field.
	Hearts int `json:"hearts,omitempty"`
	// MaxHearts holds the value of the "max_hearts" field.
	MaxHearts int `json:"max_hearts,omitempty"`
	// Coins holds the value of the "coins" field.
	Coins int `json:"coins,omitempty"`
	// StreakCount holds the value of the "streak_count" field.
	StreakCount int `json:"streak_count,omitempty"`
	// LongestStreak holds the value of the "longest_streak" field.
	LongestStreak int `json:"longest_streak,omitempty"`
	// Calendar date of the last qualifying activity
	LastActiveDate time.Time `json:"last_active_date,omitempty"`
	// When the most recent heart was lost; drives lazy refill
	LastHeartLoss time.Time `json:"last_heart_loss,omitempty"`
	// DailyXpGoal holds the value of the "daily_xp_goal" field.
	DailyXpGoal int `json:"daily_xp_goal,omitempty"`
	// DailyXpEarned holds the value of the "daily_xp_earned" field.
	DailyXpEarned int `json:"daily_xp_earned,omitempty"`
	// TotalXpEarned holds the value of the "total_xp_earned" field.
	TotalXpEarned int `json:"total_xp_earned,omitempty"`
	// TotalLessonsCompleted holds the value of the "total_lessons_completed" field.
	TotalLessonsCompleted int `json:"total_lessons_completed,omitempty"`
	selectValues          sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldID, profile.FieldXp, profile.FieldHearts, profile.FieldMaxHearts, profile.FieldCoins, profile.FieldStreakCount, profile.FieldLongestStreak, profile.FieldDailyXpGoal, profile.FieldDailyXpEarned, profile.FieldTotalXpEarned, profile.FieldTotalLessonsCompleted:
			values[i] = new(sql.NullInt64)
		case profile.FieldUsername:
			values[i] = new(sql.NullString)
		case profile.FieldLastActiveDate, profile.FieldLastHeartLoss:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profile.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case profile.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case profile.FieldHearts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hearts", values[i])
			} else if value.Valid {
				_m.Hearts = int(value.Int64)
			}
		case profile.FieldMaxHearts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_hearts", values[i])
			} else if value.Valid {
				_m.MaxHearts = int(value.Int64)
			}
		case profile.FieldCoins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coins", values[i])
			} else if value.Valid {
				_m.Coins = int(value.Int64)
			}
		case profile.FieldStreakCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_count", values[i])
			} else if value.Valid {
				_m.StreakCount = int(value.Int64)
			}
		case profile.FieldLongestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak", values[i])
			} else if value.Valid {
				_m.LongestStreak = int(value.Int64)
			}
		case profile.FieldLastActiveDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_date", values[i])
			} else if value.Valid {
				_m.LastActiveDate = value.Time
			}
		case profile.FieldLastHeartLoss:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heart_loss", values[i])
			} else if value.Valid {
				_m.LastHeartLoss = value.Time
			}
		case profile.FieldDailyXpGoal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_xp_goal", values[i])
			} else if value.Valid {
				_m.DailyXpGoal = int(value.Int64)
			}
		case profile.FieldDailyXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_xp_earned", values[i])
			} else if value.Valid {
				_m.DailyXpEarned = int(value.Int64)
			}
		case profile.FieldTotalXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp_earned", values[i])
			} else if value.Valid {
				_m.TotalXpEarned = int(value.Int64)
			}
		case profile.FieldTotalLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_lessons_completed", values[i])
			} else if value.Valid {
				_m.TotalLessonsCompleted = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteString(", ")
	builder.WriteString("hearts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hearts))
	builder.WriteString(", ")
	builder.WriteString("max_hearts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxHearts))
	builder.WriteString(", ")
	builder.WriteString("coins=")
	builder.WriteString(fmt.Sprintf("%v", _m.Coins))
	builder.WriteString(", ")
	builder.WriteString("streak_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakCount))
	builder.WriteString(", ")
	builder.WriteString("longest_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreak))
	builder.WriteString(", ")
	builder.WriteString("last_active_date=")
	builder.WriteString(_m.LastActiveDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heart_loss=")
	builder.WriteString(_m.LastHeartLoss.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("daily_xp_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyXpGoal))
	builder.WriteString(", ")
	builder.WriteString("daily_xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyXpEarned))
	builder.WriteString(", ")
	builder.WriteString("total_xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXpEarned))
	builder.WriteString(", ")
	builder.WriteString("total_lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLessonsCompleted))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
