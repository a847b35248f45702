// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/powerup"
)

// PowerUp is the model entity for the PowerUp schema.
type PowerUp struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Zero for streak freezes; they expire by consumption
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt   time.Time `json:"acquired_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PowerUp) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case powerup.FieldActive:
			values[i] = new(sql.NullBool)
		case powerup.FieldID:
			values[i] = new(sql.NullInt64)
		case powerup.FieldType:
			values[i] = new(sql.NullString)
		case powerup.FieldExpiresAt, powerup.FieldAcquiredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PowerUp fields.
func (_m *PowerUp) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case powerup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case powerup.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case powerup.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case powerup.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case powerup.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PowerUp.
// This includes values selected through modifiers, order, etc.
func (_m *PowerUp) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PowerUp.
// Note that you need to call PowerUp.Unwrap() before calling this method if this PowerUp
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PowerUp) Update() *PowerUpUpdateOne {
	return NewPowerUpClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PowerUp entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PowerUp) Unwrap() *PowerUp {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PowerUp is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PowerUp) String() string {
	var builder strings.Builder
	builder.WriteString("PowerUp(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PowerUps is a parsable slice of PowerUp.
type PowerUps []*PowerUp
