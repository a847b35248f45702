// Code generated by ent, DO NOT EDIT.

package powerup

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the powerup type in the database.
	Label = "power_up"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// Table holds the table name of the powerup in the database.
	Table = "power_ups"
)

// Columns holds all SQL columns for powerup fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldActive,
	FieldExpiresAt,
	FieldAcquiredAt,
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
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
)

// OrderOption defines the ordering options for the PowerUp queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}
