// Code generated by ent, DO NOT EDIT.

package powerup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLTE(FieldID, id))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldType, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldActive, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldExpiresAt, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldAcquiredAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldContainsFold(FieldType, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNEQ(FieldActive, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.PowerUp {
	return predicate.PowerUp(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNotNull(FieldExpiresAt))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.PowerUp {
	return predicate.PowerUp(sql.FieldLTE(FieldAcquiredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PowerUp) predicate.PowerUp {
	return predicate.PowerUp(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PowerUp) predicate.PowerUp {
	return predicate.PowerUp(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PowerUp) predicate.PowerUp {
	return predicate.PowerUp(sql.NotPredicates(p))
}
