// Code generated by ent, DO NOT EDIT.

package achievementstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLTE(FieldID, id))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldAchievementID, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldProgress, v))
}

// Unlocked applies equality check predicate on the "unlocked" field. It's identical to UnlockedEQ.
func Unlocked(v bool) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldUnlocked, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldUnlockedAt, v))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldContainsFold(FieldAchievementID, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLTE(FieldProgress, v))
}

// UnlockedEQ applies the EQ predicate on the "unlocked" field.
func UnlockedEQ(v bool) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldUnlocked, v))
}

// UnlockedNEQ applies the NEQ predicate on the "unlocked" field.
func UnlockedNEQ(v bool) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNEQ(FieldUnlocked, v))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.AchievementState {
	return predicate.AchievementState(sql.FieldLTE(FieldUnlockedAt, v))
}

// UnlockedAtIsNil applies the IsNil predicate on the "unlocked_at" field.
func UnlockedAtIsNil() predicate.AchievementState {
	return predicate.AchievementState(sql.FieldIsNull(FieldUnlockedAt))
}

// UnlockedAtNotNil applies the NotNil predicate on the "unlocked_at" field.
func UnlockedAtNotNil() predicate.AchievementState {
	return predicate.AchievementState(sql.FieldNotNull(FieldUnlockedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AchievementState) predicate.AchievementState {
	return predicate.AchievementState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AchievementState) predicate.AchievementState {
	return predicate.AchievementState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AchievementState) predicate.AchievementState {
	return predicate.AchievementState(sql.NotPredicates(p))
}
