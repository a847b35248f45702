// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// Stars applies equality check predicate on the "stars" field. It's identical to StarsEQ.
func Stars(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStars, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldBestScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldAttempts, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLessonID, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompleted, v))
}

// StarsEQ applies the EQ predicate on the "stars" field.
func StarsEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStars, v))
}

// StarsNEQ applies the NEQ predicate on the "stars" field.
func StarsNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldStars, v))
}

// StarsIn applies the In predicate on the "stars" field.
func StarsIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldStars, vs...))
}

// StarsNotIn applies the NotIn predicate on the "stars" field.
func StarsNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldStars, vs...))
}

// StarsGT applies the GT predicate on the "stars" field.
func StarsGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldStars, v))
}

// StarsGTE applies the GTE predicate on the "stars" field.
func StarsGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldStars, v))
}

// StarsLT applies the LT predicate on the "stars" field.
func StarsLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldStars, v))
}

// StarsLTE applies the LTE predicate on the "stars" field.
func StarsLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldStars, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldBestScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.NotPredicates(p))
}
