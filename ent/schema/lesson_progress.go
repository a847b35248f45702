package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress is the per-lesson record. Created on first attempt and
// merged with max semantics on every later attempt, never deleted.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Unique(),
		field.Bool("completed").
			Default(false).
			Comment("Sticky: once true, stays true"),
		field.Int("stars").
			Default(0).
			Range(0, 3).
			Comment("Maximum ever achieved"),
		field.Int("best_score").
			Default(0).
			NonNegative(),
		field.Int("attempts").
			Default(0).
			NonNegative(),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id").Unique(),
	}
}
