package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementState persists unlock progress per achievement. The catalog
// itself is seeded in code; only the mutable state is stored.
type AchievementState struct {
	ent.Schema
}

func (AchievementState) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").
			NotEmpty().
			Unique(),
		field.Int("progress").
			Default(0).
			NonNegative(),
		field.Bool("unlocked").
			Default(false).
			Comment("Sticky: never re-locked"),
		field.Time("unlocked_at").
			Optional(),
	}
}

func (AchievementState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("achievement_id").Unique(),
	}
}
