package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single local learner profile. Level is never stored:
// it is derived from xp on read.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty(),
		field.Int("xp").
			Default(0).
			NonNegative().
			Comment("Cumulative XP; level derives from this"),
		field.Int("hearts").
			Default(5).
			NonNegative(),
		field.Int("max_hearts").
			Default(5).
			Positive(),
		field.Int("coins").
			Default(0).
			NonNegative(),
		field.Int("streak_count").
			Default(0).
			NonNegative(),
		field.Int("longest_streak").
			Default(0).
			NonNegative(),
		field.Time("last_active_date").
			Optional().
			Comment("Calendar date of the last qualifying activity"),
		field.Time("last_heart_loss").
			Optional().
			Comment("When the most recent heart was lost; drives lazy refill"),
		field.Int("daily_xp_goal").
			Default(50).
			NonNegative(),
		field.Int("daily_xp_earned").
			Default(0).
			NonNegative(),
		field.Int("total_xp_earned").
			Default(0).
			NonNegative(),
		field.Int("total_lessons_completed").
			Default(0).
			NonNegative(),
	}
}
