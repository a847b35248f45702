package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PowerUp is one inventory entry: a streak freeze or a time-boxed
// reward multiplier.
type PowerUp struct {
	ent.Schema
}

func (PowerUp) Fields() []ent.Field {
	return []ent.Field{
		field.String("type").
			NotEmpty(),
		field.Bool("active").
			Default(true),
		field.Time("expires_at").
			Optional().
			Comment("Zero for streak freezes; they expire by consumption"),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PowerUp) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("active"),
	}
}
