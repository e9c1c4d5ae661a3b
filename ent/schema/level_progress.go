package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LevelProgress tracks one user's standing on one level. A level that
// reaches PASSED stays passed; later failed retakes never demote it.
type LevelProgress struct {
	ent.Schema
}

func (LevelProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("level_number").
			Positive().
			Immutable(),
		field.String("status").
			Default("NOT_STARTED").
			Comment("NOT_STARTED, IN_PROGRESS, or PASSED"),
		field.Float("best_percentage").
			Default(0),
		field.Int("attempts_count").
			Default(0),
		field.Time("passed_at").
			Optional().
			Nillable().
			Comment("Set once, on the first passing attempt"),
	}
}

func (LevelProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "level_number").Unique(),
		index.Fields("user_id", "status"),
	}
}
