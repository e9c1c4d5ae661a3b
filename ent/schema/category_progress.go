package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryProgress tracks one user's standing on one category exam.
type CategoryProgress struct {
	ent.Schema
}

func (CategoryProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("category_id").
			NotEmpty().
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

func (CategoryProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "category_id").Unique(),
		index.Fields("user_id", "status"),
	}
}
