package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a single teachable idea. Every concept is owned by exactly
// one category and introduced at exactly one level.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Store-issued canonical ID"),
		field.String("name").
			NotEmpty().
			Comment("Display name used in generation prompts"),
		field.String("category_id").
			NotEmpty().
			Comment("Owning category"),
		field.Int("level_number").
			Positive().
			Comment("Level the concept is introduced at (1-40)"),
		field.Int("position").
			Default(0).
			Comment("Assignment order within the level"),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("level_number"),
		index.Fields("level_number", "position"),
	}
}
