package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category is an authored grouping of concepts within a domain.
// Category IDs are issued by the store and are the only IDs question
// tagging is allowed to reference.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Store-issued canonical ID"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("domain").
			Default("").
			Comment("Top-level domain the category belongs to"),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain"),
	}
}
