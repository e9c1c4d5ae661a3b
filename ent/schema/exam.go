package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exam is a generated, validated question set for a level or category.
// Regeneration never overwrites an exam: a new row with a higher version
// is written instead, so past attempts keep pointing at the exact
// questions the user saw.
type Exam struct {
	ent.Schema
}

// QuestionRecord is the serialized form of a question for persistence.
type QuestionRecord struct {
	QuestionID      string            `json:"questionId"`
	Stem            string            `json:"stem"`
	Options         []OptionRecord    `json:"options"`
	CorrectOptionID string            `json:"correctOptionId"`
	ConceptIDs      []string          `json:"conceptIds"`
	CategoryIDs     []string          `json:"categoryIds"`
	DifficultyTag   string            `json:"difficultyTag"`
	RationaleOK     string            `json:"rationaleCorrect"`
	RationaleBad    map[string]string `json:"rationaleIncorrect"`
}

// OptionRecord is one answer option in its stored (post-shuffle) order.
type OptionRecord struct {
	OptionID string `json:"optionId"`
	Text     string `json:"text"`
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID"),
		field.String("exam_type").
			NotEmpty().
			Comment("LEVEL, CATEGORY, or BOSS"),
		field.Int("level_number").
			Default(0).
			Comment("Level the exam belongs to (0 for category exams)"),
		field.String("category_id").
			Default("").
			Comment("Category the exam belongs to (empty for level exams)"),
		field.Int("version").
			Positive().
			Comment("Monotonic per-slot version, starting at 1"),
		field.JSON("questions", []QuestionRecord{}).
			Comment("Full validated question set in presentation order"),
		field.String("provider").
			Default("").
			Comment("LLM provider that generated the set"),
		field.String("model").
			Default("").
			Comment("Model ID that generated the set"),
		field.Int("generation_attempts").
			Default(1).
			Comment("Generate-validate rounds it took to accept the set"),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Exam) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_type", "level_number", "version"),
		index.Fields("exam_type", "category_id", "version"),
	}
}
