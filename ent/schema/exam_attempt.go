package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamAttempt is one user sitting of one exam version. Attempts are
// append-only: a submitted attempt is never modified again.
type ExamAttempt struct {
	ent.Schema
}

// AnswerRecord is the serialized form of a submitted answer.
type AnswerRecord struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
	TimeSpentSecs    int    `json:"timeSpentSecs"`
}

func (ExamAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("exam_id").
			NotEmpty().
			Immutable().
			Comment("Exam version the user actually saw"),
		field.Int("attempt_number").
			Positive().
			Comment("1-based per user per exam slot"),
		field.JSON("answers", []AnswerRecord{}).
			Optional().
			Comment("Submitted answers (empty until submission)"),
		field.Float("score").
			Default(0).
			Comment("Raw number of correctly answered questions"),
		field.Float("percentage").
			Default(0).
			Comment("Score as a percentage, rounded to 2dp for display"),
		field.Bool("pass").
			Default(false),
		field.JSON("weak_concept_ids", []string{}).
			Optional().
			Comment("Concepts with at least one wrong answer, sorted"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("submitted_at").
			Optional().
			Nillable().
			Comment("Set exactly once, on submission"),
	}
}

func (ExamAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exam_id"),
		index.Fields("user_id", "exam_id", "attempt_number").Unique(),
		index.Fields("exam_id"),
	}
}
