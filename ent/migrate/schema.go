// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString, Default: ""},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "category_domain",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[3]},
			},
		},
	}
	// CategoryProgressesColumns holds the columns for the "category_progresses" table.
	CategoryProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "NOT_STARTED"},
		{Name: "best_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts_count", Type: field.TypeInt, Default: 0},
		{Name: "passed_at", Type: field.TypeTime, Nullable: true},
	}
	// CategoryProgressesTable holds the schema information for the "category_progresses" table.
	CategoryProgressesTable = &schema.Table{
		Name:       "category_progresses",
		Columns:    CategoryProgressesColumns,
		PrimaryKey: []*schema.Column{CategoryProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "categoryprogress_user_id_category_id",
				Unique:  true,
				Columns: []*schema.Column{CategoryProgressesColumns[1], CategoryProgressesColumns[2]},
			},
			{
				Name:    "categoryprogress_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{CategoryProgressesColumns[1], CategoryProgressesColumns[3]},
			},
		},
	}
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "concept_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "level_number", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_category_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[3]},
			},
			{
				Name:    "concept_level_number",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[4]},
			},
			{
				Name:    "concept_level_number_position",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[4], ConceptsColumns[5]},
			},
		},
	}
	// ExamsColumns holds the columns for the "exams" table.
	ExamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exam_id", Type: field.TypeString, Unique: true},
		{Name: "exam_type", Type: field.TypeString},
		{Name: "level_number", Type: field.TypeInt, Default: 0},
		{Name: "category_id", Type: field.TypeString, Default: ""},
		{Name: "version", Type: field.TypeInt},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "provider", Type: field.TypeString, Default: ""},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "generation_attempts", Type: field.TypeInt, Default: 1},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// ExamsTable holds the schema information for the "exams" table.
	ExamsTable = &schema.Table{
		Name:       "exams",
		Columns:    ExamsColumns,
		PrimaryKey: []*schema.Column{ExamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exam_exam_type_level_number_version",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[2], ExamsColumns[3], ExamsColumns[5]},
			},
			{
				Name:    "exam_exam_type_category_id_version",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[2], ExamsColumns[4], ExamsColumns[5]},
			},
		},
	}
	// ExamAttemptsColumns holds the columns for the "exam_attempts" table.
	ExamAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "pass", Type: field.TypeBool, Default: false},
		{Name: "weak_concept_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
	}
	// ExamAttemptsTable holds the schema information for the "exam_attempts" table.
	ExamAttemptsTable = &schema.Table{
		Name:       "exam_attempts",
		Columns:    ExamAttemptsColumns,
		PrimaryKey: []*schema.Column{ExamAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examattempt_user_id_exam_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[2], ExamAttemptsColumns[3]},
			},
			{
				Name:    "examattempt_user_id_exam_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{ExamAttemptsColumns[2], ExamAttemptsColumns[3], ExamAttemptsColumns[4]},
			},
			{
				Name:    "examattempt_exam_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LevelProgressesColumns holds the columns for the "level_progresses" table.
	LevelProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "level_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "NOT_STARTED"},
		{Name: "best_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts_count", Type: field.TypeInt, Default: 0},
		{Name: "passed_at", Type: field.TypeTime, Nullable: true},
	}
	// LevelProgressesTable holds the schema information for the "level_progresses" table.
	LevelProgressesTable = &schema.Table{
		Name:       "level_progresses",
		Columns:    LevelProgressesColumns,
		PrimaryKey: []*schema.Column{LevelProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "levelprogress_user_id_level_number",
				Unique:  true,
				Columns: []*schema.Column{LevelProgressesColumns[1], LevelProgressesColumns[2]},
			},
			{
				Name:    "levelprogress_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{LevelProgressesColumns[1], LevelProgressesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		CategoryProgressesTable,
		ConceptsTable,
		ExamsTable,
		ExamAttemptsTable,
		LlmRequestEventsTable,
		LevelProgressesTable,
	}
)

func init() {
}
