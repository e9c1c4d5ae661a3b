// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fasahat78/startege/ent/category"
	"github.com/fasahat78/startege/ent/categoryprogress"
	"github.com/fasahat78/startege/ent/concept"
	"github.com/fasahat78/startege/ent/exam"
	"github.com/fasahat78/startege/ent/examattempt"
	"github.com/fasahat78/startege/ent/levelprogress"
	"github.com/fasahat78/startege/ent/llmrequestevent"
	"github.com/fasahat78/startege/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescCategoryID is the schema descriptor for category_id field.
	categoryDescCategoryID := categoryFields[0].Descriptor()
	// category.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	category.CategoryIDValidator = categoryDescCategoryID.Validators[0].(func(string) error)
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescDomain is the schema descriptor for domain field.
	categoryDescDomain := categoryFields[2].Descriptor()
	// category.DefaultDomain holds the default value on creation for the domain field.
	category.DefaultDomain = categoryDescDomain.Default.(string)
	categoryprogressFields := schema.CategoryProgress{}.Fields()
	_ = categoryprogressFields
	// categoryprogressDescUserID is the schema descriptor for user_id field.
	categoryprogressDescUserID := categoryprogressFields[0].Descriptor()
	// categoryprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	categoryprogress.UserIDValidator = categoryprogressDescUserID.Validators[0].(func(string) error)
	// categoryprogressDescCategoryID is the schema descriptor for category_id field.
	categoryprogressDescCategoryID := categoryprogressFields[1].Descriptor()
	// categoryprogress.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	categoryprogress.CategoryIDValidator = categoryprogressDescCategoryID.Validators[0].(func(string) error)
	// categoryprogressDescStatus is the schema descriptor for status field.
	categoryprogressDescStatus := categoryprogressFields[2].Descriptor()
	// categoryprogress.DefaultStatus holds the default value on creation for the status field.
	categoryprogress.DefaultStatus = categoryprogressDescStatus.Default.(string)
	// categoryprogressDescBestPercentage is the schema descriptor for best_percentage field.
	categoryprogressDescBestPercentage := categoryprogressFields[3].Descriptor()
	// categoryprogress.DefaultBestPercentage holds the default value on creation for the best_percentage field.
	categoryprogress.DefaultBestPercentage = categoryprogressDescBestPercentage.Default.(float64)
	// categoryprogressDescAttemptsCount is the schema descriptor for attempts_count field.
	categoryprogressDescAttemptsCount := categoryprogressFields[4].Descriptor()
	// categoryprogress.DefaultAttemptsCount holds the default value on creation for the attempts_count field.
	categoryprogress.DefaultAttemptsCount = categoryprogressDescAttemptsCount.Default.(int)
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescConceptID is the schema descriptor for concept_id field.
	conceptDescConceptID := conceptFields[0].Descriptor()
	// concept.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	concept.ConceptIDValidator = conceptDescConceptID.Validators[0].(func(string) error)
	// conceptDescName is the schema descriptor for name field.
	conceptDescName := conceptFields[1].Descriptor()
	// concept.NameValidator is a validator for the "name" field. It is called by the builders before save.
	concept.NameValidator = conceptDescName.Validators[0].(func(string) error)
	// conceptDescCategoryID is the schema descriptor for category_id field.
	conceptDescCategoryID := conceptFields[2].Descriptor()
	// concept.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	concept.CategoryIDValidator = conceptDescCategoryID.Validators[0].(func(string) error)
	// conceptDescLevelNumber is the schema descriptor for level_number field.
	conceptDescLevelNumber := conceptFields[3].Descriptor()
	// concept.LevelNumberValidator is a validator for the "level_number" field. It is called by the builders before save.
	concept.LevelNumberValidator = conceptDescLevelNumber.Validators[0].(func(int) error)
	// conceptDescPosition is the schema descriptor for position field.
	conceptDescPosition := conceptFields[4].Descriptor()
	// concept.DefaultPosition holds the default value on creation for the position field.
	concept.DefaultPosition = conceptDescPosition.Default.(int)
	examFields := schema.Exam{}.Fields()
	_ = examFields
	// examDescExamID is the schema descriptor for exam_id field.
	examDescExamID := examFields[0].Descriptor()
	// exam.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	exam.ExamIDValidator = examDescExamID.Validators[0].(func(string) error)
	// examDescExamType is the schema descriptor for exam_type field.
	examDescExamType := examFields[1].Descriptor()
	// exam.ExamTypeValidator is a validator for the "exam_type" field. It is called by the builders before save.
	exam.ExamTypeValidator = examDescExamType.Validators[0].(func(string) error)
	// examDescLevelNumber is the schema descriptor for level_number field.
	examDescLevelNumber := examFields[2].Descriptor()
	// exam.DefaultLevelNumber holds the default value on creation for the level_number field.
	exam.DefaultLevelNumber = examDescLevelNumber.Default.(int)
	// examDescCategoryID is the schema descriptor for category_id field.
	examDescCategoryID := examFields[3].Descriptor()
	// exam.DefaultCategoryID holds the default value on creation for the category_id field.
	exam.DefaultCategoryID = examDescCategoryID.Default.(string)
	// examDescVersion is the schema descriptor for version field.
	examDescVersion := examFields[4].Descriptor()
	// exam.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	exam.VersionValidator = examDescVersion.Validators[0].(func(int) error)
	// examDescProvider is the schema descriptor for provider field.
	examDescProvider := examFields[6].Descriptor()
	// exam.DefaultProvider holds the default value on creation for the provider field.
	exam.DefaultProvider = examDescProvider.Default.(string)
	// examDescModel is the schema descriptor for model field.
	examDescModel := examFields[7].Descriptor()
	// exam.DefaultModel holds the default value on creation for the model field.
	exam.DefaultModel = examDescModel.Default.(string)
	// examDescGenerationAttempts is the schema descriptor for generation_attempts field.
	examDescGenerationAttempts := examFields[8].Descriptor()
	// exam.DefaultGenerationAttempts holds the default value on creation for the generation_attempts field.
	exam.DefaultGenerationAttempts = examDescGenerationAttempts.Default.(int)
	// examDescGeneratedAt is the schema descriptor for generated_at field.
	examDescGeneratedAt := examFields[9].Descriptor()
	// exam.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	exam.DefaultGeneratedAt = examDescGeneratedAt.Default.(func() time.Time)
	examattemptFields := schema.ExamAttempt{}.Fields()
	_ = examattemptFields
	// examattemptDescAttemptID is the schema descriptor for attempt_id field.
	examattemptDescAttemptID := examattemptFields[0].Descriptor()
	// examattempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	examattempt.AttemptIDValidator = examattemptDescAttemptID.Validators[0].(func(string) error)
	// examattemptDescUserID is the schema descriptor for user_id field.
	examattemptDescUserID := examattemptFields[1].Descriptor()
	// examattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examattempt.UserIDValidator = examattemptDescUserID.Validators[0].(func(string) error)
	// examattemptDescExamID is the schema descriptor for exam_id field.
	examattemptDescExamID := examattemptFields[2].Descriptor()
	// examattempt.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examattempt.ExamIDValidator = examattemptDescExamID.Validators[0].(func(string) error)
	// examattemptDescAttemptNumber is the schema descriptor for attempt_number field.
	examattemptDescAttemptNumber := examattemptFields[3].Descriptor()
	// examattempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	examattempt.AttemptNumberValidator = examattemptDescAttemptNumber.Validators[0].(func(int) error)
	// examattemptDescScore is the schema descriptor for score field.
	examattemptDescScore := examattemptFields[5].Descriptor()
	// examattempt.DefaultScore holds the default value on creation for the score field.
	examattempt.DefaultScore = examattemptDescScore.Default.(float64)
	// examattemptDescPercentage is the schema descriptor for percentage field.
	examattemptDescPercentage := examattemptFields[6].Descriptor()
	// examattempt.DefaultPercentage holds the default value on creation for the percentage field.
	examattempt.DefaultPercentage = examattemptDescPercentage.Default.(float64)
	// examattemptDescPass is the schema descriptor for pass field.
	examattemptDescPass := examattemptFields[7].Descriptor()
	// examattempt.DefaultPass holds the default value on creation for the pass field.
	examattempt.DefaultPass = examattemptDescPass.Default.(bool)
	// examattemptDescStartedAt is the schema descriptor for started_at field.
	examattemptDescStartedAt := examattemptFields[9].Descriptor()
	// examattempt.DefaultStartedAt holds the default value on creation for the started_at field.
	examattempt.DefaultStartedAt = examattemptDescStartedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	levelprogressFields := schema.LevelProgress{}.Fields()
	_ = levelprogressFields
	// levelprogressDescUserID is the schema descriptor for user_id field.
	levelprogressDescUserID := levelprogressFields[0].Descriptor()
	// levelprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	levelprogress.UserIDValidator = levelprogressDescUserID.Validators[0].(func(string) error)
	// levelprogressDescLevelNumber is the schema descriptor for level_number field.
	levelprogressDescLevelNumber := levelprogressFields[1].Descriptor()
	// levelprogress.LevelNumberValidator is a validator for the "level_number" field. It is called by the builders before save.
	levelprogress.LevelNumberValidator = levelprogressDescLevelNumber.Validators[0].(func(int) error)
	// levelprogressDescStatus is the schema descriptor for status field.
	levelprogressDescStatus := levelprogressFields[2].Descriptor()
	// levelprogress.DefaultStatus holds the default value on creation for the status field.
	levelprogress.DefaultStatus = levelprogressDescStatus.Default.(string)
	// levelprogressDescBestPercentage is the schema descriptor for best_percentage field.
	levelprogressDescBestPercentage := levelprogressFields[3].Descriptor()
	// levelprogress.DefaultBestPercentage holds the default value on creation for the best_percentage field.
	levelprogress.DefaultBestPercentage = levelprogressDescBestPercentage.Default.(float64)
	// levelprogressDescAttemptsCount is the schema descriptor for attempts_count field.
	levelprogressDescAttemptsCount := levelprogressFields[4].Descriptor()
	// levelprogress.DefaultAttemptsCount holds the default value on creation for the attempts_count field.
	levelprogress.DefaultAttemptsCount = levelprogressDescAttemptsCount.Default.(int)
}
