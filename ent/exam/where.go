// Code generated by ent, DO NOT EDIT.

package exam

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fasahat78/startege/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldID, id))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamID, v))
}

// ExamType applies equality check predicate on the "exam_type" field. It's identical to ExamTypeEQ.
func ExamType(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamType, v))
}

// LevelNumber applies equality check predicate on the "level_number" field. It's identical to LevelNumberEQ.
func LevelNumber(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldLevelNumber, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCategoryID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldVersion, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldModel, v))
}

// GenerationAttempts applies equality check predicate on the "generation_attempts" field. It's identical to GenerationAttemptsEQ.
func GenerationAttempts(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldGenerationAttempts, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldGeneratedAt, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldExamID, v))
}

// ExamTypeEQ applies the EQ predicate on the "exam_type" field.
func ExamTypeEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamType, v))
}

// ExamTypeNEQ applies the NEQ predicate on the "exam_type" field.
func ExamTypeNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldExamType, v))
}

// ExamTypeIn applies the In predicate on the "exam_type" field.
func ExamTypeIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldExamType, vs...))
}

// ExamTypeNotIn applies the NotIn predicate on the "exam_type" field.
func ExamTypeNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldExamType, vs...))
}

// ExamTypeGT applies the GT predicate on the "exam_type" field.
func ExamTypeGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldExamType, v))
}

// ExamTypeGTE applies the GTE predicate on the "exam_type" field.
func ExamTypeGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldExamType, v))
}

// ExamTypeLT applies the LT predicate on the "exam_type" field.
func ExamTypeLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldExamType, v))
}

// ExamTypeLTE applies the LTE predicate on the "exam_type" field.
func ExamTypeLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldExamType, v))
}

// ExamTypeContains applies the Contains predicate on the "exam_type" field.
func ExamTypeContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldExamType, v))
}

// ExamTypeHasPrefix applies the HasPrefix predicate on the "exam_type" field.
func ExamTypeHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldExamType, v))
}

// ExamTypeHasSuffix applies the HasSuffix predicate on the "exam_type" field.
func ExamTypeHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldExamType, v))
}

// ExamTypeEqualFold applies the EqualFold predicate on the "exam_type" field.
func ExamTypeEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldExamType, v))
}

// ExamTypeContainsFold applies the ContainsFold predicate on the "exam_type" field.
func ExamTypeContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldExamType, v))
}

// LevelNumberEQ applies the EQ predicate on the "level_number" field.
func LevelNumberEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldLevelNumber, v))
}

// LevelNumberNEQ applies the NEQ predicate on the "level_number" field.
func LevelNumberNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldLevelNumber, v))
}

// LevelNumberIn applies the In predicate on the "level_number" field.
func LevelNumberIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldLevelNumber, vs...))
}

// LevelNumberNotIn applies the NotIn predicate on the "level_number" field.
func LevelNumberNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldLevelNumber, vs...))
}

// LevelNumberGT applies the GT predicate on the "level_number" field.
func LevelNumberGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldLevelNumber, v))
}

// LevelNumberGTE applies the GTE predicate on the "level_number" field.
func LevelNumberGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldLevelNumber, v))
}

// LevelNumberLT applies the LT predicate on the "level_number" field.
func LevelNumberLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldLevelNumber, v))
}

// LevelNumberLTE applies the LTE predicate on the "level_number" field.
func LevelNumberLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldLevelNumber, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldCategoryID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldVersion, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldModel, v))
}

// GenerationAttemptsEQ applies the EQ predicate on the "generation_attempts" field.
func GenerationAttemptsEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldGenerationAttempts, v))
}

// GenerationAttemptsNEQ applies the NEQ predicate on the "generation_attempts" field.
func GenerationAttemptsNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldGenerationAttempts, v))
}

// GenerationAttemptsIn applies the In predicate on the "generation_attempts" field.
func GenerationAttemptsIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldGenerationAttempts, vs...))
}

// GenerationAttemptsNotIn applies the NotIn predicate on the "generation_attempts" field.
func GenerationAttemptsNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldGenerationAttempts, vs...))
}

// GenerationAttemptsGT applies the GT predicate on the "generation_attempts" field.
func GenerationAttemptsGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldGenerationAttempts, v))
}

// GenerationAttemptsGTE applies the GTE predicate on the "generation_attempts" field.
func GenerationAttemptsGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldGenerationAttempts, v))
}

// GenerationAttemptsLT applies the LT predicate on the "generation_attempts" field.
func GenerationAttemptsLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldGenerationAttempts, v))
}

// GenerationAttemptsLTE applies the LTE predicate on the "generation_attempts" field.
func GenerationAttemptsLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldGenerationAttempts, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.NotPredicates(p))
}
