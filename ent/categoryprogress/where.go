// Code generated by ent, DO NOT EDIT.

package categoryprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fasahat78/startege/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldUserID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldCategoryID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldStatus, v))
}

// BestPercentage applies equality check predicate on the "best_percentage" field. It's identical to BestPercentageEQ.
func BestPercentage(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldBestPercentage, v))
}

// AttemptsCount applies equality check predicate on the "attempts_count" field. It's identical to AttemptsCountEQ.
func AttemptsCount(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldAttemptsCount, v))
}

// PassedAt applies equality check predicate on the "passed_at" field. It's identical to PassedAtEQ.
func PassedAt(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldPassedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldCategoryID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldStatus, v))
}

// BestPercentageEQ applies the EQ predicate on the "best_percentage" field.
func BestPercentageEQ(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldBestPercentage, v))
}

// BestPercentageNEQ applies the NEQ predicate on the "best_percentage" field.
func BestPercentageNEQ(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldBestPercentage, v))
}

// BestPercentageIn applies the In predicate on the "best_percentage" field.
func BestPercentageIn(vs ...float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldBestPercentage, vs...))
}

// BestPercentageNotIn applies the NotIn predicate on the "best_percentage" field.
func BestPercentageNotIn(vs ...float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldBestPercentage, vs...))
}

// BestPercentageGT applies the GT predicate on the "best_percentage" field.
func BestPercentageGT(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldBestPercentage, v))
}

// BestPercentageGTE applies the GTE predicate on the "best_percentage" field.
func BestPercentageGTE(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldBestPercentage, v))
}

// BestPercentageLT applies the LT predicate on the "best_percentage" field.
func BestPercentageLT(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldBestPercentage, v))
}

// BestPercentageLTE applies the LTE predicate on the "best_percentage" field.
func BestPercentageLTE(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldBestPercentage, v))
}

// AttemptsCountEQ applies the EQ predicate on the "attempts_count" field.
func AttemptsCountEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldAttemptsCount, v))
}

// AttemptsCountNEQ applies the NEQ predicate on the "attempts_count" field.
func AttemptsCountNEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldAttemptsCount, v))
}

// AttemptsCountIn applies the In predicate on the "attempts_count" field.
func AttemptsCountIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldAttemptsCount, vs...))
}

// AttemptsCountNotIn applies the NotIn predicate on the "attempts_count" field.
func AttemptsCountNotIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldAttemptsCount, vs...))
}

// AttemptsCountGT applies the GT predicate on the "attempts_count" field.
func AttemptsCountGT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldAttemptsCount, v))
}

// AttemptsCountGTE applies the GTE predicate on the "attempts_count" field.
func AttemptsCountGTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldAttemptsCount, v))
}

// AttemptsCountLT applies the LT predicate on the "attempts_count" field.
func AttemptsCountLT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldAttemptsCount, v))
}

// AttemptsCountLTE applies the LTE predicate on the "attempts_count" field.
func AttemptsCountLTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldAttemptsCount, v))
}

// PassedAtEQ applies the EQ predicate on the "passed_at" field.
func PassedAtEQ(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldPassedAt, v))
}

// PassedAtNEQ applies the NEQ predicate on the "passed_at" field.
func PassedAtNEQ(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldPassedAt, v))
}

// PassedAtIn applies the In predicate on the "passed_at" field.
func PassedAtIn(vs ...time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldPassedAt, vs...))
}

// PassedAtNotIn applies the NotIn predicate on the "passed_at" field.
func PassedAtNotIn(vs ...time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldPassedAt, vs...))
}

// PassedAtGT applies the GT predicate on the "passed_at" field.
func PassedAtGT(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldPassedAt, v))
}

// PassedAtGTE applies the GTE predicate on the "passed_at" field.
func PassedAtGTE(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldPassedAt, v))
}

// PassedAtLT applies the LT predicate on the "passed_at" field.
func PassedAtLT(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldPassedAt, v))
}

// PassedAtLTE applies the LTE predicate on the "passed_at" field.
func PassedAtLTE(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldPassedAt, v))
}

// PassedAtIsNil applies the IsNil predicate on the "passed_at" field.
func PassedAtIsNil() predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIsNull(FieldPassedAt))
}

// PassedAtNotNil applies the NotNil predicate on the "passed_at" field.
func PassedAtNotNil() predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotNull(FieldPassedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryProgress) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryProgress) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryProgress) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.NotPredicates(p))
}
