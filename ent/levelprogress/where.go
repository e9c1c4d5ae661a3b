// Code generated by ent, DO NOT EDIT.

package levelprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fasahat78/startege/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldUserID, v))
}

// LevelNumber applies equality check predicate on the "level_number" field. It's identical to LevelNumberEQ.
func LevelNumber(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldLevelNumber, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldStatus, v))
}

// BestPercentage applies equality check predicate on the "best_percentage" field. It's identical to BestPercentageEQ.
func BestPercentage(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldBestPercentage, v))
}

// AttemptsCount applies equality check predicate on the "attempts_count" field. It's identical to AttemptsCountEQ.
func AttemptsCount(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldAttemptsCount, v))
}

// PassedAt applies equality check predicate on the "passed_at" field. It's identical to PassedAtEQ.
func PassedAt(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldPassedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContainsFold(FieldUserID, v))
}

// LevelNumberEQ applies the EQ predicate on the "level_number" field.
func LevelNumberEQ(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldLevelNumber, v))
}

// LevelNumberNEQ applies the NEQ predicate on the "level_number" field.
func LevelNumberNEQ(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldLevelNumber, v))
}

// LevelNumberIn applies the In predicate on the "level_number" field.
func LevelNumberIn(vs ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldLevelNumber, vs...))
}

// LevelNumberNotIn applies the NotIn predicate on the "level_number" field.
func LevelNumberNotIn(vs ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldLevelNumber, vs...))
}

// LevelNumberGT applies the GT predicate on the "level_number" field.
func LevelNumberGT(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldLevelNumber, v))
}

// LevelNumberGTE applies the GTE predicate on the "level_number" field.
func LevelNumberGTE(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldLevelNumber, v))
}

// LevelNumberLT applies the LT predicate on the "level_number" field.
func LevelNumberLT(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldLevelNumber, v))
}

// LevelNumberLTE applies the LTE predicate on the "level_number" field.
func LevelNumberLTE(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldLevelNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContainsFold(FieldStatus, v))
}

// BestPercentageEQ applies the EQ predicate on the "best_percentage" field.
func BestPercentageEQ(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldBestPercentage, v))
}

// BestPercentageNEQ applies the NEQ predicate on the "best_percentage" field.
func BestPercentageNEQ(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldBestPercentage, v))
}

// BestPercentageIn applies the In predicate on the "best_percentage" field.
func BestPercentageIn(vs ...float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldBestPercentage, vs...))
}

// BestPercentageNotIn applies the NotIn predicate on the "best_percentage" field.
func BestPercentageNotIn(vs ...float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldBestPercentage, vs...))
}

// BestPercentageGT applies the GT predicate on the "best_percentage" field.
func BestPercentageGT(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldBestPercentage, v))
}

// BestPercentageGTE applies the GTE predicate on the "best_percentage" field.
func BestPercentageGTE(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldBestPercentage, v))
}

// BestPercentageLT applies the LT predicate on the "best_percentage" field.
func BestPercentageLT(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldBestPercentage, v))
}

// BestPercentageLTE applies the LTE predicate on the "best_percentage" field.
func BestPercentageLTE(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldBestPercentage, v))
}

// AttemptsCountEQ applies the EQ predicate on the "attempts_count" field.
func AttemptsCountEQ(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldAttemptsCount, v))
}

// AttemptsCountNEQ applies the NEQ predicate on the "attempts_count" field.
func AttemptsCountNEQ(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldAttemptsCount, v))
}

// AttemptsCountIn applies the In predicate on the "attempts_count" field.
func AttemptsCountIn(vs ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldAttemptsCount, vs...))
}

// AttemptsCountNotIn applies the NotIn predicate on the "attempts_count" field.
func AttemptsCountNotIn(vs ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldAttemptsCount, vs...))
}

// AttemptsCountGT applies the GT predicate on the "attempts_count" field.
func AttemptsCountGT(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldAttemptsCount, v))
}

// AttemptsCountGTE applies the GTE predicate on the "attempts_count" field.
func AttemptsCountGTE(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldAttemptsCount, v))
}

// AttemptsCountLT applies the LT predicate on the "attempts_count" field.
func AttemptsCountLT(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldAttemptsCount, v))
}

// AttemptsCountLTE applies the LTE predicate on the "attempts_count" field.
func AttemptsCountLTE(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldAttemptsCount, v))
}

// PassedAtEQ applies the EQ predicate on the "passed_at" field.
func PassedAtEQ(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldPassedAt, v))
}

// PassedAtNEQ applies the NEQ predicate on the "passed_at" field.
func PassedAtNEQ(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldPassedAt, v))
}

// PassedAtIn applies the In predicate on the "passed_at" field.
func PassedAtIn(vs ...time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldPassedAt, vs...))
}

// PassedAtNotIn applies the NotIn predicate on the "passed_at" field.
func PassedAtNotIn(vs ...time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldPassedAt, vs...))
}

// PassedAtGT applies the GT predicate on the "passed_at" field.
func PassedAtGT(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldPassedAt, v))
}

// PassedAtGTE applies the GTE predicate on the "passed_at" field.
func PassedAtGTE(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldPassedAt, v))
}

// PassedAtLT applies the LT predicate on the "passed_at" field.
func PassedAtLT(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldPassedAt, v))
}

// PassedAtLTE applies the LTE predicate on the "passed_at" field.
func PassedAtLTE(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldPassedAt, v))
}

// PassedAtIsNil applies the IsNil predicate on the "passed_at" field.
func PassedAtIsNil() predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIsNull(FieldPassedAt))
}

// PassedAtNotNil applies the NotNil predicate on the "passed_at" field.
func PassedAtNotNil() predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotNull(FieldPassedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LevelProgress) predicate.LevelProgress {
	return predicate.LevelProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LevelProgress) predicate.LevelProgress {
	return predicate.LevelProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LevelProgress) predicate.LevelProgress {
	return predicate.LevelProgress(sql.NotPredicates(p))
}
