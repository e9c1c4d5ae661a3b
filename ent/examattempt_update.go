// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/examattempt"
	"github.com/fasahat78/startege/ent/predicate"
	"github.com/fasahat78/startege/ent/schema"
)

// ExamAttemptUpdate is the builder for updating ExamAttempt entities.
type ExamAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *ExamAttemptMutation
}

// Where appends a list predicates to the ExamAttemptUpdate builder.
func (_u *ExamAttemptUpdate) Where(ps ...predicate.ExamAttempt) *ExamAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ExamAttemptUpdate) SetAttemptNumber(v int) *ExamAttemptUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableAttemptNumber(v *int) *ExamAttemptUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ExamAttemptUpdate) AddAttemptNumber(v int) *ExamAttemptUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ExamAttemptUpdate) SetAnswers(v []schema.AnswerRecord) *ExamAttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ExamAttemptUpdate) AppendAnswers(v []schema.AnswerRecord) *ExamAttemptUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ExamAttemptUpdate) ClearAnswers() *ExamAttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamAttemptUpdate) SetScore(v float64) *ExamAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableScore(v *float64) *ExamAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamAttemptUpdate) AddScore(v float64) *ExamAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ExamAttemptUpdate) SetPercentage(v float64) *ExamAttemptUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillablePercentage(v *float64) *ExamAttemptUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ExamAttemptUpdate) AddPercentage(v float64) *ExamAttemptUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPass sets the "pass" field.
func (_u *ExamAttemptUpdate) SetPass(v bool) *ExamAttemptUpdate {
	_u.mutation.SetPass(v)
	return _u
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillablePass(v *bool) *ExamAttemptUpdate {
	if v != nil {
		_u.SetPass(*v)
	}
	return _u
}

// SetWeakConceptIds sets the "weak_concept_ids" field.
func (_u *ExamAttemptUpdate) SetWeakConceptIds(v []string) *ExamAttemptUpdate {
	_u.mutation.SetWeakConceptIds(v)
	return _u
}

// AppendWeakConceptIds appends value to the "weak_concept_ids" field.
func (_u *ExamAttemptUpdate) AppendWeakConceptIds(v []string) *ExamAttemptUpdate {
	_u.mutation.AppendWeakConceptIds(v)
	return _u
}

// ClearWeakConceptIds clears the value of the "weak_concept_ids" field.
func (_u *ExamAttemptUpdate) ClearWeakConceptIds() *ExamAttemptUpdate {
	_u.mutation.ClearWeakConceptIds()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ExamAttemptUpdate) SetSubmittedAt(v time.Time) *ExamAttemptUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableSubmittedAt(v *time.Time) *ExamAttemptUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ExamAttemptUpdate) ClearSubmittedAt() *ExamAttemptUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_u *ExamAttemptUpdate) Mutation() *ExamAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAttemptUpdate) check() error {
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := examattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examattempt.Table, examattempt.Columns, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(examattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(examattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(examattempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(examattempt.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(examattempt.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(examattempt.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Pass(); ok {
		_spec.SetField(examattempt.FieldPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WeakConceptIds(); ok {
		_spec.SetField(examattempt.FieldWeakConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldWeakConceptIds, value)
		})
	}
	if _u.mutation.WeakConceptIdsCleared() {
		_spec.ClearField(examattempt.FieldWeakConceptIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(examattempt.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(examattempt.FieldSubmittedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamAttemptUpdateOne is the builder for updating a single ExamAttempt entity.
type ExamAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamAttemptMutation
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ExamAttemptUpdateOne) SetAttemptNumber(v int) *ExamAttemptUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableAttemptNumber(v *int) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ExamAttemptUpdateOne) AddAttemptNumber(v int) *ExamAttemptUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ExamAttemptUpdateOne) SetAnswers(v []schema.AnswerRecord) *ExamAttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ExamAttemptUpdateOne) AppendAnswers(v []schema.AnswerRecord) *ExamAttemptUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ExamAttemptUpdateOne) ClearAnswers() *ExamAttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamAttemptUpdateOne) SetScore(v float64) *ExamAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableScore(v *float64) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamAttemptUpdateOne) AddScore(v float64) *ExamAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ExamAttemptUpdateOne) SetPercentage(v float64) *ExamAttemptUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillablePercentage(v *float64) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ExamAttemptUpdateOne) AddPercentage(v float64) *ExamAttemptUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPass sets the "pass" field.
func (_u *ExamAttemptUpdateOne) SetPass(v bool) *ExamAttemptUpdateOne {
	_u.mutation.SetPass(v)
	return _u
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillablePass(v *bool) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetPass(*v)
	}
	return _u
}

// SetWeakConceptIds sets the "weak_concept_ids" field.
func (_u *ExamAttemptUpdateOne) SetWeakConceptIds(v []string) *ExamAttemptUpdateOne {
	_u.mutation.SetWeakConceptIds(v)
	return _u
}

// AppendWeakConceptIds appends value to the "weak_concept_ids" field.
func (_u *ExamAttemptUpdateOne) AppendWeakConceptIds(v []string) *ExamAttemptUpdateOne {
	_u.mutation.AppendWeakConceptIds(v)
	return _u
}

// ClearWeakConceptIds clears the value of the "weak_concept_ids" field.
func (_u *ExamAttemptUpdateOne) ClearWeakConceptIds() *ExamAttemptUpdateOne {
	_u.mutation.ClearWeakConceptIds()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ExamAttemptUpdateOne) SetSubmittedAt(v time.Time) *ExamAttemptUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableSubmittedAt(v *time.Time) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ExamAttemptUpdateOne) ClearSubmittedAt() *ExamAttemptUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_u *ExamAttemptUpdateOne) Mutation() *ExamAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamAttemptUpdate builder.
func (_u *ExamAttemptUpdateOne) Where(ps ...predicate.ExamAttempt) *ExamAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamAttemptUpdateOne) Select(field string, fields ...string) *ExamAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamAttempt entity.
func (_u *ExamAttemptUpdateOne) Save(ctx context.Context) (*ExamAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAttemptUpdateOne) SaveX(ctx context.Context) *ExamAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := examattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAttemptUpdateOne) sqlSave(ctx context.Context) (_node *ExamAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examattempt.Table, examattempt.Columns, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examattempt.FieldID)
		for _, f := range fields {
			if !examattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(examattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(examattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(examattempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(examattempt.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(examattempt.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(examattempt.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Pass(); ok {
		_spec.SetField(examattempt.FieldPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WeakConceptIds(); ok {
		_spec.SetField(examattempt.FieldWeakConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldWeakConceptIds, value)
		})
	}
	if _u.mutation.WeakConceptIdsCleared() {
		_spec.ClearField(examattempt.FieldWeakConceptIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(examattempt.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(examattempt.FieldSubmittedAt, field.TypeTime)
	}
	_node = &ExamAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
