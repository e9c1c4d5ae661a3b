// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/categoryprogress"
	"github.com/fasahat78/startege/ent/predicate"
)

// CategoryProgressUpdate is the builder for updating CategoryProgress entities.
type CategoryProgressUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryProgressMutation
}

// Where appends a list predicates to the CategoryProgressUpdate builder.
func (_u *CategoryProgressUpdate) Where(ps ...predicate.CategoryProgress) *CategoryProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CategoryProgressUpdate) SetStatus(v string) *CategoryProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableStatus(v *string) *CategoryProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBestPercentage sets the "best_percentage" field.
func (_u *CategoryProgressUpdate) SetBestPercentage(v float64) *CategoryProgressUpdate {
	_u.mutation.ResetBestPercentage()
	_u.mutation.SetBestPercentage(v)
	return _u
}

// SetNillableBestPercentage sets the "best_percentage" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableBestPercentage(v *float64) *CategoryProgressUpdate {
	if v != nil {
		_u.SetBestPercentage(*v)
	}
	return _u
}

// AddBestPercentage adds value to the "best_percentage" field.
func (_u *CategoryProgressUpdate) AddBestPercentage(v float64) *CategoryProgressUpdate {
	_u.mutation.AddBestPercentage(v)
	return _u
}

// SetAttemptsCount sets the "attempts_count" field.
func (_u *CategoryProgressUpdate) SetAttemptsCount(v int) *CategoryProgressUpdate {
	_u.mutation.ResetAttemptsCount()
	_u.mutation.SetAttemptsCount(v)
	return _u
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableAttemptsCount(v *int) *CategoryProgressUpdate {
	if v != nil {
		_u.SetAttemptsCount(*v)
	}
	return _u
}

// AddAttemptsCount adds value to the "attempts_count" field.
func (_u *CategoryProgressUpdate) AddAttemptsCount(v int) *CategoryProgressUpdate {
	_u.mutation.AddAttemptsCount(v)
	return _u
}

// SetPassedAt sets the "passed_at" field.
func (_u *CategoryProgressUpdate) SetPassedAt(v time.Time) *CategoryProgressUpdate {
	_u.mutation.SetPassedAt(v)
	return _u
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillablePassedAt(v *time.Time) *CategoryProgressUpdate {
	if v != nil {
		_u.SetPassedAt(*v)
	}
	return _u
}

// ClearPassedAt clears the value of the "passed_at" field.
func (_u *CategoryProgressUpdate) ClearPassedAt() *CategoryProgressUpdate {
	_u.mutation.ClearPassedAt()
	return _u
}

// Mutation returns the CategoryProgressMutation object of the builder.
func (_u *CategoryProgressUpdate) Mutation() *CategoryProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CategoryProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(categoryprogress.Table, categoryprogress.Columns, sqlgraph.NewFieldSpec(categoryprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(categoryprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestPercentage(); ok {
		_spec.SetField(categoryprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestPercentage(); ok {
		_spec.AddField(categoryprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptsCount(); ok {
		_spec.SetField(categoryprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsCount(); ok {
		_spec.AddField(categoryprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedAt(); ok {
		_spec.SetField(categoryprogress.FieldPassedAt, field.TypeTime, value)
	}
	if _u.mutation.PassedAtCleared() {
		_spec.ClearField(categoryprogress.FieldPassedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryProgressUpdateOne is the builder for updating a single CategoryProgress entity.
type CategoryProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryProgressMutation
}

// SetStatus sets the "status" field.
func (_u *CategoryProgressUpdateOne) SetStatus(v string) *CategoryProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableStatus(v *string) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBestPercentage sets the "best_percentage" field.
func (_u *CategoryProgressUpdateOne) SetBestPercentage(v float64) *CategoryProgressUpdateOne {
	_u.mutation.ResetBestPercentage()
	_u.mutation.SetBestPercentage(v)
	return _u
}

// SetNillableBestPercentage sets the "best_percentage" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableBestPercentage(v *float64) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetBestPercentage(*v)
	}
	return _u
}

// AddBestPercentage adds value to the "best_percentage" field.
func (_u *CategoryProgressUpdateOne) AddBestPercentage(v float64) *CategoryProgressUpdateOne {
	_u.mutation.AddBestPercentage(v)
	return _u
}

// SetAttemptsCount sets the "attempts_count" field.
func (_u *CategoryProgressUpdateOne) SetAttemptsCount(v int) *CategoryProgressUpdateOne {
	_u.mutation.ResetAttemptsCount()
	_u.mutation.SetAttemptsCount(v)
	return _u
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableAttemptsCount(v *int) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetAttemptsCount(*v)
	}
	return _u
}

// AddAttemptsCount adds value to the "attempts_count" field.
func (_u *CategoryProgressUpdateOne) AddAttemptsCount(v int) *CategoryProgressUpdateOne {
	_u.mutation.AddAttemptsCount(v)
	return _u
}

// SetPassedAt sets the "passed_at" field.
func (_u *CategoryProgressUpdateOne) SetPassedAt(v time.Time) *CategoryProgressUpdateOne {
	_u.mutation.SetPassedAt(v)
	return _u
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillablePassedAt(v *time.Time) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetPassedAt(*v)
	}
	return _u
}

// ClearPassedAt clears the value of the "passed_at" field.
func (_u *CategoryProgressUpdateOne) ClearPassedAt() *CategoryProgressUpdateOne {
	_u.mutation.ClearPassedAt()
	return _u
}

// Mutation returns the CategoryProgressMutation object of the builder.
func (_u *CategoryProgressUpdateOne) Mutation() *CategoryProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the CategoryProgressUpdate builder.
func (_u *CategoryProgressUpdateOne) Where(ps ...predicate.CategoryProgress) *CategoryProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryProgressUpdateOne) Select(field string, fields ...string) *CategoryProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryProgress entity.
func (_u *CategoryProgressUpdateOne) Save(ctx context.Context) (*CategoryProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryProgressUpdateOne) SaveX(ctx context.Context) *CategoryProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CategoryProgressUpdateOne) sqlSave(ctx context.Context) (_node *CategoryProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(categoryprogress.Table, categoryprogress.Columns, sqlgraph.NewFieldSpec(categoryprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryprogress.FieldID)
		for _, f := range fields {
			if !categoryprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categoryprogress.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(categoryprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestPercentage(); ok {
		_spec.SetField(categoryprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestPercentage(); ok {
		_spec.AddField(categoryprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptsCount(); ok {
		_spec.SetField(categoryprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsCount(); ok {
		_spec.AddField(categoryprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedAt(); ok {
		_spec.SetField(categoryprogress.FieldPassedAt, field.TypeTime, value)
	}
	if _u.mutation.PassedAtCleared() {
		_spec.ClearField(categoryprogress.FieldPassedAt, field.TypeTime)
	}
	_node = &CategoryProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
