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
	"github.com/fasahat78/startege/ent/levelprogress"
	"github.com/fasahat78/startege/ent/predicate"
)

// LevelProgressUpdate is the builder for updating LevelProgress entities.
type LevelProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LevelProgressMutation
}

// Where appends a list predicates to the LevelProgressUpdate builder.
func (_u *LevelProgressUpdate) Where(ps ...predicate.LevelProgress) *LevelProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LevelProgressUpdate) SetStatus(v string) *LevelProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableStatus(v *string) *LevelProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBestPercentage sets the "best_percentage" field.
func (_u *LevelProgressUpdate) SetBestPercentage(v float64) *LevelProgressUpdate {
	_u.mutation.ResetBestPercentage()
	_u.mutation.SetBestPercentage(v)
	return _u
}

// SetNillableBestPercentage sets the "best_percentage" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableBestPercentage(v *float64) *LevelProgressUpdate {
	if v != nil {
		_u.SetBestPercentage(*v)
	}
	return _u
}

// AddBestPercentage adds value to the "best_percentage" field.
func (_u *LevelProgressUpdate) AddBestPercentage(v float64) *LevelProgressUpdate {
	_u.mutation.AddBestPercentage(v)
	return _u
}

// SetAttemptsCount sets the "attempts_count" field.
func (_u *LevelProgressUpdate) SetAttemptsCount(v int) *LevelProgressUpdate {
	_u.mutation.ResetAttemptsCount()
	_u.mutation.SetAttemptsCount(v)
	return _u
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableAttemptsCount(v *int) *LevelProgressUpdate {
	if v != nil {
		_u.SetAttemptsCount(*v)
	}
	return _u
}

// AddAttemptsCount adds value to the "attempts_count" field.
func (_u *LevelProgressUpdate) AddAttemptsCount(v int) *LevelProgressUpdate {
	_u.mutation.AddAttemptsCount(v)
	return _u
}

// SetPassedAt sets the "passed_at" field.
func (_u *LevelProgressUpdate) SetPassedAt(v time.Time) *LevelProgressUpdate {
	_u.mutation.SetPassedAt(v)
	return _u
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillablePassedAt(v *time.Time) *LevelProgressUpdate {
	if v != nil {
		_u.SetPassedAt(*v)
	}
	return _u
}

// ClearPassedAt clears the value of the "passed_at" field.
func (_u *LevelProgressUpdate) ClearPassedAt() *LevelProgressUpdate {
	_u.mutation.ClearPassedAt()
	return _u
}

// Mutation returns the LevelProgressMutation object of the builder.
func (_u *LevelProgressUpdate) Mutation() *LevelProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LevelProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(levelprogress.Table, levelprogress.Columns, sqlgraph.NewFieldSpec(levelprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(levelprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestPercentage(); ok {
		_spec.SetField(levelprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestPercentage(); ok {
		_spec.AddField(levelprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptsCount(); ok {
		_spec.SetField(levelprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsCount(); ok {
		_spec.AddField(levelprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedAt(); ok {
		_spec.SetField(levelprogress.FieldPassedAt, field.TypeTime, value)
	}
	if _u.mutation.PassedAtCleared() {
		_spec.ClearField(levelprogress.FieldPassedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelProgressUpdateOne is the builder for updating a single LevelProgress entity.
type LevelProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelProgressMutation
}

// SetStatus sets the "status" field.
func (_u *LevelProgressUpdateOne) SetStatus(v string) *LevelProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableStatus(v *string) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBestPercentage sets the "best_percentage" field.
func (_u *LevelProgressUpdateOne) SetBestPercentage(v float64) *LevelProgressUpdateOne {
	_u.mutation.ResetBestPercentage()
	_u.mutation.SetBestPercentage(v)
	return _u
}

// SetNillableBestPercentage sets the "best_percentage" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableBestPercentage(v *float64) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetBestPercentage(*v)
	}
	return _u
}

// AddBestPercentage adds value to the "best_percentage" field.
func (_u *LevelProgressUpdateOne) AddBestPercentage(v float64) *LevelProgressUpdateOne {
	_u.mutation.AddBestPercentage(v)
	return _u
}

// SetAttemptsCount sets the "attempts_count" field.
func (_u *LevelProgressUpdateOne) SetAttemptsCount(v int) *LevelProgressUpdateOne {
	_u.mutation.ResetAttemptsCount()
	_u.mutation.SetAttemptsCount(v)
	return _u
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableAttemptsCount(v *int) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetAttemptsCount(*v)
	}
	return _u
}

// AddAttemptsCount adds value to the "attempts_count" field.
func (_u *LevelProgressUpdateOne) AddAttemptsCount(v int) *LevelProgressUpdateOne {
	_u.mutation.AddAttemptsCount(v)
	return _u
}

// SetPassedAt sets the "passed_at" field.
func (_u *LevelProgressUpdateOne) SetPassedAt(v time.Time) *LevelProgressUpdateOne {
	_u.mutation.SetPassedAt(v)
	return _u
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillablePassedAt(v *time.Time) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetPassedAt(*v)
	}
	return _u
}

// ClearPassedAt clears the value of the "passed_at" field.
func (_u *LevelProgressUpdateOne) ClearPassedAt() *LevelProgressUpdateOne {
	_u.mutation.ClearPassedAt()
	return _u
}

// Mutation returns the LevelProgressMutation object of the builder.
func (_u *LevelProgressUpdateOne) Mutation() *LevelProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelProgressUpdate builder.
func (_u *LevelProgressUpdateOne) Where(ps ...predicate.LevelProgress) *LevelProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelProgressUpdateOne) Select(field string, fields ...string) *LevelProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LevelProgress entity.
func (_u *LevelProgressUpdateOne) Save(ctx context.Context) (*LevelProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelProgressUpdateOne) SaveX(ctx context.Context) *LevelProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LevelProgressUpdateOne) sqlSave(ctx context.Context) (_node *LevelProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(levelprogress.Table, levelprogress.Columns, sqlgraph.NewFieldSpec(levelprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LevelProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, levelprogress.FieldID)
		for _, f := range fields {
			if !levelprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != levelprogress.FieldID {
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
		_spec.SetField(levelprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestPercentage(); ok {
		_spec.SetField(levelprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestPercentage(); ok {
		_spec.AddField(levelprogress.FieldBestPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptsCount(); ok {
		_spec.SetField(levelprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsCount(); ok {
		_spec.AddField(levelprogress.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedAt(); ok {
		_spec.SetField(levelprogress.FieldPassedAt, field.TypeTime, value)
	}
	if _u.mutation.PassedAtCleared() {
		_spec.ClearField(levelprogress.FieldPassedAt, field.TypeTime)
	}
	_node = &LevelProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
