// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/levelprogress"
)

// LevelProgressCreate is the builder for creating a LevelProgress entity.
type LevelProgressCreate struct {
	config
	mutation *LevelProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LevelProgressCreate) SetUserID(v string) *LevelProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLevelNumber sets the "level_number" field.
func (_c *LevelProgressCreate) SetLevelNumber(v int) *LevelProgressCreate {
	_c.mutation.SetLevelNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LevelProgressCreate) SetStatus(v string) *LevelProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillableStatus(v *string) *LevelProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBestPercentage sets the "best_percentage" field.
func (_c *LevelProgressCreate) SetBestPercentage(v float64) *LevelProgressCreate {
	_c.mutation.SetBestPercentage(v)
	return _c
}

// SetNillableBestPercentage sets the "best_percentage" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillableBestPercentage(v *float64) *LevelProgressCreate {
	if v != nil {
		_c.SetBestPercentage(*v)
	}
	return _c
}

// SetAttemptsCount sets the "attempts_count" field.
func (_c *LevelProgressCreate) SetAttemptsCount(v int) *LevelProgressCreate {
	_c.mutation.SetAttemptsCount(v)
	return _c
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillableAttemptsCount(v *int) *LevelProgressCreate {
	if v != nil {
		_c.SetAttemptsCount(*v)
	}
	return _c
}

// SetPassedAt sets the "passed_at" field.
func (_c *LevelProgressCreate) SetPassedAt(v time.Time) *LevelProgressCreate {
	_c.mutation.SetPassedAt(v)
	return _c
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillablePassedAt(v *time.Time) *LevelProgressCreate {
	if v != nil {
		_c.SetPassedAt(*v)
	}
	return _c
}

// Mutation returns the LevelProgressMutation object of the builder.
func (_c *LevelProgressCreate) Mutation() *LevelProgressMutation {
	return _c.mutation
}

// Save creates the LevelProgress in the database.
func (_c *LevelProgressCreate) Save(ctx context.Context) (*LevelProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelProgressCreate) SaveX(ctx context.Context) *LevelProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := levelprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BestPercentage(); !ok {
		v := levelprogress.DefaultBestPercentage
		_c.mutation.SetBestPercentage(v)
	}
	if _, ok := _c.mutation.AttemptsCount(); !ok {
		v := levelprogress.DefaultAttemptsCount
		_c.mutation.SetAttemptsCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LevelProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := levelprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LevelNumber(); !ok {
		return &ValidationError{Name: "level_number", err: errors.New(`ent: missing required field "LevelProgress.level_number"`)}
	}
	if v, ok := _c.mutation.LevelNumber(); ok {
		if err := levelprogress.LevelNumberValidator(v); err != nil {
			return &ValidationError{Name: "level_number", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.level_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LevelProgress.status"`)}
	}
	if _, ok := _c.mutation.BestPercentage(); !ok {
		return &ValidationError{Name: "best_percentage", err: errors.New(`ent: missing required field "LevelProgress.best_percentage"`)}
	}
	if _, ok := _c.mutation.AttemptsCount(); !ok {
		return &ValidationError{Name: "attempts_count", err: errors.New(`ent: missing required field "LevelProgress.attempts_count"`)}
	}
	return nil
}

func (_c *LevelProgressCreate) sqlSave(ctx context.Context) (*LevelProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LevelProgressCreate) createSpec() (*LevelProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LevelProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(levelprogress.Table, sqlgraph.NewFieldSpec(levelprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(levelprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LevelNumber(); ok {
		_spec.SetField(levelprogress.FieldLevelNumber, field.TypeInt, value)
		_node.LevelNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(levelprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BestPercentage(); ok {
		_spec.SetField(levelprogress.FieldBestPercentage, field.TypeFloat64, value)
		_node.BestPercentage = value
	}
	if value, ok := _c.mutation.AttemptsCount(); ok {
		_spec.SetField(levelprogress.FieldAttemptsCount, field.TypeInt, value)
		_node.AttemptsCount = value
	}
	if value, ok := _c.mutation.PassedAt(); ok {
		_spec.SetField(levelprogress.FieldPassedAt, field.TypeTime, value)
		_node.PassedAt = &value
	}
	return _node, _spec
}

// LevelProgressCreateBulk is the builder for creating many LevelProgress entities in bulk.
type LevelProgressCreateBulk struct {
	config
	err      error
	builders []*LevelProgressCreate
}

// Save creates the LevelProgress entities in the database.
func (_c *LevelProgressCreateBulk) Save(ctx context.Context) ([]*LevelProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LevelProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LevelProgressCreateBulk) SaveX(ctx context.Context) []*LevelProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
