// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/categoryprogress"
)

// CategoryProgressCreate is the builder for creating a CategoryProgress entity.
type CategoryProgressCreate struct {
	config
	mutation *CategoryProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CategoryProgressCreate) SetUserID(v string) *CategoryProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *CategoryProgressCreate) SetCategoryID(v string) *CategoryProgressCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CategoryProgressCreate) SetStatus(v string) *CategoryProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableStatus(v *string) *CategoryProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBestPercentage sets the "best_percentage" field.
func (_c *CategoryProgressCreate) SetBestPercentage(v float64) *CategoryProgressCreate {
	_c.mutation.SetBestPercentage(v)
	return _c
}

// SetNillableBestPercentage sets the "best_percentage" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableBestPercentage(v *float64) *CategoryProgressCreate {
	if v != nil {
		_c.SetBestPercentage(*v)
	}
	return _c
}

// SetAttemptsCount sets the "attempts_count" field.
func (_c *CategoryProgressCreate) SetAttemptsCount(v int) *CategoryProgressCreate {
	_c.mutation.SetAttemptsCount(v)
	return _c
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableAttemptsCount(v *int) *CategoryProgressCreate {
	if v != nil {
		_c.SetAttemptsCount(*v)
	}
	return _c
}

// SetPassedAt sets the "passed_at" field.
func (_c *CategoryProgressCreate) SetPassedAt(v time.Time) *CategoryProgressCreate {
	_c.mutation.SetPassedAt(v)
	return _c
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillablePassedAt(v *time.Time) *CategoryProgressCreate {
	if v != nil {
		_c.SetPassedAt(*v)
	}
	return _c
}

// Mutation returns the CategoryProgressMutation object of the builder.
func (_c *CategoryProgressCreate) Mutation() *CategoryProgressMutation {
	return _c.mutation
}

// Save creates the CategoryProgress in the database.
func (_c *CategoryProgressCreate) Save(ctx context.Context) (*CategoryProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryProgressCreate) SaveX(ctx context.Context) *CategoryProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := categoryprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BestPercentage(); !ok {
		v := categoryprogress.DefaultBestPercentage
		_c.mutation.SetBestPercentage(v)
	}
	if _, ok := _c.mutation.AttemptsCount(); !ok {
		v := categoryprogress.DefaultAttemptsCount
		_c.mutation.SetAttemptsCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CategoryProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := categoryprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CategoryProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "CategoryProgress.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := categoryprogress.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "CategoryProgress.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CategoryProgress.status"`)}
	}
	if _, ok := _c.mutation.BestPercentage(); !ok {
		return &ValidationError{Name: "best_percentage", err: errors.New(`ent: missing required field "CategoryProgress.best_percentage"`)}
	}
	if _, ok := _c.mutation.AttemptsCount(); !ok {
		return &ValidationError{Name: "attempts_count", err: errors.New(`ent: missing required field "CategoryProgress.attempts_count"`)}
	}
	return nil
}

func (_c *CategoryProgressCreate) sqlSave(ctx context.Context) (*CategoryProgress, error) {
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

func (_c *CategoryProgressCreate) createSpec() (*CategoryProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categoryprogress.Table, sqlgraph.NewFieldSpec(categoryprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(categoryprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(categoryprogress.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(categoryprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BestPercentage(); ok {
		_spec.SetField(categoryprogress.FieldBestPercentage, field.TypeFloat64, value)
		_node.BestPercentage = value
	}
	if value, ok := _c.mutation.AttemptsCount(); ok {
		_spec.SetField(categoryprogress.FieldAttemptsCount, field.TypeInt, value)
		_node.AttemptsCount = value
	}
	if value, ok := _c.mutation.PassedAt(); ok {
		_spec.SetField(categoryprogress.FieldPassedAt, field.TypeTime, value)
		_node.PassedAt = &value
	}
	return _node, _spec
}

// CategoryProgressCreateBulk is the builder for creating many CategoryProgress entities in bulk.
type CategoryProgressCreateBulk struct {
	config
	err      error
	builders []*CategoryProgressCreate
}

// Save creates the CategoryProgress entities in the database.
func (_c *CategoryProgressCreateBulk) Save(ctx context.Context) ([]*CategoryProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryProgressMutation)
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
func (_c *CategoryProgressCreateBulk) SaveX(ctx context.Context) []*CategoryProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
