// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/examattempt"
	"github.com/fasahat78/startege/ent/schema"
)

// ExamAttemptCreate is the builder for creating a ExamAttempt entity.
type ExamAttemptCreate struct {
	config
	mutation *ExamAttemptMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ExamAttemptCreate) SetAttemptID(v string) *ExamAttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExamAttemptCreate) SetUserID(v string) *ExamAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *ExamAttemptCreate) SetExamID(v string) *ExamAttemptCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ExamAttemptCreate) SetAttemptNumber(v int) *ExamAttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *ExamAttemptCreate) SetAnswers(v []schema.AnswerRecord) *ExamAttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExamAttemptCreate) SetScore(v float64) *ExamAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableScore(v *float64) *ExamAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *ExamAttemptCreate) SetPercentage(v float64) *ExamAttemptCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillablePercentage(v *float64) *ExamAttemptCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetPass sets the "pass" field.
func (_c *ExamAttemptCreate) SetPass(v bool) *ExamAttemptCreate {
	_c.mutation.SetPass(v)
	return _c
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillablePass(v *bool) *ExamAttemptCreate {
	if v != nil {
		_c.SetPass(*v)
	}
	return _c
}

// SetWeakConceptIds sets the "weak_concept_ids" field.
func (_c *ExamAttemptCreate) SetWeakConceptIds(v []string) *ExamAttemptCreate {
	_c.mutation.SetWeakConceptIds(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExamAttemptCreate) SetStartedAt(v time.Time) *ExamAttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableStartedAt(v *time.Time) *ExamAttemptCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ExamAttemptCreate) SetSubmittedAt(v time.Time) *ExamAttemptCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableSubmittedAt(v *time.Time) *ExamAttemptCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_c *ExamAttemptCreate) Mutation() *ExamAttemptMutation {
	return _c.mutation
}

// Save creates the ExamAttempt in the database.
func (_c *ExamAttemptCreate) Save(ctx context.Context) (*ExamAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamAttemptCreate) SaveX(ctx context.Context) *ExamAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamAttemptCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := examattempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := examattempt.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.Pass(); !ok {
		v := examattempt.DefaultPass
		_c.mutation.SetPass(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := examattempt.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamAttemptCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ExamAttempt.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := examattempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExamAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := examattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "ExamAttempt.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := examattempt.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ExamAttempt.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := examattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExamAttempt.score"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "ExamAttempt.percentage"`)}
	}
	if _, ok := _c.mutation.Pass(); !ok {
		return &ValidationError{Name: "pass", err: errors.New(`ent: missing required field "ExamAttempt.pass"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExamAttempt.started_at"`)}
	}
	return nil
}

func (_c *ExamAttemptCreate) sqlSave(ctx context.Context) (*ExamAttempt, error) {
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

func (_c *ExamAttemptCreate) createSpec() (*ExamAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examattempt.Table, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(examattempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(examattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(examattempt.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(examattempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(examattempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(examattempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(examattempt.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Pass(); ok {
		_spec.SetField(examattempt.FieldPass, field.TypeBool, value)
		_node.Pass = value
	}
	if value, ok := _c.mutation.WeakConceptIds(); ok {
		_spec.SetField(examattempt.FieldWeakConceptIds, field.TypeJSON, value)
		_node.WeakConceptIds = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(examattempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(examattempt.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	return _node, _spec
}

// ExamAttemptCreateBulk is the builder for creating many ExamAttempt entities in bulk.
type ExamAttemptCreateBulk struct {
	config
	err      error
	builders []*ExamAttemptCreate
}

// Save creates the ExamAttempt entities in the database.
func (_c *ExamAttemptCreateBulk) Save(ctx context.Context) ([]*ExamAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamAttemptMutation)
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
func (_c *ExamAttemptCreateBulk) SaveX(ctx context.Context) []*ExamAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
