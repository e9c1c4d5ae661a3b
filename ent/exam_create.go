// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/exam"
	"github.com/fasahat78/startege/ent/schema"
)

// ExamCreate is the builder for creating a Exam entity.
type ExamCreate struct {
	config
	mutation *ExamMutation
	hooks    []Hook
}

// SetExamID sets the "exam_id" field.
func (_c *ExamCreate) SetExamID(v string) *ExamCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetExamType sets the "exam_type" field.
func (_c *ExamCreate) SetExamType(v string) *ExamCreate {
	_c.mutation.SetExamType(v)
	return _c
}

// SetLevelNumber sets the "level_number" field.
func (_c *ExamCreate) SetLevelNumber(v int) *ExamCreate {
	_c.mutation.SetLevelNumber(v)
	return _c
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_c *ExamCreate) SetNillableLevelNumber(v *int) *ExamCreate {
	if v != nil {
		_c.SetLevelNumber(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *ExamCreate) SetCategoryID(v string) *ExamCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *ExamCreate) SetNillableCategoryID(v *string) *ExamCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ExamCreate) SetVersion(v int) *ExamCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ExamCreate) SetQuestions(v []schema.QuestionRecord) *ExamCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ExamCreate) SetProvider(v string) *ExamCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *ExamCreate) SetNillableProvider(v *string) *ExamCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ExamCreate) SetModel(v string) *ExamCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ExamCreate) SetNillableModel(v *string) *ExamCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_c *ExamCreate) SetGenerationAttempts(v int) *ExamCreate {
	_c.mutation.SetGenerationAttempts(v)
	return _c
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_c *ExamCreate) SetNillableGenerationAttempts(v *int) *ExamCreate {
	if v != nil {
		_c.SetGenerationAttempts(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *ExamCreate) SetGeneratedAt(v time.Time) *ExamCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableGeneratedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the ExamMutation object of the builder.
func (_c *ExamCreate) Mutation() *ExamMutation {
	return _c.mutation
}

// Save creates the Exam in the database.
func (_c *ExamCreate) Save(ctx context.Context) (*Exam, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamCreate) SaveX(ctx context.Context) *Exam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamCreate) defaults() {
	if _, ok := _c.mutation.LevelNumber(); !ok {
		v := exam.DefaultLevelNumber
		_c.mutation.SetLevelNumber(v)
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		v := exam.DefaultCategoryID
		_c.mutation.SetCategoryID(v)
	}
	if _, ok := _c.mutation.Provider(); !ok {
		v := exam.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := exam.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.GenerationAttempts(); !ok {
		v := exam.DefaultGenerationAttempts
		_c.mutation.SetGenerationAttempts(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := exam.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamCreate) check() error {
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "Exam.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := exam.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "Exam.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamType(); !ok {
		return &ValidationError{Name: "exam_type", err: errors.New(`ent: missing required field "Exam.exam_type"`)}
	}
	if v, ok := _c.mutation.ExamType(); ok {
		if err := exam.ExamTypeValidator(v); err != nil {
			return &ValidationError{Name: "exam_type", err: fmt.Errorf(`ent: validator failed for field "Exam.exam_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LevelNumber(); !ok {
		return &ValidationError{Name: "level_number", err: errors.New(`ent: missing required field "Exam.level_number"`)}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "Exam.category_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Exam.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := exam.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Exam.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "Exam.questions"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Exam.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Exam.model"`)}
	}
	if _, ok := _c.mutation.GenerationAttempts(); !ok {
		return &ValidationError{Name: "generation_attempts", err: errors.New(`ent: missing required field "Exam.generation_attempts"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "Exam.generated_at"`)}
	}
	return nil
}

func (_c *ExamCreate) sqlSave(ctx context.Context) (*Exam, error) {
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

func (_c *ExamCreate) createSpec() (*Exam, *sqlgraph.CreateSpec) {
	var (
		_node = &Exam{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exam.Table, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(exam.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.ExamType(); ok {
		_spec.SetField(exam.FieldExamType, field.TypeString, value)
		_node.ExamType = value
	}
	if value, ok := _c.mutation.LevelNumber(); ok {
		_spec.SetField(exam.FieldLevelNumber, field.TypeInt, value)
		_node.LevelNumber = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(exam.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(exam.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(exam.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(exam.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(exam.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.GenerationAttempts(); ok {
		_spec.SetField(exam.FieldGenerationAttempts, field.TypeInt, value)
		_node.GenerationAttempts = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(exam.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// ExamCreateBulk is the builder for creating many Exam entities in bulk.
type ExamCreateBulk struct {
	config
	err      error
	builders []*ExamCreate
}

// Save creates the Exam entities in the database.
func (_c *ExamCreateBulk) Save(ctx context.Context) ([]*Exam, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exam, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamMutation)
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
func (_c *ExamCreateBulk) SaveX(ctx context.Context) []*Exam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
