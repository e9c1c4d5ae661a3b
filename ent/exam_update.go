// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/exam"
	"github.com/fasahat78/startege/ent/predicate"
	"github.com/fasahat78/startege/ent/schema"
)

// ExamUpdate is the builder for updating Exam entities.
type ExamUpdate struct {
	config
	hooks    []Hook
	mutation *ExamMutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdate) Where(ps ...predicate.Exam) *ExamUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamType sets the "exam_type" field.
func (_u *ExamUpdate) SetExamType(v string) *ExamUpdate {
	_u.mutation.SetExamType(v)
	return _u
}

// SetNillableExamType sets the "exam_type" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableExamType(v *string) *ExamUpdate {
	if v != nil {
		_u.SetExamType(*v)
	}
	return _u
}

// SetLevelNumber sets the "level_number" field.
func (_u *ExamUpdate) SetLevelNumber(v int) *ExamUpdate {
	_u.mutation.ResetLevelNumber()
	_u.mutation.SetLevelNumber(v)
	return _u
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableLevelNumber(v *int) *ExamUpdate {
	if v != nil {
		_u.SetLevelNumber(*v)
	}
	return _u
}

// AddLevelNumber adds value to the "level_number" field.
func (_u *ExamUpdate) AddLevelNumber(v int) *ExamUpdate {
	_u.mutation.AddLevelNumber(v)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ExamUpdate) SetCategoryID(v string) *ExamUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableCategoryID(v *string) *ExamUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExamUpdate) SetVersion(v int) *ExamUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableVersion(v *int) *ExamUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ExamUpdate) AddVersion(v int) *ExamUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ExamUpdate) SetQuestions(v []schema.QuestionRecord) *ExamUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ExamUpdate) AppendQuestions(v []schema.QuestionRecord) *ExamUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExamUpdate) SetProvider(v string) *ExamUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableProvider(v *string) *ExamUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ExamUpdate) SetModel(v string) *ExamUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableModel(v *string) *ExamUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_u *ExamUpdate) SetGenerationAttempts(v int) *ExamUpdate {
	_u.mutation.ResetGenerationAttempts()
	_u.mutation.SetGenerationAttempts(v)
	return _u
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableGenerationAttempts(v *int) *ExamUpdate {
	if v != nil {
		_u.SetGenerationAttempts(*v)
	}
	return _u
}

// AddGenerationAttempts adds value to the "generation_attempts" field.
func (_u *ExamUpdate) AddGenerationAttempts(v int) *ExamUpdate {
	_u.mutation.AddGenerationAttempts(v)
	return _u
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdate) Mutation() *ExamMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdate) check() error {
	if v, ok := _u.mutation.ExamType(); ok {
		if err := exam.ExamTypeValidator(v); err != nil {
			return &ValidationError{Name: "exam_type", err: fmt.Errorf(`ent: validator failed for field "Exam.exam_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := exam.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Exam.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamType(); ok {
		_spec.SetField(exam.FieldExamType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelNumber(); ok {
		_spec.SetField(exam.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelNumber(); ok {
		_spec.AddField(exam.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(exam.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(exam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(exam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(exam.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exam.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(exam.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(exam.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenerationAttempts(); ok {
		_spec.SetField(exam.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationAttempts(); ok {
		_spec.AddField(exam.FieldGenerationAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamUpdateOne is the builder for updating a single Exam entity.
type ExamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamMutation
}

// SetExamType sets the "exam_type" field.
func (_u *ExamUpdateOne) SetExamType(v string) *ExamUpdateOne {
	_u.mutation.SetExamType(v)
	return _u
}

// SetNillableExamType sets the "exam_type" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableExamType(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetExamType(*v)
	}
	return _u
}

// SetLevelNumber sets the "level_number" field.
func (_u *ExamUpdateOne) SetLevelNumber(v int) *ExamUpdateOne {
	_u.mutation.ResetLevelNumber()
	_u.mutation.SetLevelNumber(v)
	return _u
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableLevelNumber(v *int) *ExamUpdateOne {
	if v != nil {
		_u.SetLevelNumber(*v)
	}
	return _u
}

// AddLevelNumber adds value to the "level_number" field.
func (_u *ExamUpdateOne) AddLevelNumber(v int) *ExamUpdateOne {
	_u.mutation.AddLevelNumber(v)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ExamUpdateOne) SetCategoryID(v string) *ExamUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableCategoryID(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExamUpdateOne) SetVersion(v int) *ExamUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableVersion(v *int) *ExamUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ExamUpdateOne) AddVersion(v int) *ExamUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ExamUpdateOne) SetQuestions(v []schema.QuestionRecord) *ExamUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ExamUpdateOne) AppendQuestions(v []schema.QuestionRecord) *ExamUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExamUpdateOne) SetProvider(v string) *ExamUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableProvider(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ExamUpdateOne) SetModel(v string) *ExamUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableModel(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_u *ExamUpdateOne) SetGenerationAttempts(v int) *ExamUpdateOne {
	_u.mutation.ResetGenerationAttempts()
	_u.mutation.SetGenerationAttempts(v)
	return _u
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableGenerationAttempts(v *int) *ExamUpdateOne {
	if v != nil {
		_u.SetGenerationAttempts(*v)
	}
	return _u
}

// AddGenerationAttempts adds value to the "generation_attempts" field.
func (_u *ExamUpdateOne) AddGenerationAttempts(v int) *ExamUpdateOne {
	_u.mutation.AddGenerationAttempts(v)
	return _u
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdateOne) Mutation() *ExamMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdateOne) Where(ps ...predicate.Exam) *ExamUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamUpdateOne) Select(field string, fields ...string) *ExamUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exam entity.
func (_u *ExamUpdateOne) Save(ctx context.Context) (*Exam, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdateOne) SaveX(ctx context.Context) *Exam {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdateOne) check() error {
	if v, ok := _u.mutation.ExamType(); ok {
		if err := exam.ExamTypeValidator(v); err != nil {
			return &ValidationError{Name: "exam_type", err: fmt.Errorf(`ent: validator failed for field "Exam.exam_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := exam.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Exam.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdateOne) sqlSave(ctx context.Context) (_node *Exam, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exam.FieldID)
		for _, f := range fields {
			if !exam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exam.FieldID {
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
	if value, ok := _u.mutation.ExamType(); ok {
		_spec.SetField(exam.FieldExamType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelNumber(); ok {
		_spec.SetField(exam.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelNumber(); ok {
		_spec.AddField(exam.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(exam.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(exam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(exam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(exam.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exam.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(exam.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(exam.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenerationAttempts(); ok {
		_spec.SetField(exam.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationAttempts(); ok {
		_spec.AddField(exam.FieldGenerationAttempts, field.TypeInt, value)
	}
	_node = &Exam{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
