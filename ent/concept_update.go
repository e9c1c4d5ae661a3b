// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fasahat78/startege/ent/concept"
	"github.com/fasahat78/startege/ent/predicate"
)

// ConceptUpdate is the builder for updating Concept entities.
type ConceptUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdate) Where(ps ...predicate.Concept) *ConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptUpdate) SetName(v string) *ConceptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableName(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ConceptUpdate) SetCategoryID(v string) *ConceptUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableCategoryID(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetLevelNumber sets the "level_number" field.
func (_u *ConceptUpdate) SetLevelNumber(v int) *ConceptUpdate {
	_u.mutation.ResetLevelNumber()
	_u.mutation.SetLevelNumber(v)
	return _u
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableLevelNumber(v *int) *ConceptUpdate {
	if v != nil {
		_u.SetLevelNumber(*v)
	}
	return _u
}

// AddLevelNumber adds value to the "level_number" field.
func (_u *ConceptUpdate) AddLevelNumber(v int) *ConceptUpdate {
	_u.mutation.AddLevelNumber(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ConceptUpdate) SetPosition(v int) *ConceptUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillablePosition(v *int) *ConceptUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ConceptUpdate) AddPosition(v int) *ConceptUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdate) Mutation() *ConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := concept.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Concept.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelNumber(); ok {
		if err := concept.LevelNumberValidator(v); err != nil {
			return &ValidationError{Name: "level_number", err: fmt.Errorf(`ent: validator failed for field "Concept.level_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(concept.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelNumber(); ok {
		_spec.SetField(concept.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelNumber(); ok {
		_spec.AddField(concept.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(concept.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(concept.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptUpdateOne is the builder for updating a single Concept entity.
type ConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMutation
}

// SetName sets the "name" field.
func (_u *ConceptUpdateOne) SetName(v string) *ConceptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableName(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ConceptUpdateOne) SetCategoryID(v string) *ConceptUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableCategoryID(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetLevelNumber sets the "level_number" field.
func (_u *ConceptUpdateOne) SetLevelNumber(v int) *ConceptUpdateOne {
	_u.mutation.ResetLevelNumber()
	_u.mutation.SetLevelNumber(v)
	return _u
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableLevelNumber(v *int) *ConceptUpdateOne {
	if v != nil {
		_u.SetLevelNumber(*v)
	}
	return _u
}

// AddLevelNumber adds value to the "level_number" field.
func (_u *ConceptUpdateOne) AddLevelNumber(v int) *ConceptUpdateOne {
	_u.mutation.AddLevelNumber(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ConceptUpdateOne) SetPosition(v int) *ConceptUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillablePosition(v *int) *ConceptUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ConceptUpdateOne) AddPosition(v int) *ConceptUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdateOne) Mutation() *ConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdateOne) Where(ps ...predicate.Concept) *ConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptUpdateOne) Select(field string, fields ...string) *ConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Concept entity.
func (_u *ConceptUpdateOne) Save(ctx context.Context) (*Concept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdateOne) SaveX(ctx context.Context) *Concept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := concept.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Concept.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelNumber(); ok {
		if err := concept.LevelNumberValidator(v); err != nil {
			return &ValidationError{Name: "level_number", err: fmt.Errorf(`ent: validator failed for field "Concept.level_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdateOne) sqlSave(ctx context.Context) (_node *Concept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Concept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concept.FieldID)
		for _, f := range fields {
			if !concept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concept.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(concept.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelNumber(); ok {
		_spec.SetField(concept.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelNumber(); ok {
		_spec.AddField(concept.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(concept.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(concept.FieldPosition, field.TypeInt, value)
	}
	_node = &Concept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
