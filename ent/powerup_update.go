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
	"github.com/arnavj/mathsprint/ent/powerup"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// PowerUpUpdate is the builder for updating PowerUp entities.
type PowerUpUpdate struct {
	config
	hooks    []Hook
	mutation *PowerUpMutation
}

// Where appends a list predicates to the PowerUpUpdate builder.
func (_u *PowerUpUpdate) Where(ps ...predicate.PowerUp) *PowerUpUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *PowerUpUpdate) SetType(v string) *PowerUpUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PowerUpUpdate) SetNillableType(v *string) *PowerUpUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PowerUpUpdate) SetActive(v bool) *PowerUpUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PowerUpUpdate) SetNillableActive(v *bool) *PowerUpUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PowerUpUpdate) SetExpiresAt(v time.Time) *PowerUpUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PowerUpUpdate) SetNillableExpiresAt(v *time.Time) *PowerUpUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *PowerUpUpdate) ClearExpiresAt() *PowerUpUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the PowerUpMutation object of the builder.
func (_u *PowerUpUpdate) Mutation() *PowerUpMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PowerUpUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PowerUpUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PowerUpUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PowerUpUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PowerUpUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := powerup.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PowerUp.type": %w`, err)}
		}
	}
	return nil
}

func (_u *PowerUpUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(powerup.Table, powerup.Columns, sqlgraph.NewFieldSpec(powerup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(powerup.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(powerup.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(powerup.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(powerup.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{powerup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PowerUpUpdateOne is the builder for updating a single PowerUp entity.
type PowerUpUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PowerUpMutation
}

// SetType sets the "type" field.
func (_u *PowerUpUpdateOne) SetType(v string) *PowerUpUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PowerUpUpdateOne) SetNillableType(v *string) *PowerUpUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PowerUpUpdateOne) SetActive(v bool) *PowerUpUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PowerUpUpdateOne) SetNillableActive(v *bool) *PowerUpUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PowerUpUpdateOne) SetExpiresAt(v time.Time) *PowerUpUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PowerUpUpdateOne) SetNillableExpiresAt(v *time.Time) *PowerUpUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *PowerUpUpdateOne) ClearExpiresAt() *PowerUpUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the PowerUpMutation object of the builder.
func (_u *PowerUpUpdateOne) Mutation() *PowerUpMutation {
	return _u.mutation
}

// Where appends a list predicates to the PowerUpUpdate builder.
func (_u *PowerUpUpdateOne) Where(ps ...predicate.PowerUp) *PowerUpUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PowerUpUpdateOne) Select(field string, fields ...string) *PowerUpUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PowerUp entity.
func (_u *PowerUpUpdateOne) Save(ctx context.Context) (*PowerUp, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PowerUpUpdateOne) SaveX(ctx context.Context) *PowerUp {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PowerUpUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PowerUpUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PowerUpUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := powerup.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PowerUp.type": %w`, err)}
		}
	}
	return nil
}

func (_u *PowerUpUpdateOne) sqlSave(ctx context.Context) (_node *PowerUp, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(powerup.Table, powerup.Columns, sqlgraph.NewFieldSpec(powerup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PowerUp.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, powerup.FieldID)
		for _, f := range fields {
			if !powerup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != powerup.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(powerup.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(powerup.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(powerup.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(powerup.FieldExpiresAt, field.TypeTime)
	}
	_node = &PowerUp{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{powerup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
