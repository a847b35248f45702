// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavj/mathsprint/ent/powerup"
)

// PowerUpCreate is the builder for creating a PowerUp entity.
type PowerUpCreate struct {
	config
	mutation *PowerUpMutation
	hooks    []Hook
}

// SetType sets the "type" field.
func (_c *PowerUpCreate) SetType(v string) *PowerUpCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *PowerUpCreate) SetActive(v bool) *PowerUpCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PowerUpCreate) SetNillableActive(v *bool) *PowerUpCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PowerUpCreate) SetExpiresAt(v time.Time) *PowerUpCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *PowerUpCreate) SetNillableExpiresAt(v *time.Time) *PowerUpCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *PowerUpCreate) SetAcquiredAt(v time.Time) *PowerUpCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *PowerUpCreate) SetNillableAcquiredAt(v *time.Time) *PowerUpCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// Mutation returns the PowerUpMutation object of the builder.
func (_c *PowerUpCreate) Mutation() *PowerUpMutation {
	return _c.mutation
}

// Save creates the PowerUp in the database.
func (_c *PowerUpCreate) Save(ctx context.Context) (*PowerUp, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PowerUpCreate) SaveX(ctx context.Context) *PowerUp {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PowerUpCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PowerUpCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PowerUpCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := powerup.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := powerup.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PowerUpCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "PowerUp.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := powerup.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PowerUp.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PowerUp.active"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "PowerUp.acquired_at"`)}
	}
	return nil
}

func (_c *PowerUpCreate) sqlSave(ctx context.Context) (*PowerUp, error) {
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

func (_c *PowerUpCreate) createSpec() (*PowerUp, *sqlgraph.CreateSpec) {
	var (
		_node = &PowerUp{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(powerup.Table, sqlgraph.NewFieldSpec(powerup.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(powerup.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(powerup.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(powerup.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(powerup.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	return _node, _spec
}

// PowerUpCreateBulk is the builder for creating many PowerUp entities in bulk.
type PowerUpCreateBulk struct {
	config
	err      error
	builders []*PowerUpCreate
}

// Save creates the PowerUp entities in the database.
func (_c *PowerUpCreateBulk) Save(ctx context.Context) ([]*PowerUp, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PowerUp, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PowerUpMutation)
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
func (_c *PowerUpCreateBulk) SaveX(ctx context.Context) []*PowerUp {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PowerUpCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PowerUpCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
