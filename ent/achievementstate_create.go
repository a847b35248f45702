// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavj/mathsprint/ent/achievementstate"
)

// AchievementStateCreate is the builder for creating a AchievementState entity.
type AchievementStateCreate struct {
	config
	mutation *AchievementStateMutation
	hooks    []Hook
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AchievementStateCreate) SetAchievementID(v string) *AchievementStateCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *AchievementStateCreate) SetProgress(v int) *AchievementStateCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *AchievementStateCreate) SetNillableProgress(v *int) *AchievementStateCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetUnlocked sets the "unlocked" field.
func (_c *AchievementStateCreate) SetUnlocked(v bool) *AchievementStateCreate {
	_c.mutation.SetUnlocked(v)
	return _c
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_c *AchievementStateCreate) SetNillableUnlocked(v *bool) *AchievementStateCreate {
	if v != nil {
		_c.SetUnlocked(*v)
	}
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *AchievementStateCreate) SetUnlockedAt(v time.Time) *AchievementStateCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *AchievementStateCreate) SetNillableUnlockedAt(v *time.Time) *AchievementStateCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// Mutation returns the AchievementStateMutation object of the builder.
func (_c *AchievementStateCreate) Mutation() *AchievementStateMutation {
	return _c.mutation
}

// Save creates the AchievementState in the database.
func (_c *AchievementStateCreate) Save(ctx context.Context) (*AchievementState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementStateCreate) SaveX(ctx context.Context) *AchievementState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementStateCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := achievementstate.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		v := achievementstate.DefaultUnlocked
		_c.mutation.SetUnlocked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementStateCreate) check() error {
	if _, ok := _c.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "AchievementState.achievement_id"`)}
	}
	if v, ok := _c.mutation.AchievementID(); ok {
		if err := achievementstate.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementState.achievement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "AchievementState.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := achievementstate.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AchievementState.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		return &ValidationError{Name: "unlocked", err: errors.New(`ent: missing required field "AchievementState.unlocked"`)}
	}
	return nil
}

func (_c *AchievementStateCreate) sqlSave(ctx context.Context) (*AchievementState, error) {
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

func (_c *AchievementStateCreate) createSpec() (*AchievementState, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementstate.Table, sqlgraph.NewFieldSpec(achievementstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(achievementstate.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(achievementstate.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Unlocked(); ok {
		_spec.SetField(achievementstate.FieldUnlocked, field.TypeBool, value)
		_node.Unlocked = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(achievementstate.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	return _node, _spec
}

// AchievementStateCreateBulk is the builder for creating many AchievementState entities in bulk.
type AchievementStateCreateBulk struct {
	config
	err      error
	builders []*AchievementStateCreate
}

// Save creates the AchievementState entities in the database.
func (_c *AchievementStateCreateBulk) Save(ctx context.Context) ([]*AchievementState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementStateMutation)
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
func (_c *AchievementStateCreateBulk) SaveX(ctx context.Context) []*AchievementState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
