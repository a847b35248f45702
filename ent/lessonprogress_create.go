// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
)

// LessonProgressCreate is the builder for creating a LessonProgress entity.
type LessonProgressCreate struct {
	config
	mutation *LessonProgressMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonProgressCreate) SetLessonID(v string) *LessonProgressCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *LessonProgressCreate) SetCompleted(v bool) *LessonProgressCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompleted(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetStars sets the "stars" field.
func (_c *LessonProgressCreate) SetStars(v int) *LessonProgressCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableStars(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *LessonProgressCreate) SetBestScore(v int) *LessonProgressCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableBestScore(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *LessonProgressCreate) SetAttempts(v int) *LessonProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableAttempts(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_c *LessonProgressCreate) Mutation() *LessonProgressMutation {
	return _c.mutation
}

// Save creates the LessonProgress in the database.
func (_c *LessonProgressCreate) Save(ctx context.Context) (*LessonProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonProgressCreate) SaveX(ctx context.Context) *LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonProgressCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := lessonprogress.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Stars(); !ok {
		v := lessonprogress.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		v := lessonprogress.DefaultBestScore
		_c.mutation.SetBestScore(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := lessonprogress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonProgressCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonProgress.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "LessonProgress.completed"`)}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "LessonProgress.stars"`)}
	}
	if v, ok := _c.mutation.Stars(); ok {
		if err := lessonprogress.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.stars": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "LessonProgress.best_score"`)}
	}
	if v, ok := _c.mutation.BestScore(); ok {
		if err := lessonprogress.BestScoreValidator(v); err != nil {
			return &ValidationError{Name: "best_score", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.best_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "LessonProgress.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := lessonprogress.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.attempts": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonProgressCreate) sqlSave(ctx context.Context) (*LessonProgress, error) {
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

func (_c *LessonProgressCreate) createSpec() (*LessonProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonprogress.Table, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(lessonprogress.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(lessonprogress.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(lessonprogress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	return _node, _spec
}

// LessonProgressCreateBulk is the builder for creating many LessonProgress entities in bulk.
type LessonProgressCreateBulk struct {
	config
	err      error
	builders []*LessonProgressCreate
}

// Save creates the LessonProgress entities in the database.
func (_c *LessonProgressCreateBulk) Save(ctx context.Context) ([]*LessonProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProgressMutation)
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
func (_c *LessonProgressCreateBulk) SaveX(ctx context.Context) []*LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
