// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonProgressUpdate) SetLessonID(v string) *LessonProgressUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableLessonID(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdate) SetCompleted(v bool) *LessonProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompleted(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetStars sets the "stars" field.
func (_u *LessonProgressUpdate) SetStars(v int) *LessonProgressUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableStars(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *LessonProgressUpdate) AddStars(v int) *LessonProgressUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *LessonProgressUpdate) SetBestScore(v int) *LessonProgressUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableBestScore(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *LessonProgressUpdate) AddBestScore(v int) *LessonProgressUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *LessonProgressUpdate) SetAttempts(v int) *LessonProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableAttempts(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *LessonProgressUpdate) AddAttempts(v int) *LessonProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stars(); ok {
		if err := lessonprogress.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.stars": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BestScore(); ok {
		if err := lessonprogress.BestScoreValidator(v); err != nil {
			return &ValidationError{Name: "best_score", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.best_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := lessonprogress.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(lessonprogress.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(lessonprogress.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(lessonprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(lessonprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(lessonprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(lessonprogress.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonProgressUpdateOne) SetLessonID(v string) *LessonProgressUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableLessonID(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdateOne) SetCompleted(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompleted(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetStars sets the "stars" field.
func (_u *LessonProgressUpdateOne) SetStars(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableStars(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *LessonProgressUpdateOne) AddStars(v int) *LessonProgressUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *LessonProgressUpdateOne) SetBestScore(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableBestScore(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *LessonProgressUpdateOne) AddBestScore(v int) *LessonProgressUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *LessonProgressUpdateOne) SetAttempts(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableAttempts(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *LessonProgressUpdateOne) AddAttempts(v int) *LessonProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProgress entity.
func (_u *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stars(); ok {
		if err := lessonprogress.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.stars": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BestScore(); ok {
		if err := lessonprogress.BestScoreValidator(v); err != nil {
			return &ValidationError{Name: "best_score", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.best_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := lessonprogress.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
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
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(lessonprogress.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(lessonprogress.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(lessonprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(lessonprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(lessonprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(lessonprogress.FieldAttempts, field.TypeInt, value)
	}
	_node = &LessonProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
