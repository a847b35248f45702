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
	"github.com/arnavj/mathsprint/ent/achievementstate"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// AchievementStateUpdate is the builder for updating AchievementState entities.
type AchievementStateUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementStateMutation
}

// Where appends a list predicates to the AchievementStateUpdate builder.
func (_u *AchievementStateUpdate) Where(ps ...predicate.AchievementState) *AchievementStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AchievementStateUpdate) SetAchievementID(v string) *AchievementStateUpdate {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AchievementStateUpdate) SetNillableAchievementID(v *string) *AchievementStateUpdate {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AchievementStateUpdate) SetProgress(v int) *AchievementStateUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AchievementStateUpdate) SetNillableProgress(v *int) *AchievementStateUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AchievementStateUpdate) AddProgress(v int) *AchievementStateUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *AchievementStateUpdate) SetUnlocked(v bool) *AchievementStateUpdate {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *AchievementStateUpdate) SetNillableUnlocked(v *bool) *AchievementStateUpdate {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *AchievementStateUpdate) SetUnlockedAt(v time.Time) *AchievementStateUpdate {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *AchievementStateUpdate) SetNillableUnlockedAt(v *time.Time) *AchievementStateUpdate {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *AchievementStateUpdate) ClearUnlockedAt() *AchievementStateUpdate {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the AchievementStateMutation object of the builder.
func (_u *AchievementStateUpdate) Mutation() *AchievementStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementStateUpdate) check() error {
	if v, ok := _u.mutation.AchievementID(); ok {
		if err := achievementstate.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementState.achievement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := achievementstate.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AchievementState.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementstate.Table, achievementstate.Columns, sqlgraph.NewFieldSpec(achievementstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(achievementstate.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(achievementstate.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(achievementstate.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(achievementstate.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(achievementstate.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(achievementstate.FieldUnlockedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementStateUpdateOne is the builder for updating a single AchievementState entity.
type AchievementStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementStateMutation
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AchievementStateUpdateOne) SetAchievementID(v string) *AchievementStateUpdateOne {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AchievementStateUpdateOne) SetNillableAchievementID(v *string) *AchievementStateUpdateOne {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AchievementStateUpdateOne) SetProgress(v int) *AchievementStateUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AchievementStateUpdateOne) SetNillableProgress(v *int) *AchievementStateUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AchievementStateUpdateOne) AddProgress(v int) *AchievementStateUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *AchievementStateUpdateOne) SetUnlocked(v bool) *AchievementStateUpdateOne {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *AchievementStateUpdateOne) SetNillableUnlocked(v *bool) *AchievementStateUpdateOne {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *AchievementStateUpdateOne) SetUnlockedAt(v time.Time) *AchievementStateUpdateOne {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *AchievementStateUpdateOne) SetNillableUnlockedAt(v *time.Time) *AchievementStateUpdateOne {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *AchievementStateUpdateOne) ClearUnlockedAt() *AchievementStateUpdateOne {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the AchievementStateMutation object of the builder.
func (_u *AchievementStateUpdateOne) Mutation() *AchievementStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementStateUpdate builder.
func (_u *AchievementStateUpdateOne) Where(ps ...predicate.AchievementState) *AchievementStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementStateUpdateOne) Select(field string, fields ...string) *AchievementStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AchievementState entity.
func (_u *AchievementStateUpdateOne) Save(ctx context.Context) (*AchievementState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementStateUpdateOne) SaveX(ctx context.Context) *AchievementState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementStateUpdateOne) check() error {
	if v, ok := _u.mutation.AchievementID(); ok {
		if err := achievementstate.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementState.achievement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := achievementstate.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AchievementState.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementStateUpdateOne) sqlSave(ctx context.Context) (_node *AchievementState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementstate.Table, achievementstate.Columns, sqlgraph.NewFieldSpec(achievementstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AchievementState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievementstate.FieldID)
		for _, f := range fields {
			if !achievementstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievementstate.FieldID {
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
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(achievementstate.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(achievementstate.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(achievementstate.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(achievementstate.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(achievementstate.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(achievementstate.FieldUnlockedAt, field.TypeTime)
	}
	_node = &AchievementState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
