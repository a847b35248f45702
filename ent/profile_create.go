// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavj/mathsprint/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetUsername sets the "username" field.
func (_c *ProfileCreate) SetUsername(v string) *ProfileCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *ProfileCreate) SetXp(v int) *ProfileCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableXp(v *int) *ProfileCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetHearts sets the "hearts" field.
func (_c *ProfileCreate) SetHearts(v int) *ProfileCreate {
	_c.mutation.SetHearts(v)
	return _c
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableHearts(v *int) *ProfileCreate {
	if v != nil {
		_c.SetHearts(*v)
	}
	return _c
}

// SetMaxHearts sets the "max_hearts" field.
func (_c *ProfileCreate) SetMaxHearts(v int) *ProfileCreate {
	_c.mutation.SetMaxHearts(v)
	return _c
}

// SetNillableMaxHearts sets the "max_hearts" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableMaxHearts(v *int) *ProfileCreate {
	if v != nil {
		_c.SetMaxHearts(*v)
	}
	return _c
}

// SetCoins sets the "coins" field.
func (_c *ProfileCreate) SetCoins(v int) *ProfileCreate {
	_c.mutation.SetCoins(v)
	return _c
}

// SetNillableCoins sets the "coins" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCoins(v *int) *ProfileCreate {
	if v != nil {
		_c.SetCoins(*v)
	}
	return _c
}

// SetStreakCount sets the "streak_count" field.
func (_c *ProfileCreate) SetStreakCount(v int) *ProfileCreate {
	_c.mutation.SetStreakCount(v)
	return _c
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStreakCount(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStreakCount(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *ProfileCreate) SetLongestStreak(v int) *ProfileCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLongestStreak(v *int) *ProfileCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetLastActiveDate sets the "last_active_date" field.
func (_c *ProfileCreate) SetLastActiveDate(v time.Time) *ProfileCreate {
	_c.mutation.SetLastActiveDate(v)
	return _c
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastActiveDate(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastActiveDate(*v)
	}
	return _c
}

// SetLastHeartLoss sets the "last_heart_loss" field.
func (_c *ProfileCreate) SetLastHeartLoss(v time.Time) *ProfileCreate {
	_c.mutation.SetLastHeartLoss(v)
	return _c
}

// SetNillableLastHeartLoss sets the "last_heart_loss" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastHeartLoss(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastHeartLoss(*v)
	}
	return _c
}

// SetDailyXpGoal sets the "daily_xp_goal" field.
func (_c *ProfileCreate) SetDailyXpGoal(v int) *ProfileCreate {
	_c.mutation.SetDailyXpGoal(v)
	return _c
}

// SetNillableDailyXpGoal sets the "daily_xp_goal" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDailyXpGoal(v *int) *ProfileCreate {
	if v != nil {
		_c.SetDailyXpGoal(*v)
	}
	return _c
}

// SetDailyXpEarned sets the "daily_xp_earned" field.
func (_c *ProfileCreate) SetDailyXpEarned(v int) *ProfileCreate {
	_c.mutation.SetDailyXpEarned(v)
	return _c
}

// SetNillableDailyXpEarned sets the "daily_xp_earned" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDailyXpEarned(v *int) *ProfileCreate {
	if v != nil {
		_c.SetDailyXpEarned(*v)
	}
	return _c
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_c *ProfileCreate) SetTotalXpEarned(v int) *ProfileCreate {
	_c.mutation.SetTotalXpEarned(v)
	return _c
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTotalXpEarned(v *int) *ProfileCreate {
	if v != nil {
		_c.SetTotalXpEarned(*v)
	}
	return _c
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (_c *ProfileCreate) SetTotalLessonsCompleted(v int) *ProfileCreate {
	_c.mutation.SetTotalLessonsCompleted(v)
	return _c
}

// SetNillableTotalLessonsCompleted sets the "total_lessons_completed" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTotalLessonsCompleted(v *int) *ProfileCreate {
	if v != nil {
		_c.SetTotalLessonsCompleted(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := profile.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.Hearts(); !ok {
		v := profile.DefaultHearts
		_c.mutation.SetHearts(v)
	}
	if _, ok := _c.mutation.MaxHearts(); !ok {
		v := profile.DefaultMaxHearts
		_c.mutation.SetMaxHearts(v)
	}
	if _, ok := _c.mutation.Coins(); !ok {
		v := profile.DefaultCoins
		_c.mutation.SetCoins(v)
	}
	if _, ok := _c.mutation.StreakCount(); !ok {
		v := profile.DefaultStreakCount
		_c.mutation.SetStreakCount(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := profile.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.DailyXpGoal(); !ok {
		v := profile.DefaultDailyXpGoal
		_c.mutation.SetDailyXpGoal(v)
	}
	if _, ok := _c.mutation.DailyXpEarned(); !ok {
		v := profile.DefaultDailyXpEarned
		_c.mutation.SetDailyXpEarned(v)
	}
	if _, ok := _c.mutation.TotalXpEarned(); !ok {
		v := profile.DefaultTotalXpEarned
		_c.mutation.SetTotalXpEarned(v)
	}
	if _, ok := _c.mutation.TotalLessonsCompleted(); !ok {
		v := profile.DefaultTotalLessonsCompleted
		_c.mutation.SetTotalLessonsCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "Profile.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := profile.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Profile.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "Profile.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hearts(); !ok {
		return &ValidationError{Name: "hearts", err: errors.New(`ent: missing required field "Profile.hearts"`)}
	}
	if v, ok := _c.mutation.Hearts(); ok {
		if err := profile.HeartsValidator(v); err != nil {
			return &ValidationError{Name: "hearts", err: fmt.Errorf(`ent: validator failed for field "Profile.hearts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxHearts(); !ok {
		return &ValidationError{Name: "max_hearts", err: errors.New(`ent: missing required field "Profile.max_hearts"`)}
	}
	if v, ok := _c.mutation.MaxHearts(); ok {
		if err := profile.MaxHeartsValidator(v); err != nil {
			return &ValidationError{Name: "max_hearts", err: fmt.Errorf(`ent: validator failed for field "Profile.max_hearts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Coins(); !ok {
		return &ValidationError{Name: "coins", err: errors.New(`ent: missing required field "Profile.coins"`)}
	}
	if v, ok := _c.mutation.Coins(); ok {
		if err := profile.CoinsValidator(v); err != nil {
			return &ValidationError{Name: "coins", err: fmt.Errorf(`ent: validator failed for field "Profile.coins": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakCount(); !ok {
		return &ValidationError{Name: "streak_count", err: errors.New(`ent: missing required field "Profile.streak_count"`)}
	}
	if v, ok := _c.mutation.StreakCount(); ok {
		if err := profile.StreakCountValidator(v); err != nil {
			return &ValidationError{Name: "streak_count", err: fmt.Errorf(`ent: validator failed for field "Profile.streak_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "Profile.longest_streak"`)}
	}
	if v, ok := _c.mutation.LongestStreak(); ok {
		if err := profile.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.longest_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyXpGoal(); !ok {
		return &ValidationError{Name: "daily_xp_goal", err: errors.New(`ent: missing required field "Profile.daily_xp_goal"`)}
	}
	if v, ok := _c.mutation.DailyXpGoal(); ok {
		if err := profile.DailyXpGoalValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp_goal", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_xp_goal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyXpEarned(); !ok {
		return &ValidationError{Name: "daily_xp_earned", err: errors.New(`ent: missing required field "Profile.daily_xp_earned"`)}
	}
	if v, ok := _c.mutation.DailyXpEarned(); ok {
		if err := profile.DailyXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp_earned", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalXpEarned(); !ok {
		return &ValidationError{Name: "total_xp_earned", err: errors.New(`ent: missing required field "Profile.total_xp_earned"`)}
	}
	if v, ok := _c.mutation.TotalXpEarned(); ok {
		if err := profile.TotalXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_xp_earned", err: fmt.Errorf(`ent: validator failed for field "Profile.total_xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalLessonsCompleted(); !ok {
		return &ValidationError{Name: "total_lessons_completed", err: errors.New(`ent: missing required field "Profile.total_lessons_completed"`)}
	}
	if v, ok := _c.mutation.TotalLessonsCompleted(); ok {
		if err := profile.TotalLessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_lessons_completed", err: fmt.Errorf(`ent: validator failed for field "Profile.total_lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Hearts(); ok {
		_spec.SetField(profile.FieldHearts, field.TypeInt, value)
		_node.Hearts = value
	}
	if value, ok := _c.mutation.MaxHearts(); ok {
		_spec.SetField(profile.FieldMaxHearts, field.TypeInt, value)
		_node.MaxHearts = value
	}
	if value, ok := _c.mutation.Coins(); ok {
		_spec.SetField(profile.FieldCoins, field.TypeInt, value)
		_node.Coins = value
	}
	if value, ok := _c.mutation.StreakCount(); ok {
		_spec.SetField(profile.FieldStreakCount, field.TypeInt, value)
		_node.StreakCount = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(profile.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.LastActiveDate(); ok {
		_spec.SetField(profile.FieldLastActiveDate, field.TypeTime, value)
		_node.LastActiveDate = value
	}
	if value, ok := _c.mutation.LastHeartLoss(); ok {
		_spec.SetField(profile.FieldLastHeartLoss, field.TypeTime, value)
		_node.LastHeartLoss = value
	}
	if value, ok := _c.mutation.DailyXpGoal(); ok {
		_spec.SetField(profile.FieldDailyXpGoal, field.TypeInt, value)
		_node.DailyXpGoal = value
	}
	if value, ok := _c.mutation.DailyXpEarned(); ok {
		_spec.SetField(profile.FieldDailyXpEarned, field.TypeInt, value)
		_node.DailyXpEarned = value
	}
	if value, ok := _c.mutation.TotalXpEarned(); ok {
		_spec.SetField(profile.FieldTotalXpEarned, field.TypeInt, value)
		_node.TotalXpEarned = value
	}
	if value, ok := _c.mutation.TotalLessonsCompleted(); ok {
		_spec.SetField(profile.FieldTotalLessonsCompleted, field.TypeInt, value)
		_node.TotalLessonsCompleted = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
