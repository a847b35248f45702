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
	"github.com/arnavj/mathsprint/ent/predicate"
	"github.com/arnavj/mathsprint/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ProfileUpdate) SetUsername(v string) *ProfileUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUsername(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdate) SetXp(v int) *ProfileUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdate) AddXp(v int) *ProfileUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetHearts sets the "hearts" field.
func (_u *ProfileUpdate) SetHearts(v int) *ProfileUpdate {
	_u.mutation.ResetHearts()
	_u.mutation.SetHearts(v)
	return _u
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableHearts(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetHearts(*v)
	}
	return _u
}

// AddHearts adds value to the "hearts" field.
func (_u *ProfileUpdate) AddHearts(v int) *ProfileUpdate {
	_u.mutation.AddHearts(v)
	return _u
}

// SetMaxHearts sets the "max_hearts" field.
func (_u *ProfileUpdate) SetMaxHearts(v int) *ProfileUpdate {
	_u.mutation.ResetMaxHearts()
	_u.mutation.SetMaxHearts(v)
	return _u
}

// SetNillableMaxHearts sets the "max_hearts" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableMaxHearts(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetMaxHearts(*v)
	}
	return _u
}

// AddMaxHearts adds value to the "max_hearts" field.
func (_u *ProfileUpdate) AddMaxHearts(v int) *ProfileUpdate {
	_u.mutation.AddMaxHearts(v)
	return _u
}

// SetCoins sets the "coins" field.
func (_u *ProfileUpdate) SetCoins(v int) *ProfileUpdate {
	_u.mutation.ResetCoins()
	_u.mutation.SetCoins(v)
	return _u
}

// SetNillableCoins sets the "coins" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCoins(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetCoins(*v)
	}
	return _u
}

// AddCoins adds value to the "coins" field.
func (_u *ProfileUpdate) AddCoins(v int) *ProfileUpdate {
	_u.mutation.AddCoins(v)
	return _u
}

// SetStreakCount sets the "streak_count" field.
func (_u *ProfileUpdate) SetStreakCount(v int) *ProfileUpdate {
	_u.mutation.ResetStreakCount()
	_u.mutation.SetStreakCount(v)
	return _u
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreakCount(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreakCount(*v)
	}
	return _u
}

// AddStreakCount adds value to the "streak_count" field.
func (_u *ProfileUpdate) AddStreakCount(v int) *ProfileUpdate {
	_u.mutation.AddStreakCount(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *ProfileUpdate) SetLongestStreak(v int) *ProfileUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLongestStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *ProfileUpdate) AddLongestStreak(v int) *ProfileUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *ProfileUpdate) SetLastActiveDate(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastActiveDate(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// ClearLastActiveDate clears the value of the "last_active_date" field.
func (_u *ProfileUpdate) ClearLastActiveDate() *ProfileUpdate {
	_u.mutation.ClearLastActiveDate()
	return _u
}

// SetLastHeartLoss sets the "last_heart_loss" field.
func (_u *ProfileUpdate) SetLastHeartLoss(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastHeartLoss(v)
	return _u
}

// SetNillableLastHeartLoss sets the "last_heart_loss" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastHeartLoss(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastHeartLoss(*v)
	}
	return _u
}

// ClearLastHeartLoss clears the value of the "last_heart_loss" field.
func (_u *ProfileUpdate) ClearLastHeartLoss() *ProfileUpdate {
	_u.mutation.ClearLastHeartLoss()
	return _u
}

// SetDailyXpGoal sets the "daily_xp_goal" field.
func (_u *ProfileUpdate) SetDailyXpGoal(v int) *ProfileUpdate {
	_u.mutation.ResetDailyXpGoal()
	_u.mutation.SetDailyXpGoal(v)
	return _u
}

// SetNillableDailyXpGoal sets the "daily_xp_goal" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDailyXpGoal(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetDailyXpGoal(*v)
	}
	return _u
}

// AddDailyXpGoal adds value to the "daily_xp_goal" field.
func (_u *ProfileUpdate) AddDailyXpGoal(v int) *ProfileUpdate {
	_u.mutation.AddDailyXpGoal(v)
	return _u
}

// SetDailyXpEarned sets the "daily_xp_earned" field.
func (_u *ProfileUpdate) SetDailyXpEarned(v int) *ProfileUpdate {
	_u.mutation.ResetDailyXpEarned()
	_u.mutation.SetDailyXpEarned(v)
	return _u
}

// SetNillableDailyXpEarned sets the "daily_xp_earned" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDailyXpEarned(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetDailyXpEarned(*v)
	}
	return _u
}

// AddDailyXpEarned adds value to the "daily_xp_earned" field.
func (_u *ProfileUpdate) AddDailyXpEarned(v int) *ProfileUpdate {
	_u.mutation.AddDailyXpEarned(v)
	return _u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_u *ProfileUpdate) SetTotalXpEarned(v int) *ProfileUpdate {
	_u.mutation.ResetTotalXpEarned()
	_u.mutation.SetTotalXpEarned(v)
	return _u
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalXpEarned(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalXpEarned(*v)
	}
	return _u
}

// AddTotalXpEarned adds value to the "total_xp_earned" field.
func (_u *ProfileUpdate) AddTotalXpEarned(v int) *ProfileUpdate {
	_u.mutation.AddTotalXpEarned(v)
	return _u
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (_u *ProfileUpdate) SetTotalLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.ResetTotalLessonsCompleted()
	_u.mutation.SetTotalLessonsCompleted(v)
	return _u
}

// SetNillableTotalLessonsCompleted sets the "total_lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalLessonsCompleted(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalLessonsCompleted(*v)
	}
	return _u
}

// AddTotalLessonsCompleted adds value to the "total_lessons_completed" field.
func (_u *ProfileUpdate) AddTotalLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.AddTotalLessonsCompleted(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := profile.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Profile.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hearts(); ok {
		if err := profile.HeartsValidator(v); err != nil {
			return &ValidationError{Name: "hearts", err: fmt.Errorf(`ent: validator failed for field "Profile.hearts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxHearts(); ok {
		if err := profile.MaxHeartsValidator(v); err != nil {
			return &ValidationError{Name: "max_hearts", err: fmt.Errorf(`ent: validator failed for field "Profile.max_hearts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Coins(); ok {
		if err := profile.CoinsValidator(v); err != nil {
			return &ValidationError{Name: "coins", err: fmt.Errorf(`ent: validator failed for field "Profile.coins": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakCount(); ok {
		if err := profile.StreakCountValidator(v); err != nil {
			return &ValidationError{Name: "streak_count", err: fmt.Errorf(`ent: validator failed for field "Profile.streak_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := profile.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.longest_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyXpGoal(); ok {
		if err := profile.DailyXpGoalValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp_goal", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_xp_goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyXpEarned(); ok {
		if err := profile.DailyXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp_earned", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXpEarned(); ok {
		if err := profile.TotalXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_xp_earned", err: fmt.Errorf(`ent: validator failed for field "Profile.total_xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLessonsCompleted(); ok {
		if err := profile.TotalLessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_lessons_completed", err: fmt.Errorf(`ent: validator failed for field "Profile.total_lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hearts(); ok {
		_spec.SetField(profile.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHearts(); ok {
		_spec.AddField(profile.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxHearts(); ok {
		_spec.SetField(profile.FieldMaxHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHearts(); ok {
		_spec.AddField(profile.FieldMaxHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Coins(); ok {
		_spec.SetField(profile.FieldCoins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoins(); ok {
		_spec.AddField(profile.FieldCoins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCount(); ok {
		_spec.SetField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCount(); ok {
		_spec.AddField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(profile.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(profile.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(profile.FieldLastActiveDate, field.TypeTime, value)
	}
	if _u.mutation.LastActiveDateCleared() {
		_spec.ClearField(profile.FieldLastActiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartLoss(); ok {
		_spec.SetField(profile.FieldLastHeartLoss, field.TypeTime, value)
	}
	if _u.mutation.LastHeartLossCleared() {
		_spec.ClearField(profile.FieldLastHeartLoss, field.TypeTime)
	}
	if value, ok := _u.mutation.DailyXpGoal(); ok {
		_spec.SetField(profile.FieldDailyXpGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXpGoal(); ok {
		_spec.AddField(profile.FieldDailyXpGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyXpEarned(); ok {
		_spec.SetField(profile.FieldDailyXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXpEarned(); ok {
		_spec.AddField(profile.FieldDailyXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXpEarned(); ok {
		_spec.SetField(profile.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpEarned(); ok {
		_spec.AddField(profile.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLessonsCompleted(); ok {
		_spec.SetField(profile.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLessonsCompleted(); ok {
		_spec.AddField(profile.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUsername sets the "username" field.
func (_u *ProfileUpdateOne) SetUsername(v string) *ProfileUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUsername(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdateOne) SetXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdateOne) AddXp(v int) *ProfileUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetHearts sets the "hearts" field.
func (_u *ProfileUpdateOne) SetHearts(v int) *ProfileUpdateOne {
	_u.mutation.ResetHearts()
	_u.mutation.SetHearts(v)
	return _u
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableHearts(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetHearts(*v)
	}
	return _u
}

// AddHearts adds value to the "hearts" field.
func (_u *ProfileUpdateOne) AddHearts(v int) *ProfileUpdateOne {
	_u.mutation.AddHearts(v)
	return _u
}

// SetMaxHearts sets the "max_hearts" field.
func (_u *ProfileUpdateOne) SetMaxHearts(v int) *ProfileUpdateOne {
	_u.mutation.ResetMaxHearts()
	_u.mutation.SetMaxHearts(v)
	return _u
}

// SetNillableMaxHearts sets the "max_hearts" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableMaxHearts(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetMaxHearts(*v)
	}
	return _u
}

// AddMaxHearts adds value to the "max_hearts" field.
func (_u *ProfileUpdateOne) AddMaxHearts(v int) *ProfileUpdateOne {
	_u.mutation.AddMaxHearts(v)
	return _u
}

// SetCoins sets the "coins" field.
func (_u *ProfileUpdateOne) SetCoins(v int) *ProfileUpdateOne {
	_u.mutation.ResetCoins()
	_u.mutation.SetCoins(v)
	return _u
}

// SetNillableCoins sets the "coins" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCoins(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetCoins(*v)
	}
	return _u
}

// AddCoins adds value to the "coins" field.
func (_u *ProfileUpdateOne) AddCoins(v int) *ProfileUpdateOne {
	_u.mutation.AddCoins(v)
	return _u
}

// SetStreakCount sets the "streak_count" field.
func (_u *ProfileUpdateOne) SetStreakCount(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreakCount()
	_u.mutation.SetStreakCount(v)
	return _u
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreakCount(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreakCount(*v)
	}
	return _u
}

// AddStreakCount adds value to the "streak_count" field.
func (_u *ProfileUpdateOne) AddStreakCount(v int) *ProfileUpdateOne {
	_u.mutation.AddStreakCount(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *ProfileUpdateOne) SetLongestStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLongestStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *ProfileUpdateOne) AddLongestStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *ProfileUpdateOne) SetLastActiveDate(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastActiveDate(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// ClearLastActiveDate clears the value of the "last_active_date" field.
func (_u *ProfileUpdateOne) ClearLastActiveDate() *ProfileUpdateOne {
	_u.mutation.ClearLastActiveDate()
	return _u
}

// SetLastHeartLoss sets the "last_heart_loss" field.
func (_u *ProfileUpdateOne) SetLastHeartLoss(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastHeartLoss(v)
	return _u
}

// SetNillableLastHeartLoss sets the "last_heart_loss" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastHeartLoss(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastHeartLoss(*v)
	}
	return _u
}

// ClearLastHeartLoss clears the value of the "last_heart_loss" field.
func (_u *ProfileUpdateOne) ClearLastHeartLoss() *ProfileUpdateOne {
	_u.mutation.ClearLastHeartLoss()
	return _u
}

// SetDailyXpGoal sets the "daily_xp_goal" field.
func (_u *ProfileUpdateOne) SetDailyXpGoal(v int) *ProfileUpdateOne {
	_u.mutation.ResetDailyXpGoal()
	_u.mutation.SetDailyXpGoal(v)
	return _u
}

// SetNillableDailyXpGoal sets the "daily_xp_goal" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDailyXpGoal(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetDailyXpGoal(*v)
	}
	return _u
}

// AddDailyXpGoal adds value to the "daily_xp_goal" field.
func (_u *ProfileUpdateOne) AddDailyXpGoal(v int) *ProfileUpdateOne {
	_u.mutation.AddDailyXpGoal(v)
	return _u
}

// SetDailyXpEarned sets the "daily_xp_earned" field.
func (_u *ProfileUpdateOne) SetDailyXpEarned(v int) *ProfileUpdateOne {
	_u.mutation.ResetDailyXpEarned()
	_u.mutation.SetDailyXpEarned(v)
	return _u
}

// SetNillableDailyXpEarned sets the "daily_xp_earned" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDailyXpEarned(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetDailyXpEarned(*v)
	}
	return _u
}

// AddDailyXpEarned adds value to the "daily_xp_earned" field.
func (_u *ProfileUpdateOne) AddDailyXpEarned(v int) *ProfileUpdateOne {
	_u.mutation.AddDailyXpEarned(v)
	return _u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_u *ProfileUpdateOne) SetTotalXpEarned(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalXpEarned()
	_u.mutation.SetTotalXpEarned(v)
	return _u
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalXpEarned(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalXpEarned(*v)
	}
	return _u
}

// AddTotalXpEarned adds value to the "total_xp_earned" field.
func (_u *ProfileUpdateOne) AddTotalXpEarned(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalXpEarned(v)
	return _u
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (_u *ProfileUpdateOne) SetTotalLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalLessonsCompleted()
	_u.mutation.SetTotalLessonsCompleted(v)
	return _u
}

// SetNillableTotalLessonsCompleted sets the "total_lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalLessonsCompleted(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalLessonsCompleted(*v)
	}
	return _u
}

// AddTotalLessonsCompleted adds value to the "total_lessons_completed" field.
func (_u *ProfileUpdateOne) AddTotalLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalLessonsCompleted(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := profile.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Profile.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hearts(); ok {
		if err := profile.HeartsValidator(v); err != nil {
			return &ValidationError{Name: "hearts", err: fmt.Errorf(`ent: validator failed for field "Profile.hearts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxHearts(); ok {
		if err := profile.MaxHeartsValidator(v); err != nil {
			return &ValidationError{Name: "max_hearts", err: fmt.Errorf(`ent: validator failed for field "Profile.max_hearts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Coins(); ok {
		if err := profile.CoinsValidator(v); err != nil {
			return &ValidationError{Name: "coins", err: fmt.Errorf(`ent: validator failed for field "Profile.coins": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakCount(); ok {
		if err := profile.StreakCountValidator(v); err != nil {
			return &ValidationError{Name: "streak_count", err: fmt.Errorf(`ent: validator failed for field "Profile.streak_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := profile.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.longest_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyXpGoal(); ok {
		if err := profile.DailyXpGoalValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp_goal", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_xp_goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyXpEarned(); ok {
		if err := profile.DailyXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp_earned", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXpEarned(); ok {
		if err := profile.TotalXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_xp_earned", err: fmt.Errorf(`ent: validator failed for field "Profile.total_xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLessonsCompleted(); ok {
		if err := profile.TotalLessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_lessons_completed", err: fmt.Errorf(`ent: validator failed for field "Profile.total_lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hearts(); ok {
		_spec.SetField(profile.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHearts(); ok {
		_spec.AddField(profile.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxHearts(); ok {
		_spec.SetField(profile.FieldMaxHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHearts(); ok {
		_spec.AddField(profile.FieldMaxHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Coins(); ok {
		_spec.SetField(profile.FieldCoins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoins(); ok {
		_spec.AddField(profile.FieldCoins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCount(); ok {
		_spec.SetField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCount(); ok {
		_spec.AddField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(profile.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(profile.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(profile.FieldLastActiveDate, field.TypeTime, value)
	}
	if _u.mutation.LastActiveDateCleared() {
		_spec.ClearField(profile.FieldLastActiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartLoss(); ok {
		_spec.SetField(profile.FieldLastHeartLoss, field.TypeTime, value)
	}
	if _u.mutation.LastHeartLossCleared() {
		_spec.ClearField(profile.FieldLastHeartLoss, field.TypeTime)
	}
	if value, ok := _u.mutation.DailyXpGoal(); ok {
		_spec.SetField(profile.FieldDailyXpGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXpGoal(); ok {
		_spec.AddField(profile.FieldDailyXpGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyXpEarned(); ok {
		_spec.SetField(profile.FieldDailyXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXpEarned(); ok {
		_spec.AddField(profile.FieldDailyXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXpEarned(); ok {
		_spec.SetField(profile.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpEarned(); ok {
		_spec.AddField(profile.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLessonsCompleted(); ok {
		_spec.SetField(profile.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLessonsCompleted(); ok {
		_spec.AddField(profile.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
