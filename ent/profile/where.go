// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUsername, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldXp, v))
}

// Hearts applies equality check predicate on the "hearts" field. It's identical to HeartsEQ.
func Hearts(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHearts, v))
}

// MaxHearts applies equality check predicate on the "max_hearts" field. It's identical to MaxHeartsEQ.
func MaxHearts(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMaxHearts, v))
}

// Coins applies equality check predicate on the "coins" field. It's identical to CoinsEQ.
func Coins(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCoins, v))
}

// StreakCount applies equality check predicate on the "streak_count" field. It's identical to StreakCountEQ.
func StreakCount(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakCount, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLongestStreak, v))
}

// LastActiveDate applies equality check predicate on the "last_active_date" field. It's identical to LastActiveDateEQ.
func LastActiveDate(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastActiveDate, v))
}

// LastHeartLoss applies equality check predicate on the "last_heart_loss" field. It's identical to LastHeartLossEQ.
func LastHeartLoss(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastHeartLoss, v))
}

// DailyXpGoal applies equality check predicate on the "daily_xp_goal" field. It's identical to DailyXpGoalEQ.
func DailyXpGoal(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyXpGoal, v))
}

// DailyXpEarned applies equality check predicate on the "daily_xp_earned" field. It's identical to DailyXpEarnedEQ.
func DailyXpEarned(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyXpEarned, v))
}

// TotalXpEarned applies equality check predicate on the "total_xp_earned" field. It's identical to TotalXpEarnedEQ.
func TotalXpEarned(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalXpEarned, v))
}

// TotalLessonsCompleted applies equality check predicate on the "total_lessons_completed" field. It's identical to TotalLessonsCompletedEQ.
func TotalLessonsCompleted(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalLessonsCompleted, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUsername, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldXp, v))
}

// HeartsEQ applies the EQ predicate on the "hearts" field.
func HeartsEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHearts, v))
}

// HeartsNEQ applies the NEQ predicate on the "hearts" field.
func HeartsNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldHearts, v))
}

// HeartsIn applies the In predicate on the "hearts" field.
func HeartsIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldHearts, vs...))
}

// HeartsNotIn applies the NotIn predicate on the "hearts" field.
func HeartsNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldHearts, vs...))
}

// HeartsGT applies the GT predicate on the "hearts" field.
func HeartsGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldHearts, v))
}

// HeartsGTE applies the GTE predicate on the "hearts" field.
func HeartsGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldHearts, v))
}

// HeartsLT applies the LT predicate on the "hearts" field.
func HeartsLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldHearts, v))
}

// HeartsLTE applies the LTE predicate on the "hearts" field.
func HeartsLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldHearts, v))
}

// MaxHeartsEQ applies the EQ predicate on the "max_hearts" field.
func MaxHeartsEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMaxHearts, v))
}

// MaxHeartsNEQ applies the NEQ predicate on the "max_hearts" field.
func MaxHeartsNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldMaxHearts, v))
}

// MaxHeartsIn applies the In predicate on the "max_hearts" field.
func MaxHeartsIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldMaxHearts, vs...))
}

// MaxHeartsNotIn applies the NotIn predicate on the "max_hearts" field.
func MaxHeartsNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldMaxHearts, vs...))
}

// MaxHeartsGT applies the GT predicate on the "max_hearts" field.
func MaxHeartsGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldMaxHearts, v))
}

// MaxHeartsGTE applies the GTE predicate on the "max_hearts" field.
func MaxHeartsGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldMaxHearts, v))
}

// MaxHeartsLT applies the LT predicate on the "max_hearts" field.
func MaxHeartsLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldMaxHearts, v))
}

// MaxHeartsLTE applies the LTE predicate on the "max_hearts" field.
func MaxHeartsLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldMaxHearts, v))
}

// CoinsEQ applies the EQ predicate on the "coins" field.
func CoinsEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCoins, v))
}

// CoinsNEQ applies the NEQ predicate on the "coins" field.
func CoinsNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCoins, v))
}

// CoinsIn applies the In predicate on the "coins" field.
func CoinsIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCoins, vs...))
}

// CoinsNotIn applies the NotIn predicate on the "coins" field.
func CoinsNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCoins, vs...))
}

// CoinsGT applies the GT predicate on the "coins" field.
func CoinsGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCoins, v))
}

// CoinsGTE applies the GTE predicate on the "coins" field.
func CoinsGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCoins, v))
}

// CoinsLT applies the LT predicate on the "coins" field.
func CoinsLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCoins, v))
}

// CoinsLTE applies the LTE predicate on the "coins" field.
func CoinsLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCoins, v))
}

// StreakCountEQ applies the EQ predicate on the "streak_count" field.
func StreakCountEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakCount, v))
}

// StreakCountNEQ applies the NEQ predicate on the "streak_count" field.
func StreakCountNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreakCount, v))
}

// StreakCountIn applies the In predicate on the "streak_count" field.
func StreakCountIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreakCount, vs...))
}

// StreakCountNotIn applies the NotIn predicate on the "streak_count" field.
func StreakCountNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreakCount, vs...))
}

// StreakCountGT applies the GT predicate on the "streak_count" field.
func StreakCountGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreakCount, v))
}

// StreakCountGTE applies the GTE predicate on the "streak_count" field.
func StreakCountGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreakCount, v))
}

// StreakCountLT applies the LT predicate on the "streak_count" field.
func StreakCountLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreakCount, v))
}

// StreakCountLTE applies the LTE predicate on the "streak_count" field.
func StreakCountLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreakCount, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLongestStreak, v))
}

// LastActiveDateEQ applies the EQ predicate on the "last_active_date" field.
func LastActiveDateEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastActiveDate, v))
}

// LastActiveDateNEQ applies the NEQ predicate on the "last_active_date" field.
func LastActiveDateNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastActiveDate, v))
}

// LastActiveDateIn applies the In predicate on the "last_active_date" field.
func LastActiveDateIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastActiveDate, vs...))
}

// LastActiveDateNotIn applies the NotIn predicate on the "last_active_date" field.
func LastActiveDateNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastActiveDate, vs...))
}

// LastActiveDateGT applies the GT predicate on the "last_active_date" field.
func LastActiveDateGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastActiveDate, v))
}

// LastActiveDateGTE applies the GTE predicate on the "last_active_date" field.
func LastActiveDateGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastActiveDate, v))
}

// LastActiveDateLT applies the LT predicate on the "last_active_date" field.
func LastActiveDateLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastActiveDate, v))
}

// LastActiveDateLTE applies the LTE predicate on the "last_active_date" field.
func LastActiveDateLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastActiveDate, v))
}

// LastActiveDateIsNil applies the IsNil predicate on the "last_active_date" field.
func LastActiveDateIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLastActiveDate))
}

// LastActiveDateNotNil applies the NotNil predicate on the "last_active_date" field.
func LastActiveDateNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLastActiveDate))
}

// LastHeartLossEQ applies the EQ predicate on the "last_heart_loss" field.
func LastHeartLossEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastHeartLoss, v))
}

// LastHeartLossNEQ applies the NEQ predicate on the "last_heart_loss" field.
func LastHeartLossNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastHeartLoss, v))
}

// LastHeartLossIn applies the In predicate on the "last_heart_loss" field.
func LastHeartLossIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastHeartLoss, vs...))
}

// LastHeartLossNotIn applies the NotIn predicate on the "last_heart_loss" field.
func LastHeartLossNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastHeartLoss, vs...))
}

// LastHeartLossGT applies the GT predicate on the "last_heart_loss" field.
func LastHeartLossGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastHeartLoss, v))
}

// LastHeartLossGTE applies the GTE predicate on the "last_heart_loss" field.
func LastHeartLossGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastHeartLoss, v))
}

// LastHeartLossLT applies the LT predicate on the "last_heart_loss" field.
func LastHeartLossLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastHeartLoss, v))
}

// LastHeartLossLTE applies the LTE predicate on the "last_heart_loss" field.
func LastHeartLossLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastHeartLoss, v))
}

// LastHeartLossIsNil applies the IsNil predicate on the "last_heart_loss" field.
func LastHeartLossIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLastHeartLoss))
}

// LastHeartLossNotNil applies the NotNil predicate on the "last_heart_loss" field.
func LastHeartLossNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLastHeartLoss))
}

// DailyXpGoalEQ applies the EQ predicate on the "daily_xp_goal" field.
func DailyXpGoalEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyXpGoal, v))
}

// DailyXpGoalNEQ applies the NEQ predicate on the "daily_xp_goal" field.
func DailyXpGoalNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDailyXpGoal, v))
}

// DailyXpGoalIn applies the In predicate on the "daily_xp_goal" field.
func DailyXpGoalIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDailyXpGoal, vs...))
}

// DailyXpGoalNotIn applies the NotIn predicate on the "daily_xp_goal" field.
func DailyXpGoalNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDailyXpGoal, vs...))
}

// DailyXpGoalGT applies the GT predicate on the "daily_xp_goal" field.
func DailyXpGoalGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDailyXpGoal, v))
}

// DailyXpGoalGTE applies the GTE predicate on the "daily_xp_goal" field.
func DailyXpGoalGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDailyXpGoal, v))
}

// DailyXpGoalLT applies the LT predicate on the "daily_xp_goal" field.
func DailyXpGoalLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDailyXpGoal, v))
}

// DailyXpGoalLTE applies the LTE predicate on the "daily_xp_goal" field.
func DailyXpGoalLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDailyXpGoal, v))
}

// DailyXpEarnedEQ applies the EQ predicate on the "daily_xp_earned" field.
func DailyXpEarnedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyXpEarned, v))
}

// DailyXpEarnedNEQ applies the NEQ predicate on the "daily_xp_earned" field.
func DailyXpEarnedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDailyXpEarned, v))
}

// DailyXpEarnedIn applies the In predicate on the "daily_xp_earned" field.
func DailyXpEarnedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDailyXpEarned, vs...))
}

// DailyXpEarnedNotIn applies the NotIn predicate on the "daily_xp_earned" field.
func DailyXpEarnedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDailyXpEarned, vs...))
}

// DailyXpEarnedGT applies the GT predicate on the "daily_xp_earned" field.
func DailyXpEarnedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDailyXpEarned, v))
}

// DailyXpEarnedGTE applies the GTE predicate on the "daily_xp_earned" field.
func DailyXpEarnedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDailyXpEarned, v))
}

// DailyXpEarnedLT applies the LT predicate on the "daily_xp_earned" field.
func DailyXpEarnedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDailyXpEarned, v))
}

// DailyXpEarnedLTE applies the LTE predicate on the "daily_xp_earned" field.
func DailyXpEarnedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDailyXpEarned, v))
}

// TotalXpEarnedEQ applies the EQ predicate on the "total_xp_earned" field.
func TotalXpEarnedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalXpEarned, v))
}

// TotalXpEarnedNEQ applies the NEQ predicate on the "total_xp_earned" field.
func TotalXpEarnedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalXpEarned, v))
}

// TotalXpEarnedIn applies the In predicate on the "total_xp_earned" field.
func TotalXpEarnedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalXpEarned, vs...))
}

// TotalXpEarnedNotIn applies the NotIn predicate on the "total_xp_earned" field.
func TotalXpEarnedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalXpEarned, vs...))
}

// TotalXpEarnedGT applies the GT predicate on the "total_xp_earned" field.
func TotalXpEarnedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalXpEarned, v))
}

// TotalXpEarnedGTE applies the GTE predicate on the "total_xp_earned" field.
func TotalXpEarnedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalXpEarned, v))
}

// TotalXpEarnedLT applies the LT predicate on the "total_xp_earned" field.
func TotalXpEarnedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalXpEarned, v))
}

// TotalXpEarnedLTE applies the LTE predicate on the "total_xp_earned" field.
func TotalXpEarnedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalXpEarned, v))
}

// TotalLessonsCompletedEQ applies the EQ predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedNEQ applies the NEQ predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedIn applies the In predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalLessonsCompleted, vs...))
}

// TotalLessonsCompletedNotIn applies the NotIn predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalLessonsCompleted, vs...))
}

// TotalLessonsCompletedGT applies the GT predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedGTE applies the GTE predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedLT applies the LT predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedLTE applies the LTE predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalLessonsCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
