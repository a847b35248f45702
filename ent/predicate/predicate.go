// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementState is the predicate function for achievementstate builders.
type AchievementState func(*sql.Selector)

// LessonProgress is the predicate function for lessonprogress builders.
type LessonProgress func(*sql.Selector)

// PowerUp is the predicate function for powerup builders.
type PowerUp func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
