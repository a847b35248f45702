// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementStatesColumns holds the columns for the "achievement_states" table.
	AchievementStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "achievement_id", Type: field.TypeString, Unique: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "unlocked", Type: field.TypeBool, Default: false},
		{Name: "unlocked_at", Type: field.TypeTime, Nullable: true},
	}
	// AchievementStatesTable holds the schema information for the "achievement_states" table.
	AchievementStatesTable = &schema.Table{
		Name:       "achievement_states",
		Columns:    AchievementStatesColumns,
		PrimaryKey: []*schema.Column{AchievementStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementstate_achievement_id",
				Unique:  true,
				Columns: []*schema.Column{AchievementStatesColumns[1]},
			},
		},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "best_score", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonProgressesColumns[1]},
			},
		},
	}
	// PowerUpsColumns holds the columns for the "power_ups" table.
	PowerUpsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "acquired_at", Type: field.TypeTime},
	}
	// PowerUpsTable holds the schema information for the "power_ups" table.
	PowerUpsTable = &schema.Table{
		Name:       "power_ups",
		Columns:    PowerUpsColumns,
		PrimaryKey: []*schema.Column{PowerUpsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "powerup_type",
				Unique:  false,
				Columns: []*schema.Column{PowerUpsColumns[1]},
			},
			{
				Name:    "powerup_active",
				Unique:  false,
				Columns: []*schema.Column{PowerUpsColumns[2]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "hearts", Type: field.TypeInt, Default: 5},
		{Name: "max_hearts", Type: field.TypeInt, Default: 5},
		{Name: "coins", Type: field.TypeInt, Default: 0},
		{Name: "streak_count", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_active_date", Type: field.TypeTime, Nullable: true},
		{Name: "last_heart_loss", Type: field.TypeTime, Nullable: true},
		{Name: "daily_xp_goal", Type: field.TypeInt, Default: 50},
		{Name: "daily_xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "total_xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "total_lessons_completed", Type: field.TypeInt, Default: 0},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementStatesTable,
		LessonProgressesTable,
		PowerUpsTable,
		ProfilesTable,
	}
)

func init() {
}
