package achievements

// Seed returns the initial achievement catalog in display order.
func Seed() []Achievement {
	return []Achievement{
		{
			ID:          "first-lesson",
			Title:       "First Steps",
			Description: "Complete your first lesson",
			Icon:        "trophy",
			Category:    CategoryLevels,
			Target:      1,
			XPReward:    10,
		},
		{
			ID:          "5-lessons",
			Title:       "Quick Learner",
			Description: "Complete 5 lessons",
			Icon:        "star",
			Category:    CategoryLevels,
			Target:      5,
			XPReward:    25,
		},
		{
			ID:          "10-lessons",
			Title:       "Math Champion",
			Description: "Complete 10 lessons",
			Icon:        "award",
			Category:    CategoryLevels,
			Target:      10,
			XPReward:    50,
		},
		{
			ID:          "3-day-streak",
			Title:       "Consistent",
			Description: "Maintain a 3-day streak",
			Icon:        "flame",
			Category:    CategoryStreak,
			Target:      3,
			XPReward:    15,
		},
		{
			ID:          "7-day-streak",
			Title:       "Dedicated",
			Description: "Maintain a 7-day streak",
			Icon:        "zap",
			Category:    CategoryStreak,
			Target:      7,
			XPReward:    30,
		},
		{
			ID:          "100-xp",
			Title:       "XP Hunter",
			Description: "Earn 100 total XP",
			Icon:        "target",
			Category:    CategoryXP,
			Target:      100,
			XPReward:    20,
		},
		{
			ID:          "500-xp",
			Title:       "XP Master",
			Description: "Earn 500 total XP",
			Icon:        "crown",
			Category:    CategoryXP,
			Target:      500,
			XPReward:    50,
		},
		{
			ID:          "perfect-lesson",
			Title:       "Perfectionist",
			Description: "Complete a lesson with 3 stars",
			Icon:        "sparkles",
			Category:    CategoryPerfect,
			Target:      1,
			XPReward:    15,
		},
	}
}
