// Package achievements tracks cumulative-statistic milestones and their
// one-shot unlock transitions.
package achievements

// Category selects which live statistic drives an achievement's progress.
type Category string

const (
	CategoryLevels  Category = "levels"
	CategoryStreak  Category = "streak"
	CategoryXP      Category = "xp"
	CategoryPerfect Category = "perfect"

	// CategorySpecial achievements are evaluated outside this engine and
	// pass through Evaluate unchanged.
	CategorySpecial Category = "special"
)

// Achievement is a single milestone. Icon is an opaque identifier
// resolved by the presentation layer.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    Category
	Target      int
	Progress    int
	XPReward    int
	Unlocked    bool
}

// Stats are the live statistics achievements are measured against.
type Stats struct {
	LessonsCompleted int
	Streak           int
	TotalXP          int
	StarsJustEarned  int
}

// Evaluate recomputes progress for every locked achievement from the
// category-appropriate statistic and flips Unlocked when the target is
// reached. Already-unlocked achievements are never re-evaluated, so a
// later drop in a statistic cannot re-lock them.
func Evaluate(achievs []Achievement, stats Stats) []Achievement {
	out := make([]Achievement, len(achievs))
	for i, a := range achievs {
		if a.Unlocked {
			out[i] = a
			continue
		}

		switch a.Category {
		case CategoryLevels:
			a.Progress = stats.LessonsCompleted
		case CategoryStreak:
			a.Progress = stats.Streak
		case CategoryXP:
			a.Progress = stats.TotalXP
		case CategoryPerfect:
			if stats.StarsJustEarned == 3 {
				a.Progress = 1
			}
		case CategorySpecial:
			// externally driven
		}

		a.Unlocked = a.Progress >= a.Target
		out[i] = a
	}
	return out
}

// NewlyUnlocked returns the achievements whose Unlocked flag flipped from
// false to true between the two evaluations. The caller grants each
// XPReward exactly once off this edge.
func NewlyUnlocked(before, after []Achievement) []Achievement {
	wasUnlocked := make(map[string]bool, len(before))
	for _, a := range before {
		wasUnlocked[a.ID] = a.Unlocked
	}

	var fresh []Achievement
	for _, a := range after {
		if a.Unlocked && !wasUnlocked[a.ID] {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
