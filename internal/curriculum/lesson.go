package curriculum

import "github.com/arnavj/mathsprint/internal/problemgen"

// Skill is an ordered sequence of lessons sharing one operation.
type Skill struct {
	ID          string
	Name        string
	Description string
	Icon        string // opaque identifier resolved by the UI layer
	Color       string
	Operation   problemgen.Operation
	OrderIndex  int
	Lessons     []Lesson
}

// Lesson is a single playable unit within a skill.
type Lesson struct {
	ID            string
	SkillID       string
	Name          string
	Description   string
	Difficulty    problemgen.Difficulty
	QuestionCount int
	XPReward      int
	CoinReward    int
	OrderIndex    int
}

// Progress is the persisted per-lesson record. Completed and Stars are
// sticky maxima; Attempts only grows.
type Progress struct {
	LessonID  string
	Completed bool
	Stars     int
	BestScore int
	Attempts  int
}

// Merge folds a new attempt into the record with max semantics.
func (p Progress) Merge(completed bool, stars, score int) Progress {
	p.Attempts++
	p.Completed = p.Completed || completed
	if stars > p.Stars {
		p.Stars = stars
	}
	if score > p.BestScore {
		p.BestScore = score
	}
	return p
}
