package curriculum

import "github.com/arnavj/mathsprint/internal/problemgen"

func init() {
	g = buildGraph(seedSkills())
}

// seedSkills returns the built-in catalog: four skills, four lessons
// each, with rewards scaling by difficulty.
func seedSkills() []Skill {
	return []Skill{
		{
			ID:          "addition",
			Name:        "Addition",
			Description: "Adding numbers together",
			Icon:        "plus",
			Color:       "green",
			Operation:   problemgen.OpAdd,
			OrderIndex:  0,
			Lessons: []Lesson{
				lesson("add-1", "addition", "Addition 1", "Numbers 1-10", problemgen.DifficultyEasy, 10, 5, 0),
				lesson("add-2", "addition", "Addition 2", "Numbers 1-20", problemgen.DifficultyEasy, 15, 8, 1),
				lesson("add-3", "addition", "Addition 3", "Numbers 1-50", problemgen.DifficultyMedium, 20, 10, 2),
				lesson("add-4", "addition", "Addition 4", "Numbers 1-100", problemgen.DifficultyHard, 30, 15, 3),
			},
		},
		{
			ID:          "subtraction",
			Name:        "Subtraction",
			Description: "Taking numbers away",
			Icon:        "minus",
			Color:       "blue",
			Operation:   problemgen.OpSubtract,
			OrderIndex:  1,
			Lessons: []Lesson{
				lesson("sub-1", "subtraction", "Subtraction 1", "Numbers 1-10", problemgen.DifficultyEasy, 10, 5, 0),
				lesson("sub-2", "subtraction", "Subtraction 2", "Numbers 1-20", problemgen.DifficultyEasy, 15, 8, 1),
				lesson("sub-3", "subtraction", "Subtraction 3", "Numbers 1-50", problemgen.DifficultyMedium, 20, 10, 2),
				lesson("sub-4", "subtraction", "Subtraction 4", "Numbers 1-100", problemgen.DifficultyHard, 30, 15, 3),
			},
		},
		{
			ID:          "multiplication",
			Name:        "Multiplication",
			Description: "Times tables",
			Icon:        "x",
			Color:       "purple",
			Operation:   problemgen.OpMultiply,
			OrderIndex:  2,
			Lessons: []Lesson{
				lesson("mult-1", "multiplication", "Multiplication 1", "Tables 1-5", problemgen.DifficultyEasy, 15, 8, 0),
				lesson("mult-2", "multiplication", "Multiplication 2", "Tables 1-10", problemgen.DifficultyMedium, 20, 10, 1),
				lesson("mult-3", "multiplication", "Multiplication 3", "Tables 1-12", problemgen.DifficultyMedium, 25, 12, 2),
				lesson("mult-4", "multiplication", "Multiplication 4", "Mixed hard", problemgen.DifficultyHard, 35, 18, 3),
			},
		},
		{
			ID:          "division",
			Name:        "Division",
			Description: "Sharing equally",
			Icon:        "divide",
			Color:       "orange",
			Operation:   problemgen.OpDivide,
			OrderIndex:  3,
			Lessons: []Lesson{
				lesson("div-1", "division", "Division 1", "Simple division", problemgen.DifficultyEasy, 15, 8, 0),
				lesson("div-2", "division", "Division 2", "Tables 1-10", problemgen.DifficultyMedium, 20, 10, 1),
				lesson("div-3", "division", "Division 3", "Tables 1-12", problemgen.DifficultyMedium, 25, 12, 2),
				lesson("div-4", "division", "Division 4", "Mixed hard", problemgen.DifficultyHard, 35, 18, 3),
			},
		},
	}
}

// questionsPerLesson is the fixed quiz length for every lesson.
const questionsPerLesson = 10

func lesson(id, skillID, name, desc string, d problemgen.Difficulty, xpReward, coinReward, order int) Lesson {
	return Lesson{
		ID:            id,
		SkillID:       skillID,
		Name:          name,
		Description:   desc,
		Difficulty:    d,
		QuestionCount: questionsPerLesson,
		XPReward:      xpReward,
		CoinReward:    coinReward,
		OrderIndex:    order,
	}
}
