package engine

import (
	"context"
	"fmt"

	"github.com/arnavj/mathsprint/internal/curriculum"
)

// LessonView pairs a lesson with its derived unlock and progress state.
type LessonView struct {
	Lesson   curriculum.Lesson
	Progress curriculum.Progress
	Unlocked bool
}

// SkillView aggregates a skill's lessons for display. Completion is
// re-derived from persisted per-lesson progress on every call.
type SkillView struct {
	Skill      curriculum.Skill
	Completion curriculum.Completion
	Lessons    []LessonView
}

// Overview builds the full skill map from the catalog and the stored
// progress records.
func (e *Engine) Overview(ctx context.Context) ([]SkillView, error) {
	progress, err := e.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	skills := curriculum.AllSkills()
	views := make([]SkillView, 0, len(skills))
	for _, skill := range skills {
		view := SkillView{Skill: skill}

		view.Completion, err = curriculum.SkillCompletion(skill.ID, progress)
		if err != nil {
			return nil, err
		}

		for i, lesson := range skill.Lessons {
			var prev *curriculum.Progress
			if i > 0 {
				if p, ok := progress[skill.Lessons[i-1].ID]; ok {
					prev = &p
				}
			}
			view.Lessons = append(view.Lessons, LessonView{
				Lesson:   lesson,
				Progress: progress[lesson.ID],
				Unlocked: curriculum.IsUnlocked(i, prev),
			})
		}
		views = append(views, view)
	}
	return views, nil
}
