// Package curriculum holds the skill/lesson catalog and the unlock chain.
//
// Unlock state and per-skill completion are always re-derived from the
// persisted per-lesson progress on read; neither is stored.
package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// graph indexes the seeded catalog.
type graph struct {
	skills     []Skill
	skillByID  map[string]*Skill
	lessonByID map[string]*Lesson
}

// g is the package-level singleton, built by init() in seed.go.
var g *graph

func buildGraph(skills []Skill) *graph {
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].OrderIndex < skills[j].OrderIndex
	})

	gr := &graph{
		skills:     skills,
		skillByID:  make(map[string]*Skill, len(skills)),
		lessonByID: make(map[string]*Lesson),
	}
	for i := range gr.skills {
		s := &gr.skills[i]
		sort.Slice(s.Lessons, func(a, b int) bool {
			return s.Lessons[a].OrderIndex < s.Lessons[b].OrderIndex
		})
		gr.skillByID[s.ID] = s
		for j := range s.Lessons {
			gr.lessonByID[s.Lessons[j].ID] = &s.Lessons[j]
		}
	}
	return gr
}

// AllSkills returns the catalog in display order.
func AllSkills() []Skill {
	return slices.Clone(g.skills)
}

// GetSkill returns a skill by ID.
func GetSkill(id string) (Skill, error) {
	s, ok := g.skillByID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// GetLesson returns a lesson by ID.
func GetLesson(id string) (Lesson, error) {
	l, ok := g.lessonByID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// IsUnlocked applies the linear-chain rule: the first lesson of a skill
// is always open; any later lesson opens once its predecessor is
// completed. prev is the predecessor's progress record, nil when absent.
func IsUnlocked(indexInSkill int, prev *Progress) bool {
	if indexInSkill == 0 {
		return true
	}
	return prev != nil && prev.Completed
}

// LessonUnlocked resolves the unlock rule for a lesson ID against the
// progress map (keyed by lesson ID).
func LessonUnlocked(lessonID string, progress map[string]Progress) (bool, error) {
	lesson, ok := g.lessonByID[lessonID]
	if !ok {
		return false, fmt.Errorf("lesson not found: %q", lessonID)
	}

	skill := g.skillByID[lesson.SkillID]
	for i := range skill.Lessons {
		if skill.Lessons[i].ID != lessonID {
			continue
		}
		if i == 0 {
			return true, nil
		}
		prev, ok := progress[skill.Lessons[i-1].ID]
		if !ok {
			return false, nil
		}
		return IsUnlocked(i, &prev), nil
	}
	return false, fmt.Errorf("lesson %q not in skill %q", lessonID, lesson.SkillID)
}

// Completion summarizes a skill against the progress map.
type Completion struct {
	Completed  int
	Total      int
	Percentage int
}

// SkillCompletion recomputes the per-skill aggregate from per-lesson
// progress.
func SkillCompletion(skillID string, progress map[string]Progress) (Completion, error) {
	skill, ok := g.skillByID[skillID]
	if !ok {
		return Completion{}, fmt.Errorf("skill not found: %q", skillID)
	}

	c := Completion{Total: len(skill.Lessons)}
	for _, l := range skill.Lessons {
		if p, ok := progress[l.ID]; ok && p.Completed {
			c.Completed++
		}
	}
	if c.Total > 0 {
		c.Percentage = 100 * c.Completed / c.Total
	}
	return c, nil
}
