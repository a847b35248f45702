package curriculum

import "testing"

func TestSeedIndexes(t *testing.T) {
	skills := AllSkills()
	if len(skills) != 4 {
		t.Fatalf("got %d skills, want 4", len(skills))
	}
	for _, s := range skills {
		if len(s.Lessons) != 4 {
			t.Errorf("skill %s has %d lessons, want 4", s.ID, len(s.Lessons))
		}
		for i, l := range s.Lessons {
			if l.OrderIndex != i {
				t.Errorf("skill %s lesson %s at position %d has order %d", s.ID, l.ID, i, l.OrderIndex)
			}
			if l.SkillID != s.ID {
				t.Errorf("lesson %s claims skill %s inside %s", l.ID, l.SkillID, s.ID)
			}
		}
	}
}

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("mult-3")
	if err != nil {
		t.Fatal(err)
	}
	if l.XPReward != 25 || l.CoinReward != 12 {
		t.Errorf("mult-3 rewards = %d/%d, want 25/12", l.XPReward, l.CoinReward)
	}

	if _, err := GetLesson("nope"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestIsUnlockedChain(t *testing.T) {
	if !IsUnlocked(0, nil) {
		t.Error("index 0 must always be unlocked")
	}
	if IsUnlocked(2, nil) {
		t.Error("index 2 with no predecessor progress must be locked")
	}
	if IsUnlocked(2, &Progress{Completed: false}) {
		t.Error("incomplete predecessor must keep the lesson locked")
	}
	if !IsUnlocked(2, &Progress{Completed: true}) {
		t.Error("completed predecessor must unlock the lesson")
	}
}

func TestLessonUnlockedIndependentOfEarlierLessons(t *testing.T) {
	// lesson[2] depends only on lesson[1]; lesson[0]'s state is irrelevant.
	progress := map[string]Progress{
		"add-2": {LessonID: "add-2", Completed: true},
	}

	unlocked, err := LessonUnlocked("add-3", progress)
	if err != nil {
		t.Fatal(err)
	}
	if !unlocked {
		t.Error("add-3 should unlock once add-2 is completed")
	}

	unlocked, err = LessonUnlocked("add-2", progress)
	if err != nil {
		t.Fatal(err)
	}
	if unlocked {
		t.Error("add-2 should be locked while add-1 is incomplete")
	}

	unlocked, err = LessonUnlocked("add-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !unlocked {
		t.Error("add-1 is the first lesson and always unlocked")
	}
}

func TestSkillCompletion(t *testing.T) {
	progress := map[string]Progress{
		"sub-1": {Completed: true},
		"sub-2": {Completed: true},
		"sub-3": {Completed: false, Attempts: 2},
	}

	c, err := SkillCompletion("subtraction", progress)
	if err != nil {
		t.Fatal(err)
	}
	if c.Completed != 2 || c.Total != 4 || c.Percentage != 50 {
		t.Errorf("completion = %+v, want 2/4 (50%%)", c)
	}
}

func TestProgressMergeMaxSemantics(t *testing.T) {
	p := Progress{LessonID: "add-1"}

	p = p.Merge(true, 3, 12)
	if !p.Completed || p.Stars != 3 || p.BestScore != 12 || p.Attempts != 1 {
		t.Fatalf("first merge = %+v", p)
	}

	// A worse later attempt never regresses the record.
	p = p.Merge(false, 1, 6)
	if !p.Completed {
		t.Error("completed flag must stay sticky")
	}
	if p.Stars != 3 {
		t.Errorf("stars regressed to %d", p.Stars)
	}
	if p.BestScore != 12 {
		t.Errorf("best score regressed to %d", p.BestScore)
	}
	if p.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", p.Attempts)
	}
}
