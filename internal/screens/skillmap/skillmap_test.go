package skillmap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/hearts"
	"github.com/arnavj/mathsprint/internal/powerup"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/store"
)

type fakeProfiles struct {
	profile *store.Profile
}

func (f *fakeProfiles) Load(context.Context) (*store.Profile, error) {
	if f.profile == nil {
		return nil, nil
	}
	cp := *f.profile
	return &cp, nil
}

func (f *fakeProfiles) Save(_ context.Context, p *store.Profile) error {
	cp := *p
	f.profile = &cp
	return nil
}

type fakeProgress struct {
	recs map[string]curriculum.Progress
}

func (f *fakeProgress) All(context.Context) (map[string]curriculum.Progress, error) {
	out := make(map[string]curriculum.Progress, len(f.recs))
	for k, v := range f.recs {
		out[k] = v
	}
	return out, nil
}

func (f *fakeProgress) Upsert(_ context.Context, p curriculum.Progress) error {
	if f.recs == nil {
		f.recs = make(map[string]curriculum.Progress)
	}
	f.recs[p.LessonID] = p
	return nil
}

type fakeAchievs struct{}

func (fakeAchievs) Load(_ context.Context, catalog []achievements.Achievement) ([]achievements.Achievement, error) {
	return catalog, nil
}

func (fakeAchievs) Save(context.Context, []achievements.Achievement, time.Time) error {
	return nil
}

type fakePowerUps struct{}

func (fakePowerUps) All(context.Context) ([]powerup.PowerUp, error) { return nil, nil }
func (fakePowerUps) Add(context.Context, powerup.PowerUp) error     { return nil }
func (fakePowerUps) Deactivate(context.Context, int) error          { return nil }
func (fakePowerUps) DeleteExpired(context.Context, time.Time) error { return nil }

func newTestScreen(t *testing.T, profile *store.Profile, progress map[string]curriculum.Progress) *SkillMapScreen {
	t.Helper()
	eng := engine.New(engine.Options{
		Profiles:     &fakeProfiles{profile: profile},
		Progress:     &fakeProgress{recs: progress},
		Achievements: fakeAchievs{},
		PowerUps:     fakePowerUps{},
		Clock:        func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) },
	})
	return New(eng)
}

func fullProfile() *store.Profile {
	return &store.Profile{Username: engine.DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}
}

func TestTitle(t *testing.T) {
	s := newTestScreen(t, fullProfile(), nil)
	if got := s.Title(); got != "Skill Map" {
		t.Errorf("Title() = %q, want %q", got, "Skill Map")
	}
}

func TestEnterStartsUnlockedLesson(t *testing.T) {
	s := newTestScreen(t, fullProfile(), nil)

	cmd := s.selectLesson()
	if cmd == nil {
		t.Fatal("expected a command for an unlocked lesson")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("message = %T, want router.PushScreenMsg", cmd())
	}
	if msg.Screen == nil {
		t.Error("pushed screen is nil")
	}
}

func TestEnterOnLockedLesson(t *testing.T) {
	s := newTestScreen(t, fullProfile(), nil)
	s.moveCursor(1) // second lesson, predecessor not completed

	if cmd := s.selectLesson(); cmd != nil {
		t.Fatal("expected no command for a locked lesson")
	}
	if !strings.Contains(s.status, "Locked") {
		t.Errorf("status = %q, want a locked notice", s.status)
	}
}

func TestEnterWithoutHearts(t *testing.T) {
	p := fullProfile()
	p.Hearts = 0
	s := newTestScreen(t, p, nil)

	if cmd := s.selectLesson(); cmd != nil {
		t.Fatal("expected no command when out of hearts")
	}
	if !strings.Contains(s.status, "Out of hearts") {
		t.Errorf("status = %q, want an out-of-hearts notice", s.status)
	}
}

func TestLessonFinishedReloadsUnlocks(t *testing.T) {
	s := newTestScreen(t, fullProfile(), nil)

	var second *row
	for i := range s.rows {
		if s.rows[i].kind == rowLesson && s.rows[i].lesson.Lesson.ID == "add-2" {
			second = &s.rows[i]
		}
	}
	if second == nil {
		t.Fatal("lesson add-2 not in the map")
	}
	if second.lesson.Unlocked {
		t.Fatal("add-2 unlocked before add-1 is completed")
	}

	prog := &fakeProgress{}
	s.eng = engine.New(engine.Options{
		Profiles:     &fakeProfiles{profile: fullProfile()},
		Progress:     prog,
		Achievements: fakeAchievs{},
		PowerUps:     fakePowerUps{},
	})
	if err := prog.Upsert(context.Background(), curriculum.Progress{
		LessonID: "add-1", Completed: true, Stars: 2, Attempts: 1,
	}); err != nil {
		t.Fatal(err)
	}

	s.Update(screen.LessonFinishedMsg{})

	for _, r := range s.rows {
		if r.kind == rowLesson && r.lesson.Lesson.ID == "add-2" && !r.lesson.Unlocked {
			t.Error("add-2 still locked after finishing add-1")
		}
	}
}
