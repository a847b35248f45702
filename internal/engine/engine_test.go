package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/chest"
	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/hearts"
	"github.com/arnavj/mathsprint/internal/powerup"
	"github.com/arnavj/mathsprint/internal/shop"
	"github.com/arnavj/mathsprint/internal/store"
)

type memProfiles struct {
	profile *store.Profile
}

func (m *memProfiles) Load(context.Context) (*store.Profile, error) {
	if m.profile == nil {
		return nil, nil
	}
	cp := *m.profile
	return &cp, nil
}

func (m *memProfiles) Save(_ context.Context, p *store.Profile) error {
	cp := *p
	m.profile = &cp
	return nil
}

type memProgress struct {
	recs map[string]curriculum.Progress
}

func (m *memProgress) All(context.Context) (map[string]curriculum.Progress, error) {
	out := make(map[string]curriculum.Progress, len(m.recs))
	for k, v := range m.recs {
		out[k] = v
	}
	return out, nil
}

func (m *memProgress) Upsert(_ context.Context, p curriculum.Progress) error {
	if m.recs == nil {
		m.recs = make(map[string]curriculum.Progress)
	}
	m.recs[p.LessonID] = p
	return nil
}

type memAchievements struct {
	state map[string]achievements.Achievement
}

func (m *memAchievements) Load(_ context.Context, catalog []achievements.Achievement) ([]achievements.Achievement, error) {
	out := make([]achievements.Achievement, len(catalog))
	for i, a := range catalog {
		if s, ok := m.state[a.ID]; ok {
			a.Progress = s.Progress
			a.Unlocked = s.Unlocked
		}
		out[i] = a
	}
	return out, nil
}

func (m *memAchievements) Save(_ context.Context, achievs []achievements.Achievement, _ time.Time) error {
	if m.state == nil {
		m.state = make(map[string]achievements.Achievement)
	}
	for _, a := range achievs {
		m.state[a.ID] = a
	}
	return nil
}

type memPowerUps struct {
	items  []powerup.PowerUp
	nextID int
}

func (m *memPowerUps) All(context.Context) ([]powerup.PowerUp, error) {
	out := make([]powerup.PowerUp, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memPowerUps) Add(_ context.Context, p powerup.PowerUp) error {
	m.nextID++
	p.ID = m.nextID
	m.items = append(m.items, p)
	return nil
}

func (m *memPowerUps) Deactivate(_ context.Context, id int) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Active = false
			return nil
		}
	}
	return errors.New("power-up not found")
}

func (m *memPowerUps) DeleteExpired(_ context.Context, now time.Time) error {
	kept := m.items[:0]
	for _, p := range m.items {
		if !p.Expired(now) {
			kept = append(kept, p)
		}
	}
	m.items = kept
	return nil
}

type fixture struct {
	engine   *Engine
	profiles *memProfiles
	progress *memProgress
	achievs  *memAchievements
	powerUps *memPowerUps
}

func newFixture(now time.Time, seed int64) *fixture {
	f := &fixture{
		profiles: &memProfiles{},
		progress: &memProgress{},
		achievs:  &memAchievements{},
		powerUps: &memPowerUps{},
	}
	f.engine = New(Options{
		Profiles:     f.profiles,
		Progress:     f.progress,
		Achievements: f.achievs,
		PowerUps:     f.powerUps,
		Clock:        func() time.Time { return now },
		Rand:         rand.NewSource(seed),
	})
	return f
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestBootstrapCreatesProfile(t *testing.T) {
	f := newFixture(testNow, 1)

	snap, err := f.engine.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if snap.Profile.Username != DefaultUsername {
		t.Errorf("username = %q, want %q", snap.Profile.Username, DefaultUsername)
	}
	if snap.Profile.Hearts != hearts.Max {
		t.Errorf("hearts = %d, want %d", snap.Profile.Hearts, hearts.Max)
	}
	if snap.Profile.StreakCount != 0 {
		t.Errorf("streak = %d, want 0", snap.Profile.StreakCount)
	}
	if f.profiles.profile == nil {
		t.Error("profile was not persisted")
	}
}

func TestBootstrapStreak(t *testing.T) {
	tests := []struct {
		name       string
		lastActive time.Time
		freeze     bool
		wantCount  int
		wantExt    bool
		wantLost   bool
		wantFreeze bool
	}{
		{"consecutive day", testNow.AddDate(0, 0, -1), false, 5, true, false, false},
		{"same day", testNow.Add(-2 * time.Hour), false, 4, false, false, false},
		{"lapse resets", testNow.AddDate(0, 0, -3), false, 0, false, true, false},
		{"freeze absorbs lapse", testNow.AddDate(0, 0, -3), true, 4, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(testNow, 1)
			f.profiles.profile = &store.Profile{
				Username:       DefaultUsername,
				Hearts:         hearts.Max,
				MaxHearts:      hearts.Max,
				StreakCount:    4,
				LongestStreak:  4,
				LastActiveDate: tt.lastActive,
			}
			if tt.freeze {
				f.powerUps.items = []powerup.PowerUp{{ID: 1, Type: powerup.TypeStreakFreeze, Active: true}}
				f.powerUps.nextID = 1
			}

			snap, err := f.engine.Bootstrap(context.Background())
			if err != nil {
				t.Fatalf("Bootstrap: %v", err)
			}
			if snap.Profile.StreakCount != tt.wantCount {
				t.Errorf("streak = %d, want %d", snap.Profile.StreakCount, tt.wantCount)
			}
			if snap.StreakExtended != tt.wantExt {
				t.Errorf("StreakExtended = %v, want %v", snap.StreakExtended, tt.wantExt)
			}
			if snap.StreakLost != tt.wantLost {
				t.Errorf("StreakLost = %v, want %v", snap.StreakLost, tt.wantLost)
			}
			if snap.FreezeUsed != tt.wantFreeze {
				t.Errorf("FreezeUsed = %v, want %v", snap.FreezeUsed, tt.wantFreeze)
			}
		})
	}
}

func TestBootstrapConsumesFreeze(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{
		Username:       DefaultUsername,
		Hearts:         hearts.Max,
		MaxHearts:      hearts.Max,
		StreakCount:    7,
		LongestStreak:  7,
		LastActiveDate: testNow.AddDate(0, 0, -2),
	}
	f.powerUps.items = []powerup.PowerUp{{ID: 1, Type: powerup.TypeStreakFreeze, Active: true}}
	f.powerUps.nextID = 1

	snap, err := f.engine.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if snap.Profile.StreakCount != 7 {
		t.Errorf("streak = %d, want 7", snap.Profile.StreakCount)
	}
	if f.powerUps.items[0].Active {
		t.Error("freeze still active after absorbing a lapse")
	}
}

func TestBootstrapRefillsHearts(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{
		Username:       DefaultUsername,
		Hearts:         3,
		MaxHearts:      hearts.Max,
		LastHeartLoss:  testNow.Add(-65 * time.Minute),
		LastActiveDate: testNow,
	}

	snap, err := f.engine.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if snap.Profile.Hearts != hearts.Max {
		t.Errorf("hearts = %d, want %d after two refill windows", snap.Profile.Hearts, hearts.Max)
	}
	if !snap.Profile.LastHeartLoss.IsZero() {
		t.Error("LastHeartLoss not cleared at full hearts")
	}
}

func TestBootstrapPrunesExpiredBoosts(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max, LastActiveDate: testNow}
	f.powerUps.items = []powerup.PowerUp{
		{ID: 1, Type: powerup.TypeXPBoost, Active: true, ExpiresAt: testNow.Add(-time.Minute)},
		{ID: 2, Type: powerup.TypeDoubleCoins, Active: true, ExpiresAt: testNow.Add(time.Minute)},
	}
	f.powerUps.nextID = 2

	snap, err := f.engine.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(snap.Inventory) != 1 {
		t.Fatalf("inventory size = %d, want 1", len(snap.Inventory))
	}
	if snap.Inventory[0].Type != powerup.TypeDoubleCoins {
		t.Errorf("kept %s, want the unexpired double-coins boost", snap.Inventory[0].Type)
	}
}

func TestStartLessonErrors(t *testing.T) {
	t.Run("no hearts", func(t *testing.T) {
		f := newFixture(testNow, 1)
		f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: 0, MaxHearts: hearts.Max}

		_, err := f.engine.StartLesson(context.Background(), "add-1")
		if !errors.Is(err, ErrNoLivesRemaining) {
			t.Errorf("err = %v, want ErrNoLivesRemaining", err)
		}
	})

	t.Run("locked lesson", func(t *testing.T) {
		f := newFixture(testNow, 1)
		f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}

		_, err := f.engine.StartLesson(context.Background(), "add-2")
		if !errors.Is(err, ErrLessonLocked) {
			t.Errorf("err = %v, want ErrLessonLocked", err)
		}
	})

	t.Run("unknown lesson", func(t *testing.T) {
		f := newFixture(testNow, 1)
		f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}

		if _, err := f.engine.StartLesson(context.Background(), "nope"); err == nil {
			t.Error("expected error for unknown lesson")
		}
	})
}

func TestStartLessonUnlockChain(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}
	f.progress.recs = map[string]curriculum.Progress{
		"add-1": {LessonID: "add-1", Completed: true, Stars: 2, Attempts: 1},
	}

	q, err := f.engine.StartLesson(context.Background(), "add-2")
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}
	if len(q.Questions) != 10 {
		t.Errorf("question count = %d, want 10", len(q.Questions))
	}
	if q.LessonID != "add-2" {
		t.Errorf("lesson ID = %q, want add-2", q.LessonID)
	}
}

func TestLoseHeart(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}

	p, err := f.engine.LoseHeart(context.Background())
	if err != nil {
		t.Fatalf("LoseHeart: %v", err)
	}
	if p.Hearts != hearts.Max-1 {
		t.Errorf("hearts = %d, want %d", p.Hearts, hearts.Max-1)
	}
	if !p.LastHeartLoss.Equal(testNow) {
		t.Errorf("LastHeartLoss = %v, want %v", p.LastHeartLoss, testNow)
	}
}

func TestCompleteLessonRewards(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}

	// 9/10 earns three stars: lesson rewards plus the first-lesson and
	// perfect-lesson achievement bonuses.
	res, err := f.engine.CompleteLesson(context.Background(), "add-1", 9, 10)
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if res.Stars != 3 {
		t.Errorf("stars = %d, want 3", res.Stars)
	}
	if !res.Completed {
		t.Error("lesson not marked completed")
	}
	if res.XPEarned != 10 {
		t.Errorf("XPEarned = %d, want 10", res.XPEarned)
	}
	if res.CoinsEarned != 5 {
		t.Errorf("CoinsEarned = %d, want 5", res.CoinsEarned)
	}
	if res.AchievementXP != 25 {
		t.Errorf("AchievementXP = %d, want 25", res.AchievementXP)
	}
	if len(res.Unlocked) != 2 {
		t.Fatalf("unlocked %d achievements, want 2", len(res.Unlocked))
	}
	if res.Profile.XP != 35 {
		t.Errorf("profile XP = %d, want 35", res.Profile.XP)
	}
	if res.Profile.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d, want 1", res.Profile.TotalLessonsCompleted)
	}
	if res.Progress.Attempts != 1 || res.Progress.BestScore != 9 {
		t.Errorf("progress = %+v, want attempts 1 best 9", res.Progress)
	}
}

func TestCompleteLessonLowScoreStillRewards(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}

	res, err := f.engine.CompleteLesson(context.Background(), "add-1", 4, 10)
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if res.Stars != 0 || !res.Completed {
		t.Errorf("stars = %d completed = %v, want 0 stars and completed", res.Stars, res.Completed)
	}
	if res.XPEarned != 10 || res.CoinsEarned != 5 {
		t.Errorf("rewards = %d XP %d coins, want 10 and 5 regardless of score", res.XPEarned, res.CoinsEarned)
	}
	if res.Profile.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d, want 1", res.Profile.TotalLessonsCompleted)
	}
	if res.Progress.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Progress.Attempts)
	}
}

func TestCompleteLessonBoostsDouble(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}
	f.powerUps.items = []powerup.PowerUp{
		{ID: 1, Type: powerup.TypeXPBoost, Active: true, ExpiresAt: testNow.Add(10 * time.Minute)},
		{ID: 2, Type: powerup.TypeDoubleCoins, Active: true, ExpiresAt: testNow.Add(10 * time.Minute)},
	}
	f.powerUps.nextID = 2

	res, err := f.engine.CompleteLesson(context.Background(), "add-1", 9, 10)
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if res.XPEarned != 20 {
		t.Errorf("XPEarned = %d, want 20 under an XP boost", res.XPEarned)
	}
	if res.CoinsEarned != 10 {
		t.Errorf("CoinsEarned = %d, want 10 under double coins", res.CoinsEarned)
	}
	// Achievement bonuses are flat and never multiplied.
	if res.AchievementXP != 25 {
		t.Errorf("AchievementXP = %d, want 25", res.AchievementXP)
	}
}

func TestCompleteLessonRepeat(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Hearts: hearts.Max, MaxHearts: hearts.Max}
	ctx := context.Background()

	if _, err := f.engine.CompleteLesson(ctx, "add-1", 10, 10); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	res, err := f.engine.CompleteLesson(ctx, "add-1", 7, 10)
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	if res.Profile.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d, want 1 after a repeat", res.Profile.TotalLessonsCompleted)
	}
	if res.AchievementXP != 0 {
		t.Errorf("AchievementXP = %d, want 0 on repeat (unlocks are one-shot)", res.AchievementXP)
	}
	if res.Progress.Stars != 3 {
		t.Errorf("stars = %d, want the sticky maximum 3", res.Progress.Stars)
	}
	if res.Progress.BestScore != 10 {
		t.Errorf("best score = %d, want the sticky maximum 10", res.Progress.BestScore)
	}
	if res.Progress.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Progress.Attempts)
	}
}

func TestCompleteLessonLevelUp(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, XP: 45, Hearts: hearts.Max, MaxHearts: hearts.Max}

	res, err := f.engine.CompleteLesson(context.Background(), "add-1", 8, 10)
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if !res.LeveledUp {
		t.Error("expected a level up crossing the 50 XP boundary")
	}
	if res.Profile.Level() != 2 {
		t.Errorf("level = %d, want 2", res.Profile.Level())
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Coins: 40, Hearts: 2, MaxHearts: hearts.Max}

	_, err := f.engine.Purchase(context.Background(), "refill-hearts")
	if !errors.Is(err, shop.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if f.profiles.profile.Coins != 40 {
		t.Errorf("coins = %d, want 40 untouched after a failed purchase", f.profiles.profile.Coins)
	}
	if f.profiles.profile.Hearts != 2 {
		t.Errorf("hearts = %d, want 2 untouched after a failed purchase", f.profiles.profile.Hearts)
	}
}

func TestPurchaseHeartsRefill(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{
		Username:      DefaultUsername,
		Coins:         100,
		Hearts:        1,
		MaxHearts:     hearts.Max,
		LastHeartLoss: testNow.Add(-5 * time.Minute),
	}

	res, err := f.engine.Purchase(context.Background(), "refill-hearts")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if res.Profile.Coins != 50 {
		t.Errorf("coins = %d, want 50", res.Profile.Coins)
	}
	if res.Profile.Hearts != hearts.Max {
		t.Errorf("hearts = %d, want %d", res.Profile.Hearts, hearts.Max)
	}
	if !res.Profile.LastHeartLoss.IsZero() {
		t.Error("LastHeartLoss not cleared by a refill")
	}
}

func TestPurchaseStoresPowerUp(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Coins: 150, Hearts: hearts.Max, MaxHearts: hearts.Max}

	res, err := f.engine.Purchase(context.Background(), "xp-boost")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if res.Profile.Coins != 75 {
		t.Errorf("coins = %d, want 75", res.Profile.Coins)
	}
	if len(f.powerUps.items) != 1 {
		t.Fatalf("stored %d power-ups, want 1", len(f.powerUps.items))
	}
	got := f.powerUps.items[0]
	if got.Type != powerup.TypeXPBoost || !got.Active {
		t.Errorf("stored %+v, want an active XP boost", got)
	}
	want := testNow.Add(powerup.BoostDuration)
	if !got.ExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", got.ExpiresAt, want)
	}
}

func TestPurchaseStreakFreezeNeverExpires(t *testing.T) {
	f := newFixture(testNow, 1)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Coins: 100, Hearts: hearts.Max, MaxHearts: hearts.Max}

	if _, err := f.engine.Purchase(context.Background(), "streak-freeze"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if len(f.powerUps.items) != 1 {
		t.Fatalf("stored %d power-ups, want 1", len(f.powerUps.items))
	}
	if !f.powerUps.items[0].ExpiresAt.IsZero() {
		t.Error("streak freeze must not carry an expiry")
	}
}

func TestPurchaseChest(t *testing.T) {
	const seed = 7
	want := chest.New(rand.NewSource(seed)).Draw()

	f := newFixture(testNow, seed)
	f.profiles.profile = &store.Profile{Username: DefaultUsername, Coins: 200, Hearts: hearts.Max, MaxHearts: hearts.Max}

	res, err := f.engine.Purchase(context.Background(), "common-chest")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if res.ChestReward == nil {
		t.Fatal("no chest reward returned")
	}
	if res.ChestReward.Rarity != want.Rarity {
		t.Errorf("rarity = %s, want %s", res.ChestReward.Rarity, want.Rarity)
	}
	if res.Profile.Coins != 200-150+want.Coins {
		t.Errorf("coins = %d, want %d", res.Profile.Coins, 200-150+want.Coins)
	}
	if res.Profile.XP != want.XP {
		t.Errorf("XP = %d, want %d", res.Profile.XP, want.XP)
	}
}

func TestOverview(t *testing.T) {
	f := newFixture(testNow, 1)
	f.progress.recs = map[string]curriculum.Progress{
		"add-1": {LessonID: "add-1", Completed: true, Stars: 3, BestScore: 10, Attempts: 1},
	}

	views, err := f.engine.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("skill count = %d, want 4", len(views))
	}

	add := views[0]
	if add.Skill.ID != "addition" {
		t.Fatalf("first skill = %q, want addition", add.Skill.ID)
	}
	if add.Completion.Completed != 1 || add.Completion.Total != 4 {
		t.Errorf("completion = %+v, want 1/4", add.Completion)
	}
	if !add.Lessons[0].Unlocked || !add.Lessons[1].Unlocked {
		t.Error("add-1 and add-2 should both be unlocked")
	}
	if add.Lessons[2].Unlocked {
		t.Error("add-3 should stay locked behind add-2")
	}
	if !views[1].Lessons[0].Unlocked {
		t.Error("first lesson of every skill should be open")
	}
}
