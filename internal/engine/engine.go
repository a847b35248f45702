// Package engine wires the progression rules into action handlers.
//
// Every operation is a synchronous computation over a loaded snapshot:
// the action proposes state deltas, applies them to the aggregates, and
// persists through the repositories. The engine owns no timers; hearts
// and boosts are evaluated lazily against stored timestamps.
package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/arnavj/mathsprint/internal/chest"
	"github.com/arnavj/mathsprint/internal/hearts"
	"github.com/arnavj/mathsprint/internal/problemgen"
	"github.com/arnavj/mathsprint/internal/store"
)

var (
	// ErrNoLivesRemaining is returned when a lesson is started with zero
	// hearts. The caller should redirect to the shop or wait for refill.
	ErrNoLivesRemaining = errors.New("no hearts remaining")

	// ErrLessonLocked is returned when a lesson's predecessor is not yet
	// completed.
	ErrLessonLocked = errors.New("lesson is locked")
)

// Clock supplies the current time; injectable for tests.
type Clock func() time.Time

// Options configures an Engine.
type Options struct {
	Profiles     store.ProfileRepo
	Progress     store.ProgressRepo
	Achievements store.AchievementRepo
	PowerUps     store.PowerUpRepo

	// Clock defaults to time.Now.
	Clock Clock

	// Rand seeds question generation and chest draws; defaults to a
	// time-seeded source.
	Rand rand.Source
}

// Engine executes user actions against the persisted aggregates.
type Engine struct {
	profiles store.ProfileRepo
	progress store.ProgressRepo
	achievs  store.AchievementRepo
	powerUps store.PowerUpRepo

	clock Clock
	gen   *problemgen.Generator
	chest *chest.Drawer
}

// New creates an Engine from the given options.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{
		profiles: opts.Profiles,
		progress: opts.Progress,
		achievs:  opts.Achievements,
		powerUps: opts.PowerUps,
		clock:    opts.Clock,
		gen:      problemgen.New(opts.Rand),
		chest:    chest.New(opts.Rand),
	}
}

// defaultProfile is the state of a brand-new account.
func defaultProfile(username string) *store.Profile {
	return &store.Profile{
		Username:    username,
		Hearts:      hearts.Max,
		MaxHearts:   hearts.Max,
		DailyXPGoal: 50,
	}
}

// HeartStatus describes the life pool for display.
type HeartStatus struct {
	Hearts             int
	MaxHearts          int
	MinutesUntilRefill int
}

// HeartStatus evaluates the pull-based refill state of a profile.
func (e *Engine) HeartStatus(p *store.Profile) HeartStatus {
	status := HeartStatus{Hearts: p.Hearts, MaxHearts: p.MaxHearts}
	if p.Hearts < p.MaxHearts && !p.LastHeartLoss.IsZero() {
		status.MinutesUntilRefill = hearts.MinutesUntilRefill(p.LastHeartLoss, e.clock())
	}
	return status
}
