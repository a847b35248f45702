// Package scoring converts raw quiz results into star ratings and
// tracks the running score of a quiz in progress.
package scoring

// Star thresholds as percentages of correct answers.
const (
	threeStarPct = 90
	twoStarPct   = 70
	oneStarPct   = 50
)

// Config holds the quiz timer settings. The defaults match the arcade
// mode: a 30-second countdown with a speed bonus for answering while at
// least 20 seconds remain.
type Config struct {
	TimerSecs       int
	BonusWindowSecs int
}

// DefaultConfig returns the standard timer configuration.
func DefaultConfig() Config {
	return Config{TimerSecs: 30, BonusWindowSecs: 20}
}

// Stars maps a correct/total ratio to a 0-3 star rating.
func Stars(correct, total int) int {
	if total <= 0 {
		return 0
	}
	pct := correct * 100 / total
	switch {
	case pct >= threeStarPct:
		return 3
	case pct >= twoStarPct:
		return 2
	case pct >= oneStarPct:
		return 1
	default:
		return 0
	}
}

// BonusEligible reports whether an answer submitted with timeRemaining
// seconds left qualifies for the speed bonus.
func BonusEligible(timeRemaining, thresholdSecs int) bool {
	return timeRemaining >= thresholdSecs
}

// Tally accumulates the score of a single quiz run. A wrong or timed-out
// answer resets the correctness streak and never grants a bonus.
type Tally struct {
	cfg Config

	Correct     int
	Answered    int
	Score       int
	BonusPoints int
	Streak      int
	BestStreak  int
}

// NewTally creates a Tally with the given timer configuration.
func NewTally(cfg Config) *Tally {
	return &Tally{cfg: cfg}
}

// Record registers one answered (or timed-out) question. timeRemaining is
// the countdown value at submission; pass 0 for a timeout.
func (t *Tally) Record(correct bool, timeRemaining int) {
	t.Answered++
	if !correct {
		t.Streak = 0
		return
	}

	t.Correct++
	t.Streak++
	if t.Streak > t.BestStreak {
		t.BestStreak = t.Streak
	}

	t.Score++
	if BonusEligible(timeRemaining, t.cfg.BonusWindowSecs) {
		t.Score++
		t.BonusPoints++
	}
}
