// Package quiz holds the ephemeral state of one quiz run. Questions are
// generated up front; answers are submitted synchronously one at a time.
// The UI owns the countdown and reports the remaining seconds here.
package quiz

import (
	"github.com/google/uuid"

	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/problemgen"
	"github.com/arnavj/mathsprint/internal/scoring"
)

// Mode distinguishes the two play styles.
type Mode int

const (
	// ModeLesson plays a curriculum lesson: wrong or timed-out answers
	// cost a heart, no speed bonus.
	ModeLesson Mode = iota

	// ModeArcade is free practice against the 30-second timer with speed
	// bonuses and no heart cost.
	ModeArcade
)

// Quiz is one run in progress.
type Quiz struct {
	ID        string
	Mode      Mode
	LessonID  string
	Questions []problemgen.Question
	Index     int
	Tally     *scoring.Tally

	// HeartsLost counts wrong/timed-out answers in lesson mode.
	HeartsLost int
}

// ArcadeLength is the number of questions in an arcade run.
const ArcadeLength = 10

// NewLesson builds a quiz for a curriculum lesson.
func NewLesson(lesson curriculum.Lesson, gen *problemgen.Generator) *Quiz {
	return &Quiz{
		ID:        uuid.NewString(),
		Mode:      ModeLesson,
		LessonID:  lesson.ID,
		Questions: generate(gen, lesson.Difficulty, lesson.QuestionCount),
		Tally:     scoring.NewTally(scoring.DefaultConfig()),
	}
}

// NewArcade builds a free-practice quiz at the given difficulty.
func NewArcade(d problemgen.Difficulty, gen *problemgen.Generator) *Quiz {
	return &Quiz{
		ID:        uuid.NewString(),
		Mode:      ModeArcade,
		Questions: generate(gen, d, ArcadeLength),
		Tally:     scoring.NewTally(scoring.DefaultConfig()),
	}
}

func generate(gen *problemgen.Generator, d problemgen.Difficulty, n int) []problemgen.Question {
	qs := make([]problemgen.Question, n)
	for i := range qs {
		qs[i] = gen.Generate(d)
	}
	return qs
}

// Current returns the active question, or false when the quiz is over.
func (q *Quiz) Current() (problemgen.Question, bool) {
	if q.Index >= len(q.Questions) {
		return problemgen.Question{}, false
	}
	return q.Questions[q.Index], true
}

// Finished reports whether every question has been answered.
func (q *Quiz) Finished() bool {
	return q.Index >= len(q.Questions)
}

// Outcome describes the result of one submission.
type Outcome struct {
	Correct   bool
	Bonus     bool
	HeartLost bool
	Expected  int
	Finished  bool
}

// Submit checks the learner's input against the current question and
// advances. Invalid input (empty or non-numeric) returns
// problemgen.ErrInvalidInput without consuming the question or mutating
// any state.
func (q *Quiz) Submit(input string, timeRemaining int) (Outcome, error) {
	question, ok := q.Current()
	if !ok {
		return Outcome{Finished: true}, nil
	}

	correct, err := problemgen.CheckAnswer(input, question)
	if err != nil {
		return Outcome{}, err
	}

	return q.record(question, correct, timeRemaining), nil
}

// Timeout registers the current question as unanswered. It counts as a
// wrong answer: the correctness streak resets and, in lesson mode, a
// heart is lost.
func (q *Quiz) Timeout() Outcome {
	question, ok := q.Current()
	if !ok {
		return Outcome{Finished: true}
	}
	return q.record(question, false, 0)
}

func (q *Quiz) record(question problemgen.Question, correct bool, timeRemaining int) Outcome {
	bonusBefore := q.Tally.BonusPoints
	q.Tally.Record(correct, timeRemaining)

	out := Outcome{
		Correct:  correct,
		Expected: question.Answer,
	}
	if q.Mode == ModeArcade {
		out.Bonus = q.Tally.BonusPoints > bonusBefore
	}
	if q.Mode == ModeLesson && !correct {
		q.HeartsLost++
		out.HeartLost = true
	}

	q.Index++
	out.Finished = q.Finished()
	return out
}
