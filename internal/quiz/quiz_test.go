package quiz

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/problemgen"
)

func testLessonQuiz(t *testing.T) *Quiz {
	t.Helper()
	lesson, err := curriculum.GetLesson("add-1")
	if err != nil {
		t.Fatal(err)
	}
	return NewLesson(lesson, problemgen.New(rand.NewSource(1)))
}

func TestNewLessonGeneratesFullSet(t *testing.T) {
	q := testLessonQuiz(t)
	if len(q.Questions) != 10 {
		t.Fatalf("generated %d questions, want 10", len(q.Questions))
	}
	if q.ID == "" {
		t.Error("quiz has no session id")
	}
	if q.Mode != ModeLesson {
		t.Error("wrong mode")
	}
}

func TestSubmitCorrectAdvances(t *testing.T) {
	q := testLessonQuiz(t)
	question, _ := q.Current()

	out, err := q.Submit(strconv.Itoa(question.Answer), 15)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Correct || out.HeartLost {
		t.Errorf("outcome = %+v", out)
	}
	if q.Index != 1 {
		t.Errorf("index = %d, want 1", q.Index)
	}
}

func TestSubmitWrongCostsHeartInLessonMode(t *testing.T) {
	q := testLessonQuiz(t)
	question, _ := q.Current()

	out, err := q.Submit(strconv.Itoa(question.Answer+1), 15)
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct || !out.HeartLost {
		t.Errorf("outcome = %+v", out)
	}
	if q.HeartsLost != 1 {
		t.Errorf("hearts lost = %d, want 1", q.HeartsLost)
	}
	if out.Expected != question.Answer {
		t.Errorf("expected answer = %d, want %d", out.Expected, question.Answer)
	}
}

func TestSubmitInvalidInputIsIgnored(t *testing.T) {
	q := testLessonQuiz(t)

	_, err := q.Submit("", 15)
	if !errors.Is(err, problemgen.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if q.Index != 0 || q.HeartsLost != 0 || q.Tally.Answered != 0 {
		t.Error("invalid input mutated quiz state")
	}
}

func TestTimeoutCountsAsWrong(t *testing.T) {
	q := testLessonQuiz(t)
	out := q.Timeout()

	if out.Correct || !out.HeartLost {
		t.Errorf("outcome = %+v", out)
	}
	if q.Tally.Streak != 0 {
		t.Error("timeout should reset the streak")
	}
}

func TestArcadeBonusAndNoHearts(t *testing.T) {
	q := NewArcade(problemgen.DifficultyEasy, problemgen.New(rand.NewSource(2)))
	question, _ := q.Current()

	out, err := q.Submit(strconv.Itoa(question.Answer), 25)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Bonus {
		t.Error("fast correct arcade answer should earn a bonus")
	}

	question, _ = q.Current()
	out, err = q.Submit(strconv.Itoa(question.Answer+1), 25)
	if err != nil {
		t.Fatal(err)
	}
	if out.HeartLost || q.HeartsLost != 0 {
		t.Error("arcade mode must not cost hearts")
	}
	_ = out
}

func TestQuizRunsToCompletion(t *testing.T) {
	q := testLessonQuiz(t)
	for !q.Finished() {
		question, ok := q.Current()
		if !ok {
			break
		}
		out, err := q.Submit(strconv.Itoa(question.Answer), 10)
		if err != nil {
			t.Fatal(err)
		}
		if q.Finished() && !out.Finished {
			t.Error("final outcome not flagged as finished")
		}
	}
	if q.Tally.Correct != 10 {
		t.Errorf("correct = %d, want 10", q.Tally.Correct)
	}
}
