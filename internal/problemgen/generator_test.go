package problemgen

import (
	"math/rand"
	"testing"
)

func TestRangePerDifficulty(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		min, max   int
	}{
		{DifficultyEasy, 1, 10},
		{DifficultyMedium, 1, 50},
		{DifficultyHard, 1, 100},
	}

	for _, tt := range tests {
		min, max := tt.difficulty.Range()
		if min != tt.min || max != tt.max {
			t.Errorf("Range(%s) = [%d,%d], want [%d,%d]", tt.difficulty, min, max, tt.min, tt.max)
		}
	}
}

func TestGenerateSubtractionNeverNegative(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		g := New(rand.NewSource(1))
		for i := 0; i < 500; i++ {
			q := g.Generate(d)
			if q.Op != OpSubtract {
				continue
			}
			if q.Num1 < q.Num2 {
				t.Fatalf("%s: subtraction %d - %d has num1 < num2", d, q.Num1, q.Num2)
			}
			if q.Answer < 0 {
				t.Fatalf("%s: negative answer %d", d, q.Answer)
			}
			if q.Num1-q.Num2 != q.Answer {
				t.Fatalf("%s: %d - %d != %d", d, q.Num1, q.Num2, q.Answer)
			}
		}
	}
}

func TestGenerateDivisionIsExact(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		g := New(rand.NewSource(2))
		for i := 0; i < 500; i++ {
			q := g.Generate(d)
			if q.Op != OpDivide {
				continue
			}
			if q.Num2*q.Answer != q.Num1 {
				t.Fatalf("%s: %d ÷ %d should be %d", d, q.Num1, q.Num2, q.Answer)
			}
			if q.Num2 == 0 {
				t.Fatalf("%s: zero divisor", d)
			}
		}
	}
}

func TestGenerateMultiplicationStaysCapped(t *testing.T) {
	g := New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		q := g.Generate(DifficultyHard)
		switch q.Op {
		case OpMultiply:
			if q.Num1 > factorCap || q.Num2 > factorCap {
				t.Fatalf("multiplication operands %d × %d exceed cap", q.Num1, q.Num2)
			}
		case OpDivide:
			if q.Num2 > factorCap || q.Answer > factorCap {
				t.Fatalf("division divisor %d or quotient %d exceeds cap", q.Num2, q.Answer)
			}
		}
	}
}

func TestGenerateOperandsInRange(t *testing.T) {
	g := New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		q := g.Generate(DifficultyEasy)
		if q.Op == OpAdd || q.Op == OpSubtract {
			for _, n := range []int{q.Num1, q.Num2} {
				if n < 1 || n > 10 {
					t.Fatalf("operand %d outside easy range in %+v", n, q)
				}
			}
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	q := Question{Num1: 6, Num2: 7, Op: OpMultiply, Answer: 42}

	tests := []struct {
		input   string
		correct bool
		wantErr bool
	}{
		{"42", true, false},
		{" 42 ", true, false},
		{"41", false, false},
		{"", false, true},
		{"abc", false, true},
		{"4.2", false, true},
	}

	for _, tt := range tests {
		correct, err := CheckAnswer(tt.input, q)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckAnswer(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if correct != tt.correct {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, correct, tt.correct)
		}
	}
}

func TestPrompt(t *testing.T) {
	q := Question{Num1: 12, Num2: 4, Op: OpDivide, Answer: 3}
	if got := q.Prompt(); got != "12 ÷ 4 = ?" {
		t.Errorf("Prompt() = %q", got)
	}
}
