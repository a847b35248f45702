package problemgen

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// factorCap bounds operands for multiplication and division so products
// stay tractable at every difficulty.
const factorCap = 12

// ErrInvalidInput is returned when a learner's answer is empty or non-numeric.
var ErrInvalidInput = errors.New("answer must be a whole number")

// Generator produces arithmetic questions from an injected random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. Pass a seeded source for deterministic tests.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate produces a question for the given difficulty.
// The operation is chosen uniformly. Subtraction operands are swapped so
// the result is never negative; division is built as divisor×quotient so
// it always divides evenly.
func (g *Generator) Generate(d Difficulty) Question {
	min, max := d.Range()
	ops := AllOperations()
	op := ops[g.rng.Intn(len(ops))]

	num1 := g.intn(min, max)
	num2 := g.intn(min, max)
	var answer int

	switch op {
	case OpAdd:
		answer = num1 + num2
	case OpSubtract:
		if num1 < num2 {
			num1, num2 = num2, num1
		}
		answer = num1 - num2
	case OpMultiply:
		capped := max
		if capped > factorCap {
			capped = factorCap
		}
		num1 = g.intn(min, capped)
		num2 = g.intn(min, capped)
		answer = num1 * num2
	case OpDivide:
		capped := max
		if capped > factorCap {
			capped = factorCap
		}
		num2 = g.intn(min, capped)
		answer = g.intn(min, capped)
		num1 = num2 * answer
	}

	return Question{Num1: num1, Num2: num2, Op: op, Answer: answer}
}

// intn returns a uniform value in [min, max] inclusive.
func (g *Generator) intn(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

// Prompt returns the question as display text, e.g. "7 × 8 = ?".
func (q Question) Prompt() string {
	return fmt.Sprintf("%d %s %d = ?", q.Num1, q.Op.Symbol(), q.Num2)
}

// CheckAnswer parses the learner's input and compares it to the expected
// answer. Empty or non-numeric input returns ErrInvalidInput and should be
// ignored by the caller without advancing the question.
func CheckAnswer(input string, q Question) (bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return false, ErrInvalidInput
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return false, ErrInvalidInput
	}
	return n == q.Answer, nil
}
