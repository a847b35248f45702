package problemgen

// Difficulty selects the operand range for generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // operands 1-10
	DifficultyMedium Difficulty = "medium" // operands 1-50
	DifficultyHard   Difficulty = "hard"   // operands 1-100
)

// Range returns the inclusive operand range for a difficulty.
func (d Difficulty) Range() (min, max int) {
	switch d {
	case DifficultyMedium:
		return 1, 50
	case DifficultyHard:
		return 1, 100
	default:
		return 1, 10
	}
}

// Operation identifies the arithmetic operation of a question.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// AllOperations returns the operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol returns the display symbol for the operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// Question is a single arithmetic problem with its expected answer.
// Questions are ephemeral: generated fresh per prompt, never persisted.
type Question struct {
	Num1   int
	Num2   int
	Op     Operation
	Answer int
}
