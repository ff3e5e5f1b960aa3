package quiz

import (
	"errors"
	"fmt"
)

// Operator is an arithmetic operation.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator glyph shown to the player.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// apply computes left op right with integer arithmetic. Division must be
// exact; anything else is reported as not ok.
func (o Operator) apply(left, right int) (int, bool) {
	switch o {
	case OpAdd:
		return left + right, true
	case OpSub:
		return left - right, true
	case OpMul:
		return left * right, true
	case OpDiv:
		if right == 0 || left%right != 0 {
			return 0, false
		}
		return left / right, true
	default:
		return 0, false
	}
}

var (
	errUnknownOperator = errors.New("unknown operator")
	errInexactDivision = errors.New("division is not exact")
	errNegativeResult  = errors.New("subtraction result is negative")
)

// Problem is a single question and its answer.
type Problem struct {
	Left   int
	Right  int
	Op     Operator
	Text   string
	Answer int
}

// NewProblem builds a problem from its operands, computing the answer by
// operator dispatch. Subtraction must not go negative and division must be
// exact.
func NewProblem(left int, op Operator, right int) (Problem, error) {
	answer, ok := op.apply(left, right)
	if !ok {
		if op == OpDiv {
			return Problem{}, fmt.Errorf("%d ÷ %d: %w", left, right, errInexactDivision)
		}
		return Problem{}, fmt.Errorf("operator %d: %w", op, errUnknownOperator)
	}
	if op == OpSub && answer < 0 {
		return Problem{}, fmt.Errorf("%d - %d: %w", left, right, errNegativeResult)
	}
	return Problem{
		Left:   left,
		Right:  right,
		Op:     op,
		Text:   fmt.Sprintf("%d %s %d", left, op.Symbol(), right),
		Answer: answer,
	}, nil
}

// Check reports whether the stored answer still matches the operands.
func (p Problem) Check() bool {
	answer, ok := p.Op.apply(p.Left, p.Right)
	return ok && answer == p.Answer
}
