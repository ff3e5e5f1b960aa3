package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrGenerationExhausted is returned when no valid problem could be built
// within the attempt budget. It indicates an internal bug and is fatal.
var ErrGenerationExhausted = errors.New("quiz: problem generation exhausted")

// DefaultMaxAttempts bounds regeneration when no budget is configured.
const DefaultMaxAttempts = 16

// Source produces problems for a tier.
type Source interface {
	Generate(t Tier) (Problem, error)
}

// candidate is an unvalidated draw.
type candidate struct {
	left, right int
	op          Operator
}

// Generator draws random problems following the per-tier rules.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	draw        func(t Tier) candidate
}

// NewGenerator creates a generator. A zero seed uses the current time.
func NewGenerator(seed int64, maxAttempts int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	g := &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
	g.draw = g.drawCandidate
	return g
}

// Generate returns a fresh problem for the tier. Invalid draws are discarded
// and redrawn up to the attempt budget.
func (g *Generator) Generate(t Tier) (Problem, error) {
	var lastErr error
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		c := g.draw(t)
		p, err := NewProblem(c.left, c.op, c.right)
		if err == nil && p.Check() {
			return p, nil
		}
		lastErr = err
	}
	return Problem{}, fmt.Errorf("%w: %d attempts for %s tier: %v", ErrGenerationExhausted, g.maxAttempts, t, lastErr)
}

// drawCandidate applies the operator set and operand ranges of each tier.
func (g *Generator) drawCandidate(t Tier) candidate {
	switch t {
	case TierMedium:
		op := []Operator{OpAdd, OpSub, OpMul}[g.rng.Intn(3)]
		if op == OpMul {
			return candidate{left: g.between(0, 12), op: op, right: g.between(0, 12)}
		}
		return ordered(g.between(0, 50), op, g.between(0, 50))

	case TierHard:
		op := []Operator{OpAdd, OpSub, OpMul, OpDiv}[g.rng.Intn(4)]
		switch op {
		case OpMul:
			return candidate{left: g.between(2, 20), op: op, right: g.between(2, 20)}
		case OpDiv:
			quotient := g.between(2, 10)
			divisor := g.between(2, 10)
			return candidate{left: quotient * divisor, op: op, right: divisor}
		default:
			return ordered(g.between(10, 99), op, g.between(10, 99))
		}

	default:
		op := []Operator{OpAdd, OpSub}[g.rng.Intn(2)]
		return ordered(g.between(0, 20), op, g.between(0, 20))
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// ordered swaps subtraction operands so the result is never negative.
func ordered(a int, op Operator, b int) candidate {
	if op == OpSub && a < b {
		a, b = b, a
	}
	return candidate{left: a, op: op, right: b}
}
