package financeai

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Goal is a savings target with a deadline and manually funded progress.
// Goals are never mutated automatically when transactions occur.
type Goal struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TargetAmount  Money  `json:"targetAmount"`
	CurrentAmount Money  `json:"currentAmount"`
	Deadline      Date   `json:"deadline"`
}

// Validate checks the goal for correctness before it enters the store.
// Targets must be strictly positive, so a persisted goal can always derive
// a progress percentage.
func (g Goal) Validate() (Goal, error) {
	if g.Title == "" {
		return g, errors.New("goal title is missing")
	}
	if !g.TargetAmount.IsPositive() {
		return g, fmt.Errorf("goal target must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return g, fmt.Errorf("goal current amount must not be negative, got %s", g.CurrentAmount)
	}
	return g, nil
}

// Progress returns the funded share of the target as a whole percentage,
// rounded to nearest and clamped to [0, 100]. A non-positive target yields 0
// rather than dividing by zero.
func (g Goal) Progress() int {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	ratio := g.CurrentAmount.value.
		Div(g.TargetAmount.value).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	p := int(ratio.IntPart())
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// IsCompleted reports whether the goal is fully funded.
func (g Goal) IsCompleted() bool { return g.Progress() == 100 }

// Equal reports whether both goals carry the same values.
func (g Goal) Equal(o Goal) bool {
	return g.ID == o.ID &&
		g.Title == o.Title &&
		g.TargetAmount.Equal(o.TargetAmount) &&
		g.CurrentAmount.Equal(o.CurrentAmount) &&
		g.Deadline == o.Deadline
}
