// Package dice evaluates dice formulas and wraps the toolkit roller for the
// loot engines.
package dice

//go:generate mockgen -destination=mock/mock_evaluator.go -package=dicemock github.com/KirkDiggler/rpg-loot/internal/dice Evaluator

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

const (
	// MaxDiceCount bounds N in NdM
	MaxDiceCount = 1000
	// MaxDieSize bounds M in NdM
	MaxDieSize = 1000
)

// Evaluator rolls a dice formula such as "2d6*10+3" and returns the total.
// Malformed formulas fail with an INVALID_FORMULA error.
type Evaluator interface {
	Roll(ctx context.Context, formula string) (int, error)
}

// Config holds the dependencies for the evaluator
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type evaluator struct {
	roller dice.Roller
}

// NewEvaluator creates a formula evaluator backed by the given roller
func NewEvaluator(cfg *Config) (Evaluator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &evaluator{roller: cfg.Roller}, nil
}

// Roll parses and evaluates formula
func (e *evaluator) Roll(ctx context.Context, formula string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeCanceled, "dice roll canceled")
	}

	expr, err := Parse(formula)
	if err != nil {
		return 0, err
	}

	return expr.eval(e.roller)
}

// IsIntegerLiteral reports whether formula is a bare non-negative integer
// and returns its value.
func IsIntegerLiteral(formula string) (int, bool) {
	s := strings.TrimSpace(formula)
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
