// Package currency rolls the coins a token carries, either from its
// challenge rating or from a flat formula.
package currency

//go:generate mockgen -destination=mock/mock_engine.go -package=currencymock github.com/KirkDiggler/rpg-loot/internal/engine/currency Engine

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// SkipChance is the percent chance each denomination is left out
const SkipChance = 20

// Mode is how the bundle was computed
type Mode string

// Modes
const (
	ModeChallengeRating Mode = "challenge_rating"
	ModeFlat            Mode = "flat"
)

// Engine rolls currency
type Engine interface {
	RollCurrency(ctx context.Context, input *RollCurrencyInput) (*RollCurrencyOutput, error)
}

// RollCurrencyInput configures one roll
type RollCurrencyInput struct {
	CurrencyChance  int
	UseCRBased      bool
	ChallengeRating *float64
	// Formula is the flat mode formula
	Formula string
}

// RollCurrencyOutput is the rolled bundle
type RollCurrencyOutput struct {
	Currency     loot.CurrencyBundle
	GatePassed   bool
	Mode         Mode
	FallbackUsed bool
	Warnings     []loot.Warning
}

// Config holds the dependencies for the engine
type Config struct {
	Evaluator dice.Evaluator
	Random    *dice.Random
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}

	return vb.Build()
}

type engine struct {
	evaluator dice.Evaluator
	random    *dice.Random
}

// NewEngine creates a currency engine
func NewEngine(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		evaluator: cfg.Evaluator,
		random:    cfg.Random,
	}, nil
}

// RollCurrency rolls the currency gate and then each denomination of the
// tier or flat table, skipping each with SkipChance. When the gate passed
// but nothing was awarded a small fallback amount is rolled.
func (e *engine) RollCurrency(ctx context.Context, input *RollCurrencyInput) (*RollCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output := &RollCurrencyOutput{Mode: ModeFlat}
	rolls := flatRolls(input.Formula)
	fallback := flatFallback
	// A CR that is not a finite number counts as missing
	if input.UseCRBased && input.ChallengeRating != nil && !math.IsNaN(*input.ChallengeRating) && !math.IsInf(*input.ChallengeRating, 0) {
		tier := TierFor(*input.ChallengeRating)
		output.Mode = ModeChallengeRating
		rolls = tier.Rolls
		fallback = tier.Fallback
	}

	currencyRoll := e.random.Percent()
	if currencyRoll > input.CurrencyChance {
		slog.Debug("currency gate failed", "roll", currencyRoll, "chance", input.CurrencyChance)
		return output, nil
	}
	output.GatePassed = true

	if output.Mode == ModeFlat {
		if _, err := dice.Parse(input.Formula); err != nil {
			slog.Warn("invalid currency formula", "formula", input.Formula, "error", err)
			output.Warnings = append(output.Warnings, loot.WarningFromError(err))
			return output, nil
		}
	}

	var bundle loot.CurrencyBundle
	for _, roll := range rolls {
		if e.random.Chance(SkipChance) {
			slog.Debug("denomination skipped", "denomination", roll.Denomination)
			continue
		}

		amount, err := e.rollAmount(ctx, roll)
		if err != nil {
			slog.Warn("currency roll failed", "denomination", roll.Denomination, "formula", roll.Formula, "error", err)
			w := loot.WarningFromError(err)
			w.Code = errors.CodeInvalidFormula
			output.Warnings = append(output.Warnings, w)
			return output, nil
		}
		bundle.Set(roll.Denomination, bundle.Get(roll.Denomination)+amount)
	}

	if bundle.IsZero() {
		amount, err := e.rollAmount(ctx, fallback)
		if err != nil || amount < 1 {
			amount = 1
		}
		bundle.Set(fallback.Denomination, amount)
		output.FallbackUsed = true
		slog.Debug("currency fallback applied", "denomination", fallback.Denomination, "amount", amount)
	}

	output.Currency = bundle
	return output, nil
}

func (e *engine) rollAmount(ctx context.Context, roll DenominationRoll) (int, error) {
	total, err := e.evaluator.Roll(ctx, roll.Formula)
	if err != nil {
		return 0, err
	}
	if roll.Scale > 0 {
		total *= roll.Scale
	}
	if roll.Halve {
		total /= 2
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}
