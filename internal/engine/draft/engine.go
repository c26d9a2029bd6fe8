// Package draft picks the items a token receives from its prefiltered
// sources.
package draft

//go:generate mockgen -destination=mock/mock_engine.go -package=draftmock github.com/KirkDiggler/rpg-loot/internal/engine/draft Engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// MaxQuantity caps the number of slots a quantity formula can ask for
const MaxQuantity = 100

// Engine drafts items
type Engine interface {
	DraftItems(ctx context.Context, input *DraftItemsInput) (*DraftItemsOutput, error)
}

// DraftItemsInput configures one draft
type DraftItemsInput struct {
	Sources         []sources.ItemSource
	QuantityFormula string
	ItemChance      int
	MaxRarity       loot.Rarity
	// Allow overrides the predicate derived from MaxRarity
	Allow sources.AllowFunc
	// RarityWeights turns on weighted drafting when non-empty
	RarityWeights map[loot.Rarity]int
}

// DraftItemsOutput is the result of a draft. Items keep slot order.
type DraftItemsOutput struct {
	Items      []*loot.ItemDraft
	Quantity   int
	GatePassed bool
	Warnings   []loot.Warning
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

// NewEngine creates a draft engine
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

// DraftItems rolls the item gate, resolves the quantity and fills each slot
// from a fresh shuffle of the sources. Slots no source can fill stay empty.
func (e *engine) DraftItems(ctx context.Context, input *DraftItemsInput) (*DraftItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output := &DraftItemsOutput{Items: []*loot.ItemDraft{}}
	if len(input.Sources) == 0 {
		slog.Debug("no item sources, skipping draft")
		return output, nil
	}

	itemRoll := e.random.Percent()
	if itemRoll > input.ItemChance {
		slog.Debug("item gate failed", "roll", itemRoll, "chance", input.ItemChance)
		return output, nil
	}
	output.GatePassed = true

	quantity, warning := e.resolveQuantity(ctx, input.QuantityFormula)
	if warning != nil {
		output.Warnings = append(output.Warnings, *warning)
	}
	output.Quantity = quantity

	allow := input.Allow
	if allow == nil {
		maxRarity := input.MaxRarity
		allow = func(raw string) bool { return loot.RarityAllowed(raw, maxRarity) }
	}
	targets, weights := e.rarityWeights(input)

	order := make([]sources.ItemSource, len(input.Sources))
	unfilled := 0
	for slot := 0; slot < quantity; slot++ {
		copy(order, input.Sources)
		e.random.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		var item *loot.ItemDraft
		if len(targets) > 0 {
			if idx := e.random.WeightedIndex(weights); idx >= 0 {
				target := targets[idx]
				item = drawFirst(ctx, order, func(raw string) bool {
					return allow(raw) && loot.NormalizeRarity(raw) == target
				})
				if item == nil {
					slog.Debug("weighted rarity pass empty, falling back", "slot", slot, "target", target)
				}
			}
		}
		if item == nil {
			item = drawFirst(ctx, order, allow)
		}

		if item == nil {
			unfilled++
			continue
		}
		output.Items = append(output.Items, item)
	}

	if unfilled > 0 {
		output.Warnings = append(output.Warnings, loot.WarningFromError(
			errors.NoQualifyingItemsf("%d of %d item slots could not be filled", unfilled, quantity)))
	}

	return output, nil
}

// resolveQuantity uses a bare integer as is and rolls anything else. A
// formula that fails or rolls below 1 yields 1 and a warning.
func (e *engine) resolveQuantity(ctx context.Context, formula string) (int, *loot.Warning) {
	if n, ok := dice.IsIntegerLiteral(formula); ok {
		return capQuantity(n), nil
	}

	n, err := e.evaluator.Roll(ctx, formula)
	if err != nil {
		slog.Warn("invalid quantity formula", "formula", formula, "error", err)
		w := loot.WarningFromError(err)
		w.Code = errors.CodeInvalidFormula
		return 1, &w
	}
	if n <= 0 {
		w := loot.WarningFromError(errors.InvalidFormula(formula, fmt.Sprintf("rolled %d, using 1", n)))
		return 1, &w
	}

	return capQuantity(n), nil
}

func capQuantity(n int) int {
	if n > MaxQuantity {
		slog.Warn("quantity capped", "requested", n, "max", MaxQuantity)
		return MaxQuantity
	}
	return n
}

// rarityWeights returns the allowed rarities that carry weight
func (e *engine) rarityWeights(input *DraftItemsInput) ([]loot.Rarity, []int) {
	if len(input.RarityWeights) == 0 {
		return nil, nil
	}

	var targets []loot.Rarity
	var weights []int
	for _, r := range loot.AllowedRarities(input.MaxRarity) {
		if w := input.RarityWeights[r]; w > 0 {
			targets = append(targets, r)
			weights = append(weights, w)
		}
	}
	return targets, weights
}

func drawFirst(ctx context.Context, order []sources.ItemSource, allow sources.AllowFunc) *loot.ItemDraft {
	for _, src := range order {
		if item := src.DrawOne(ctx, allow); item != nil {
			return item
		}
	}
	return nil
}
