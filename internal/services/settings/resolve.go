package settings

import (
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// Resolve builds the effective configuration. Each field takes the first
// non-empty value from token, creature type, then world defaults. Either
// override may be nil.
func Resolve(world *loot.WorldSettings, creature *loot.CreatureTypeOverride, token *loot.TokenOverrides) *loot.LootConfiguration {
	if world == nil {
		world = loot.DefaultWorldSettings()
	}
	if creature == nil {
		creature = &loot.CreatureTypeOverride{}
	}
	if token == nil {
		token = &loot.TokenOverrides{}
	}
	defaults := world.Defaults

	cfg := &loot.LootConfiguration{
		Sources:            pickSources(token.Sources, creature.Sources, defaults.Sources),
		QuantityFormula:    pickString(token.QuantityFormula, creature.QuantityFormula, defaults.QuantityFormula),
		ItemChance:         pickInt(defaults.ItemChance, token.ItemChance, creature.ItemChance),
		CurrencyChance:     pickInt(defaults.CurrencyChance, token.CurrencyChance, creature.CurrencyChance),
		MaxRarity:          loot.Rarity(pickString(string(token.MaxRarity), string(creature.MaxRarity), string(defaults.MaxRarity))),
		CurrencyFormula:    pickString(token.CurrencyFormula, creature.CurrencyFormula, defaults.CurrencyFormula),
		UseCRBasedCurrency: world.Generation.UseCRBasedCurrency,
	}

	if cfg.MaxRarity != "" {
		cfg.MaxRarity = loot.NormalizeRarity(string(cfg.MaxRarity))
	} else {
		cfg.MaxRarity = loot.DefaultMaxRarity
	}
	if cfg.QuantityFormula == "" {
		cfg.QuantityFormula = loot.DefaultQuantityFormula
	}
	if cfg.CurrencyFormula == "" {
		cfg.CurrencyFormula = loot.DefaultCurrencyFormula
	}

	if world.Generation.UseRarityWeights {
		cfg.RarityWeights = make(map[loot.Rarity]int, len(loot.RarityOrder))
		weights := defaults.RarityWeights
		if len(weights) == 0 {
			weights = loot.DefaultRarityWeights()
		}
		for r, w := range weights {
			cfg.RarityWeights[r] = w
		}
	}

	return cfg
}

func pickSources(candidates ...[]loot.SourceRef) []loot.SourceRef {
	for _, c := range candidates {
		if len(c) > 0 {
			out := make([]loot.SourceRef, len(c))
			copy(out, c)
			return out
		}
	}
	return nil
}

func pickString(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func pickInt(fallback int, candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}
