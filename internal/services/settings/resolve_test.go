package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/services/settings"
)

func intPtr(v int) *int { return &v }

func TestResolve(t *testing.T) {
	world := loot.DefaultWorldSettings()
	world.Defaults.Sources = []loot.SourceRef{loot.PackSource("dnd5e.tradegoods")}

	undead := &loot.CreatureTypeOverride{
		Sources:        []loot.SourceRef{loot.FolderSource("grave-goods")},
		ItemChance:     intPtr(40),
		MaxRarity:      "uncommon",
		CurrencyChance: intPtr(0),
	}

	testCases := []struct {
		name     string
		creature *loot.CreatureTypeOverride
		token    *loot.TokenOverrides
		check    func(t *testing.T, cfg *loot.LootConfiguration)
	}{
		{
			name: "world defaults",
			check: func(t *testing.T, cfg *loot.LootConfiguration) {
				assert.Equal(t, []loot.SourceRef{loot.PackSource("dnd5e.tradegoods")}, cfg.Sources)
				assert.Equal(t, "1d4", cfg.QuantityFormula)
				assert.Equal(t, 100, cfg.ItemChance)
				assert.Equal(t, 75, cfg.CurrencyChance)
				assert.Equal(t, loot.RarityLegendary, cfg.MaxRarity)
				assert.Equal(t, "1d10", cfg.CurrencyFormula)
				assert.True(t, cfg.UseCRBasedCurrency)
				assert.Nil(t, cfg.RarityWeights)
			},
		},
		{
			name:     "creature type overrides set fields only",
			creature: undead,
			check: func(t *testing.T, cfg *loot.LootConfiguration) {
				assert.Equal(t, []loot.SourceRef{loot.FolderSource("grave-goods")}, cfg.Sources)
				assert.Equal(t, 40, cfg.ItemChance)
				assert.Equal(t, 0, cfg.CurrencyChance)
				assert.Equal(t, loot.RarityUncommon, cfg.MaxRarity)
				assert.Equal(t, "1d4", cfg.QuantityFormula)
			},
		},
		{
			name:     "token beats creature type per field",
			creature: undead,
			token: &loot.TokenOverrides{
				Enabled:         true,
				QuantityFormula: "2",
				ItemChance:      intPtr(90),
			},
			check: func(t *testing.T, cfg *loot.LootConfiguration) {
				assert.Equal(t, "2", cfg.QuantityFormula)
				assert.Equal(t, 90, cfg.ItemChance)
				assert.Equal(t, []loot.SourceRef{loot.FolderSource("grave-goods")}, cfg.Sources)
				assert.Equal(t, loot.RarityUncommon, cfg.MaxRarity)
			},
		},
		{
			name:  "token zero chance is honored",
			token: &loot.TokenOverrides{Enabled: true, ItemChance: intPtr(0)},
			check: func(t *testing.T, cfg *loot.LootConfiguration) {
				assert.Equal(t, 0, cfg.ItemChance)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, settings.Resolve(world, tc.creature, tc.token))
		})
	}
}

func TestResolveRarityWeights(t *testing.T) {
	world := loot.DefaultWorldSettings()
	world.Generation.UseRarityWeights = true
	world.Defaults.RarityWeights = nil

	cfg := settings.Resolve(world, nil, nil)
	assert.Equal(t, loot.DefaultRarityWeights(), cfg.RarityWeights)

	world.Defaults.RarityWeights = map[loot.Rarity]int{loot.RarityCommon: 1}
	cfg = settings.Resolve(world, nil, nil)
	assert.Equal(t, map[loot.Rarity]int{loot.RarityCommon: 1}, cfg.RarityWeights)
}

func TestResolveDoesNotAliasSources(t *testing.T) {
	world := loot.DefaultWorldSettings()
	cfg := settings.Resolve(world, nil, nil)
	cfg.Sources[0] = loot.TableSource("changed")

	assert.Equal(t, loot.PackSource(loot.DefaultPackID), world.Defaults.Sources[0])
}

func TestResolveNilWorld(t *testing.T) {
	cfg := settings.Resolve(nil, nil, nil)
	assert.Equal(t, loot.DefaultLootConfiguration().Sources, cfg.Sources)
}
