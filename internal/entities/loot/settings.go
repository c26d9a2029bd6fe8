package loot

import "time"

// CreatureTypeOverride replaces world defaults for one creature type.
// Empty fields fall through to the world defaults.
type CreatureTypeOverride struct {
	Sources         []SourceRef `json:"sources,omitempty" validate:"omitempty,dive"`
	QuantityFormula string      `json:"quantity_formula,omitempty" validate:"omitempty,max=64"`
	ItemChance      *int        `json:"item_chance,omitempty" validate:"omitempty,min=0,max=100"`
	CurrencyChance  *int        `json:"currency_chance,omitempty" validate:"omitempty,min=0,max=100"`
	MaxRarity       Rarity      `json:"max_rarity,omitempty"`
	CurrencyFormula string      `json:"currency_formula,omitempty" validate:"omitempty,max=64"`
}

// IsEmpty reports whether the override sets nothing
func (o *CreatureTypeOverride) IsEmpty() bool {
	return o == nil || (len(o.Sources) == 0 &&
		o.QuantityFormula == "" &&
		o.ItemChance == nil &&
		o.CurrencyChance == nil &&
		o.MaxRarity == "" &&
		o.CurrencyFormula == "")
}

// WorldSettings is everything a world saves for loot generation
type WorldSettings struct {
	Defaults      LootConfiguration                `json:"defaults"`
	Generation    GenerationSettings               `json:"generation"`
	CreatureTypes map[string]*CreatureTypeOverride `json:"creature_types,omitempty"`
	UpdatedAt     time.Time                        `json:"updated_at"`
}

// DefaultWorldSettings returns the settings of a world that never saved any
func DefaultWorldSettings() *WorldSettings {
	weights := DefaultRarityWeights()
	defaults := DefaultLootConfiguration()
	defaults.RarityWeights = weights

	return &WorldSettings{
		Defaults: *defaults,
		Generation: GenerationSettings{
			EnableLootPreview:  true,
			UseCRBasedCurrency: true,
		},
		CreatureTypes: make(map[string]*CreatureTypeOverride),
	}
}

// SourceSelectionVersion is written into exported selections
const SourceSelectionVersion = 1

// SourceSelection is the portable export of a world's source choices
type SourceSelection struct {
	Version       int                              `json:"version" validate:"min=0"`
	Sources       []SourceRef                      `json:"sources" validate:"dive"`
	CreatureTypes map[string]*CreatureTypeOverride `json:"creature_types,omitempty" validate:"omitempty,dive,keys,required,endkeys,omitempty"`
	ExportedAt    time.Time                        `json:"exported_at"`
}
