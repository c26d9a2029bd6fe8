// Package loot provides the data model shared by the loot engines and the
// assignment orchestrator.
package loot

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// SourceKind identifies which provider resolves a source
type SourceKind string

// Source kinds
const (
	SourceKindPack   SourceKind = "pack"
	SourceKindFolder SourceKind = "folder"
	SourceKindTable  SourceKind = "table"
)

// Valid reports whether k is a known source kind
func (k SourceKind) Valid() bool {
	switch k {
	case SourceKindPack, SourceKindFolder, SourceKindTable:
		return true
	default:
		return false
	}
}

// SourceRef points at a pack, folder or table by id
type SourceRef struct {
	Kind SourceKind `json:"kind" yaml:"kind" validate:"required,oneof=pack folder table"`
	ID   string     `json:"id" yaml:"id" validate:"required"`
}

// Key returns kind:id, used to key per-session caches
func (r SourceRef) Key() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// PackSource is shorthand for a pack reference
func PackSource(id string) SourceRef { return SourceRef{Kind: SourceKindPack, ID: id} }

// FolderSource is shorthand for a folder reference
func FolderSource(id string) SourceRef { return SourceRef{Kind: SourceKindFolder, ID: id} }

// TableSource is shorthand for a table reference
func TableSource(id string) SourceRef { return SourceRef{Kind: SourceKindTable, ID: id} }

// LootConfiguration is the effective configuration for one token's run
type LootConfiguration struct {
	Sources            []SourceRef    `json:"sources"`
	QuantityFormula    string         `json:"quantity_formula"`
	ItemChance         int            `json:"item_chance"`
	CurrencyChance     int            `json:"currency_chance"`
	MaxRarity          Rarity         `json:"max_rarity"`
	CurrencyFormula    string         `json:"currency_formula"`
	UseCRBasedCurrency bool           `json:"use_cr_based_currency"`
	RarityWeights      map[Rarity]int `json:"rarity_weights,omitempty"`
}

// Defaults for a world with no loot settings saved
const (
	DefaultQuantityFormula = "1d4"
	DefaultItemChance      = 100
	DefaultCurrencyChance  = 75
	DefaultCurrencyFormula = "1d10"
	DefaultMaxRarity       = RarityLegendary
	DefaultPackID          = "dnd5e.tradegoods"
	DefaultCreatureType    = "humanoid"
)

// DefaultLootConfiguration returns the world defaults
func DefaultLootConfiguration() *LootConfiguration {
	return &LootConfiguration{
		Sources:            []SourceRef{PackSource(DefaultPackID)},
		QuantityFormula:    DefaultQuantityFormula,
		ItemChance:         DefaultItemChance,
		CurrencyChance:     DefaultCurrencyChance,
		MaxRarity:          DefaultMaxRarity,
		CurrencyFormula:    DefaultCurrencyFormula,
		UseCRBasedCurrency: true,
	}
}

// Allow returns the rarity predicate for this configuration's ceiling
func (c *LootConfiguration) Allow() func(rarityRaw string) bool {
	maxRarity := c.MaxRarity
	return func(rarityRaw string) bool {
		return RarityAllowed(rarityRaw, maxRarity)
	}
}

// ItemDraft is one materialized item ready to be handed to an inventory
type ItemDraft struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Image            string         `json:"image,omitempty"`
	Type             string         `json:"type,omitempty"`
	RarityRaw        string         `json:"rarity_raw,omitempty"`
	OriginCollection string         `json:"origin_collection,omitempty"`
	SourceKey        string         `json:"source_key,omitempty"`
	Data             map[string]any `json:"data,omitempty"`
}

// Rarity returns the normalized rarity of the draft
func (d *ItemDraft) Rarity() Rarity {
	return NormalizeRarity(d.RarityRaw)
}

// Denomination is a coin type
type Denomination string

// Denominations
const (
	Copper   Denomination = "cp"
	Silver   Denomination = "sp"
	Gold     Denomination = "gp"
	Platinum Denomination = "pp"
)

// Denominations lists every coin type, lowest value first
var Denominations = []Denomination{Copper, Silver, Gold, Platinum}

// CurrencyBundle is an amount of coins per denomination
type CurrencyBundle struct {
	Copper   int `json:"cp" yaml:"cp"`
	Silver   int `json:"sp" yaml:"sp"`
	Gold     int `json:"gp" yaml:"gp"`
	Platinum int `json:"pp" yaml:"pp"`
}

// Get returns the amount held in d
func (b CurrencyBundle) Get(d Denomination) int {
	switch d {
	case Copper:
		return b.Copper
	case Silver:
		return b.Silver
	case Gold:
		return b.Gold
	case Platinum:
		return b.Platinum
	default:
		return 0
	}
}

// Set stores amount in d. Negative amounts are clamped to zero.
func (b *CurrencyBundle) Set(d Denomination, amount int) {
	if amount < 0 {
		amount = 0
	}
	switch d {
	case Copper:
		b.Copper = amount
	case Silver:
		b.Silver = amount
	case Gold:
		b.Gold = amount
	case Platinum:
		b.Platinum = amount
	}
}

// Add returns the sum of b and other
func (b CurrencyBundle) Add(other CurrencyBundle) CurrencyBundle {
	return CurrencyBundle{
		Copper:   b.Copper + other.Copper,
		Silver:   b.Silver + other.Silver,
		Gold:     b.Gold + other.Gold,
		Platinum: b.Platinum + other.Platinum,
	}
}

// IsZero reports whether every denomination is zero
func (b CurrencyBundle) IsZero() bool {
	return b == CurrencyBundle{}
}

// String renders non-zero denominations, e.g. "12cp 3gp"
func (b CurrencyBundle) String() string {
	out := ""
	for _, d := range Denominations {
		if v := b.Get(d); v > 0 {
			if out != "" {
				out += " "
			}
			out += fmt.Sprintf("%d%s", v, d)
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// Warning is a recovered condition surfaced to the caller
type Warning struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// WarningFromError converts a coded error into a warning
func WarningFromError(err error) Warning {
	return Warning{
		Code:    errors.GetCode(err),
		Message: errors.GetMessage(err),
	}
}

// GenerationResult is the loot produced for one token
type GenerationResult struct {
	TokenID     string         `json:"token_id"`
	TokenName   string         `json:"token_name"`
	ActorID     string         `json:"actor_id"`
	Items       []*ItemDraft   `json:"items"`
	Currency    CurrencyBundle `json:"currency"`
	Warnings    []Warning      `json:"warnings,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// HasLoot reports whether the result carries items or coins
func (r *GenerationResult) HasLoot() bool {
	return len(r.Items) > 0 || !r.Currency.IsZero()
}

// Summary renders "N items (rarities), currency" for logs
func (r *GenerationResult) Summary() string {
	counts := make(map[Rarity]int)
	for _, item := range r.Items {
		counts[item.Rarity()]++
	}

	rarities := ""
	for _, rarity := range RarityOrder {
		if n := counts[rarity]; n > 0 {
			if rarities != "" {
				rarities += ", "
			}
			rarities += fmt.Sprintf("%d %s", n, rarity)
		}
	}
	if rarities == "" {
		rarities = "none"
	}

	return fmt.Sprintf("%d items (%s), %s", len(r.Items), rarities, r.Currency)
}

// Token is a creature placed in the scene
type Token struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ActorID         string          `json:"actor_id"`
	ActorType       string          `json:"actor_type"`
	CreatureType    string          `json:"creature_type"`
	ChallengeRating *float64        `json:"challenge_rating,omitempty"`
	Overrides       *TokenOverrides `json:"overrides,omitempty"`
}

var _ core.Entity = (*Token)(nil)

// GetID implements core.Entity
func (t *Token) GetID() string { return t.ID }

// GetType implements core.Entity
func (t *Token) GetType() string { return "token" }

// EffectiveCreatureType returns the creature type, defaulting to humanoid
func (t *Token) EffectiveCreatureType() string {
	if t.CreatureType == "" {
		return DefaultCreatureType
	}
	return t.CreatureType
}

// TokenOverrides are per-token settings. Empty fields fall through to the
// creature type and then the world defaults.
type TokenOverrides struct {
	Enabled         bool        `json:"enabled"`
	Sources         []SourceRef `json:"sources,omitempty"`
	QuantityFormula string      `json:"quantity_formula,omitempty"`
	ItemChance      *int        `json:"item_chance,omitempty"`
	CurrencyChance  *int        `json:"currency_chance,omitempty"`
	MaxRarity       Rarity      `json:"max_rarity,omitempty"`
	CurrencyFormula string      `json:"currency_formula,omitempty"`
}

// GenerationSettings are the world level switches for a generation call
type GenerationSettings struct {
	EnableLootPreview  bool `json:"enable_loot_preview"`
	EnableAutoLoot     bool `json:"enable_auto_loot"`
	UseCRBasedCurrency bool `json:"use_cr_based_currency"`
	UseRarityWeights   bool `json:"use_rarity_weights"`
	DebugLogging       bool `json:"debug_logging"`

	// TextRows overrides the server's text row policy when set
	TextRows string `json:"text_rows,omitempty"`
}
