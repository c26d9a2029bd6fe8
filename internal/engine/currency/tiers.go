package currency

import (
	"math"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// DenominationRoll is one coin type and the formula that fills it
type DenominationRoll struct {
	Denomination loot.Denomination
	Formula      string
	// Scale multiplies the rolled total
	Scale int
	// Halve floors the scaled total divided by two
	Halve bool
}

// Tier is the treasure rolled for creatures up to MaxCR
type Tier struct {
	MaxCR    float64
	Rolls    []DenominationRoll
	Fallback DenominationRoll
}

// Tiers are ordered by MaxCR; the first tier whose MaxCR is at least the
// creature's challenge rating applies.
var Tiers = []Tier{
	{
		MaxCR: 1,
		Rolls: []DenominationRoll{
			{Denomination: loot.Copper, Formula: "3d6"},
			{Denomination: loot.Silver, Formula: "1d4"},
		},
		Fallback: DenominationRoll{Denomination: loot.Copper, Formula: "1d4"},
	},
	{
		MaxCR: 4,
		Rolls: []DenominationRoll{
			{Denomination: loot.Copper, Formula: "5d6"},
			{Denomination: loot.Silver, Formula: "2d6"},
			{Denomination: loot.Gold, Formula: "1d4"},
		},
		Fallback: DenominationRoll{Denomination: loot.Silver, Formula: "1d6"},
	},
	{
		MaxCR: 8,
		Rolls: []DenominationRoll{
			{Denomination: loot.Silver, Formula: "1d6*5"},
			{Denomination: loot.Gold, Formula: "1d6*5"},
			{Denomination: loot.Platinum, Formula: "1d4"},
		},
		Fallback: DenominationRoll{Denomination: loot.Gold, Formula: "1d6"},
	},
	{
		MaxCR: 12,
		Rolls: []DenominationRoll{
			{Denomination: loot.Gold, Formula: "1d6*10"},
			{Denomination: loot.Platinum, Formula: "1d6*2"},
		},
		Fallback: DenominationRoll{Denomination: loot.Gold, Formula: "1d6*5"},
	},
	{
		MaxCR: 16,
		Rolls: []DenominationRoll{
			{Denomination: loot.Gold, Formula: "1d6*30"},
			{Denomination: loot.Platinum, Formula: "1d6*5"},
		},
		Fallback: DenominationRoll{Denomination: loot.Gold, Formula: "1d6*5"},
	},
	{
		MaxCR: math.Inf(1),
		Rolls: []DenominationRoll{
			{Denomination: loot.Gold, Formula: "2d6*50"},
			{Denomination: loot.Platinum, Formula: "1d6*10"},
		},
		Fallback: DenominationRoll{Denomination: loot.Gold, Formula: "1d6*5"},
	},
}

// TierFor returns the tier for a challenge rating
func TierFor(cr float64) Tier {
	for _, tier := range Tiers {
		if cr <= tier.MaxCR {
			return tier
		}
	}
	return Tiers[len(Tiers)-1]
}

// flatRolls scales the configured formula per coin type. Platinum is a
// fixed 1d4 halved.
func flatRolls(formula string) []DenominationRoll {
	return []DenominationRoll{
		{Denomination: loot.Copper, Formula: formula, Scale: 10},
		{Denomination: loot.Silver, Formula: formula, Scale: 5},
		{Denomination: loot.Gold, Formula: formula, Scale: 1},
		{Denomination: loot.Platinum, Formula: "1d4", Halve: true},
	}
}

var flatFallback = DenominationRoll{Denomination: loot.Gold, Formula: "1d4"}
