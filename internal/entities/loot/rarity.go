package loot

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is one of the five canonical item rarities
type Rarity string

// Canonical rarities, lowest first
const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityVeryRare  Rarity = "Very Rare"
	RarityLegendary Rarity = "Legendary"
)

// RarityOrder lists the canonical rarities from lowest to highest rank
var RarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityVeryRare,
	RarityLegendary,
}

// DefaultRarityWeights is the distribution used when weighted drafting is
// turned on without explicit weights.
func DefaultRarityWeights() map[Rarity]int {
	return map[Rarity]int{
		RarityCommon:    50,
		RarityUncommon:  30,
		RarityRare:      15,
		RarityVeryRare:  4,
		RarityLegendary: 1,
	}
}

// Rank returns the position of r in RarityOrder, or -1 for a value that is
// not canonical.
func (r Rarity) Rank() int {
	for i, candidate := range RarityOrder {
		if candidate == r {
			return i
		}
	}
	return -1
}

// String returns the display form
func (r Rarity) String() string {
	return string(r)
}

// NormalizeRarity maps free-form rarity text onto a display form. Empty input
// is Common. Unknown values come back title-cased and rank above Legendary.
func NormalizeRarity(raw string) Rarity {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return RarityCommon
	}

	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return RarityCommon
	}

	if strings.Contains(s, "very") && strings.Contains(s, "rare") {
		return RarityVeryRare
	}

	// cases.Caser is not safe for concurrent use
	return Rarity(cases.Title(language.Und).String(s))
}

// ParseRarity reports whether raw normalizes to one of the canonical
// rarities.
func ParseRarity(raw string) (Rarity, bool) {
	r := NormalizeRarity(raw)
	return r, r.Rank() >= 0
}

// RarityAllowed reports whether an item with rarity raw may be drafted under
// the given ceiling. An unrecognized ceiling is treated as Legendary.
func RarityAllowed(raw string, maxRarity Rarity) bool {
	ceiling := NormalizeRarity(string(maxRarity)).Rank()
	if ceiling < 0 {
		ceiling = RarityLegendary.Rank()
	}

	rank := NormalizeRarity(raw).Rank()
	if rank < 0 {
		return false
	}
	return rank <= ceiling
}

// AllowedRarities returns the prefix of RarityOrder permitted by maxRarity
func AllowedRarities(maxRarity Rarity) []Rarity {
	allowed := make([]Rarity, 0, len(RarityOrder))
	for _, r := range RarityOrder {
		if RarityAllowed(string(r), maxRarity) {
			allowed = append(allowed, r)
		}
	}
	return allowed
}
