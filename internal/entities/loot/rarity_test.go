package loot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

type RarityTestSuite struct {
	suite.Suite
}

func TestRaritySuite(t *testing.T) {
	suite.Run(t, new(RarityTestSuite))
}

func (s *RarityTestSuite) TestNormalizeRarity() {
	testCases := []struct {
		raw      string
		expected loot.Rarity
	}{
		{raw: "", expected: loot.RarityCommon},
		{raw: "   ", expected: loot.RarityCommon},
		{raw: "common", expected: loot.RarityCommon},
		{raw: "uncommon", expected: loot.RarityUncommon},
		{raw: "  RARE ", expected: loot.RarityRare},
		{raw: "VERY RARE", expected: loot.RarityVeryRare},
		{raw: "very_rare", expected: loot.RarityVeryRare},
		{raw: "very-rare", expected: loot.RarityVeryRare},
		{raw: "veryRare", expected: loot.RarityVeryRare},
		{raw: "legendary", expected: loot.RarityLegendary},
		{raw: "artifact", expected: loot.Rarity("Artifact")},
		{raw: "quite__odd  value", expected: loot.Rarity("Quite Odd Value")},
	}

	for _, tc := range testCases {
		s.Run(tc.raw, func() {
			s.Equal(tc.expected, loot.NormalizeRarity(tc.raw))
		})
	}
}

func (s *RarityTestSuite) TestNormalizeIsIdempotent() {
	inputs := []string{"", "common", "Very Rare", "very_rare", "LEGENDARY", "artifact", "  Un-Common  ", "x_y-z"}
	for _, raw := range inputs {
		once := loot.NormalizeRarity(raw)
		s.Equal(once, loot.NormalizeRarity(string(once)), "input %q", raw)
	}
}

func (s *RarityTestSuite) TestRarityAllowed() {
	testCases := []struct {
		name      string
		raw       string
		maxRarity loot.Rarity
		expected  bool
	}{
		{name: "common under common", raw: "common", maxRarity: loot.RarityCommon, expected: true},
		{name: "rare under uncommon", raw: "rare", maxRarity: loot.RarityUncommon, expected: false},
		{name: "empty is common", raw: "", maxRarity: loot.RarityCommon, expected: true},
		{name: "very rare under legendary", raw: "very rare", maxRarity: loot.RarityLegendary, expected: true},
		{name: "legendary under very rare", raw: "legendary", maxRarity: loot.RarityVeryRare, expected: false},
		{name: "unknown ceiling is legendary", raw: "legendary", maxRarity: loot.Rarity("mythic"), expected: true},
		{name: "free form ceiling", raw: "rare", maxRarity: loot.Rarity("very_rare"), expected: true},
		{name: "unknown rarity never allowed", raw: "artifact", maxRarity: loot.RarityLegendary, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, loot.RarityAllowed(tc.raw, tc.maxRarity))
		})
	}
}

func (s *RarityTestSuite) TestRarityAllowedIsMonotonic() {
	raws := []string{"", "common", "uncommon", "rare", "very rare", "legendary", "artifact"}
	for _, raw := range raws {
		for i, ceiling := range loot.RarityOrder {
			if !loot.RarityAllowed(raw, ceiling) {
				continue
			}
			for _, higher := range loot.RarityOrder[i:] {
				s.True(loot.RarityAllowed(raw, higher), "%q allowed under %s but not %s", raw, ceiling, higher)
			}
		}
	}
}

func (s *RarityTestSuite) TestAllowedRarities() {
	s.Equal([]loot.Rarity{loot.RarityCommon, loot.RarityUncommon}, loot.AllowedRarities(loot.RarityUncommon))
	s.Equal(loot.RarityOrder, loot.AllowedRarities(loot.Rarity("bogus")))
}

func (s *RarityTestSuite) TestParseRarity() {
	r, ok := loot.ParseRarity("very-rare")
	s.True(ok)
	s.Equal(loot.RarityVeryRare, r)

	r, ok = loot.ParseRarity("artifact")
	s.False(ok)
	s.Equal(loot.Rarity("Artifact"), r)
}
