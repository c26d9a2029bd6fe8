package draft_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/clients/world"
	"github.com/KirkDiggler/rpg-loot/internal/dice"
	dicemock "github.com/KirkDiggler/rpg-loot/internal/dice/mock"
	"github.com/KirkDiggler/rpg-loot/internal/engine/draft"
	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/testutils"
)

// fakeSource returns the first of its items the predicate accepts
type fakeSource struct {
	ref   loot.SourceRef
	items []*loot.ItemDraft
	draws int
}

func (f *fakeSource) Ref() loot.SourceRef { return f.ref }

func (f *fakeSource) Count(context.Context) int { return len(f.items) }

func (f *fakeSource) DrawOne(_ context.Context, allow sources.AllowFunc) *loot.ItemDraft {
	f.draws++
	for _, item := range f.items {
		if allow(item.RarityRaw) {
			copied := *item
			return &copied
		}
	}
	return nil
}

func newFakeSource(id string, rarities ...string) *fakeSource {
	src := &fakeSource{ref: loot.PackSource(id)}
	for i, r := range rarities {
		src.items = append(src.items, &loot.ItemDraft{
			ID:        fmt.Sprintf("%s-%d", id, i),
			Name:      fmt.Sprintf("%s item %d", id, i),
			RarityRaw: r,
			SourceKey: src.ref.Key(),
		})
	}
	return src
}

type DraftEngineTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockEvaluator *dicemock.MockEvaluator
	roller        *testutils.ScriptedRoller
	engine        draft.Engine
}

func TestDraftEngineSuite(t *testing.T) {
	suite.Run(t, new(DraftEngineTestSuite))
}

func (s *DraftEngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockEvaluator = dicemock.NewMockEvaluator(s.ctrl)
	s.roller = testutils.NewScriptedRoller()

	engine, err := draft.NewEngine(&draft.Config{
		Evaluator: s.mockEvaluator,
		Random:    dice.NewRandom(s.roller),
	})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *DraftEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DraftEngineTestSuite) TestNewEngineValidation() {
	_, err := draft.NewEngine(&draft.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DraftEngineTestSuite) TestNilInput() {
	_, err := s.engine.DraftItems(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DraftEngineTestSuite) TestLiteralQuantity() {
	src := newFakeSource("goods", "common")

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{src},
		QuantityFormula: "3",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.True(out.GatePassed)
	s.Equal(3, out.Quantity)
	s.Len(out.Items, 3)
	s.Empty(out.Warnings)
}

func (s *DraftEngineTestSuite) TestZeroLiteralQuantity() {
	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
		QuantityFormula: "0",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.Empty(out.Items)
	s.Empty(out.Warnings)
}

func (s *DraftEngineTestSuite) TestRolledQuantity() {
	s.mockEvaluator.EXPECT().Roll(s.ctx, "1d4").Return(2, nil)

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
		QuantityFormula: "1d4",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.Len(out.Items, 2)
}

func (s *DraftEngineTestSuite) TestInvalidQuantityFallsBackToOne() {
	testCases := []struct {
		name    string
		formula string
		total   int
		err     error
	}{
		{name: "evaluation fails", formula: "2d", err: errors.InvalidFormula("2d", "missing die size")},
		{name: "roller fails", formula: "1d4", err: errors.Internal("roller broke")},
		{name: "zero total", formula: "1d4-4", total: 0},
		{name: "negative total", formula: "1d4-10", total: -7},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockEvaluator.EXPECT().Roll(s.ctx, tc.formula).Return(tc.total, tc.err)

			out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
				Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
				QuantityFormula: tc.formula,
				ItemChance:      100,
				MaxRarity:       loot.RarityLegendary,
			})

			s.Require().NoError(err)
			s.Equal(1, out.Quantity)
			s.Len(out.Items, 1)
			s.Require().Len(out.Warnings, 1)
			s.Equal(errors.CodeInvalidFormula, out.Warnings[0].Code)
		})
	}
}

func (s *DraftEngineTestSuite) TestQuantityIsCapped() {
	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
		QuantityFormula: "5000",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.Equal(draft.MaxQuantity, out.Quantity)
	s.Len(out.Items, draft.MaxQuantity)
}

func (s *DraftEngineTestSuite) TestItemChanceZeroNeverDrafts() {
	engine, err := draft.NewEngine(&draft.Config{Evaluator: s.mockEvaluator, Random: dice.NewRandom(nil)})
	s.Require().NoError(err)

	for range 100 {
		out, err := engine.DraftItems(s.ctx, &draft.DraftItemsInput{
			Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
			QuantityFormula: "3",
			ItemChance:      0,
			MaxRarity:       loot.RarityLegendary,
		})
		s.Require().NoError(err)
		s.False(out.GatePassed)
		s.Empty(out.Items)
	}
}

func (s *DraftEngineTestSuite) TestItemChanceHundredNeverBlocks() {
	engine, err := draft.NewEngine(&draft.Config{Evaluator: s.mockEvaluator, Random: dice.NewRandom(testutils.MaxRoller{})})
	s.Require().NoError(err)

	out, err := engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
		QuantityFormula: "2",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.True(out.GatePassed)
	s.Len(out.Items, 2)
}

func (s *DraftEngineTestSuite) TestItemGateBoundary() {
	s.roller.Push(41)

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{newFakeSource("goods", "common")},
		QuantityFormula: "1",
		ItemChance:      40,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.False(out.GatePassed)
	s.Empty(out.Items)
}

func (s *DraftEngineTestSuite) TestNoSources() {
	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		QuantityFormula: "3",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
	})

	s.Require().NoError(err)
	s.NotNil(out.Items)
	s.Empty(out.Items)
	s.Empty(out.Warnings)
	s.Empty(s.roller.Calls)
}

func (s *DraftEngineTestSuite) TestFallsThroughToNextSource() {
	empty := newFakeSource("empty", "legendary")
	full := newFakeSource("full", "common")

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{empty, full},
		QuantityFormula: "4",
		ItemChance:      100,
		MaxRarity:       loot.RarityUncommon,
	})

	s.Require().NoError(err)
	s.Len(out.Items, 4)
	for _, item := range out.Items {
		s.Equal("pack:full", item.SourceKey)
	}
	s.Empty(out.Warnings)
}

func (s *DraftEngineTestSuite) TestUnfilledSlotsWarnOnce() {
	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{newFakeSource("a", "rare"), newFakeSource("b", "legendary")},
		QuantityFormula: "3",
		ItemChance:      100,
		MaxRarity:       loot.RarityCommon,
	})

	s.Require().NoError(err)
	s.Empty(out.Items)
	s.Require().Len(out.Warnings, 1)
	s.Equal(errors.CodeNoQualifyingItems, out.Warnings[0].Code)
	s.Contains(out.Warnings[0].Message, "3 of 3")
}

func (s *DraftEngineTestSuite) TestNeverMoreThanQuantity() {
	engine, err := draft.NewEngine(&draft.Config{Evaluator: s.mockEvaluator, Random: dice.NewRandom(nil)})
	s.Require().NoError(err)

	for quantity := 0; quantity <= 12; quantity++ {
		out, err := engine.DraftItems(s.ctx, &draft.DraftItemsInput{
			Sources: []sources.ItemSource{
				newFakeSource("a", "common", "rare"),
				newFakeSource("b", "uncommon"),
				newFakeSource("c", "legendary"),
			},
			QuantityFormula: fmt.Sprint(quantity),
			ItemChance:      100,
			MaxRarity:       loot.RarityRare,
			RarityWeights:   loot.DefaultRarityWeights(),
		})
		s.Require().NoError(err)
		s.LessOrEqual(len(out.Items), quantity)
		for _, item := range out.Items {
			s.True(loot.RarityAllowed(item.RarityRaw, loot.RarityRare))
		}
	}
}

func (s *DraftEngineTestSuite) TestWeightedRarityTargetsRarity() {
	mixed := newFakeSource("mixed", "common", "rare")

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{mixed},
		QuantityFormula: "2",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
		RarityWeights:   map[loot.Rarity]int{loot.RarityRare: 1},
	})

	s.Require().NoError(err)
	s.Require().Len(out.Items, 2)
	for _, item := range out.Items {
		s.Equal(loot.RarityRare, item.Rarity())
	}
}

func (s *DraftEngineTestSuite) TestWeightedRarityFallsBackToCeiling() {
	commons := newFakeSource("commons", "common")

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{commons},
		QuantityFormula: "1",
		ItemChance:      100,
		MaxRarity:       loot.RarityLegendary,
		RarityWeights:   map[loot.Rarity]int{loot.RarityLegendary: 1},
	})

	s.Require().NoError(err)
	s.Require().Len(out.Items, 1)
	s.Equal(loot.RarityCommon, out.Items[0].Rarity())
	s.Equal(2, commons.draws)
}

func (s *DraftEngineTestSuite) TestWeightsAboveCeilingIgnored() {
	mixed := newFakeSource("mixed", "rare", "common")

	out, err := s.engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         []sources.ItemSource{mixed},
		QuantityFormula: "1",
		ItemChance:      100,
		MaxRarity:       loot.RarityUncommon,
		RarityWeights:   map[loot.Rarity]int{loot.RarityRare: 100},
	})

	s.Require().NoError(err)
	s.Require().Len(out.Items, 1)
	s.Equal(loot.RarityCommon, out.Items[0].Rarity())
	s.Equal(1, mixed.draws)
}

// One pack of ten Common items, ceiling Common, quantity 3.
func (s *DraftEngineTestSuite) TestPackOfCommonsScenario() {
	docs := make([]*host.Document, 10)
	for i := range docs {
		docs[i] = &host.Document{ID: fmt.Sprintf("item-%d", i), Name: fmt.Sprintf("Item %d", i), Rarity: "Common"}
	}
	random := dice.NewRandom(nil)
	w := world.New(nil).AddPack(host.PackInfo{ID: "commons", DocumentType: host.DocumentTypeItem}, docs...)

	session, err := sources.NewSession(&sources.Config{Store: w, Random: random})
	s.Require().NoError(err)
	refs := session.Prefilter(s.ctx, []loot.SourceRef{loot.PackSource("commons")})
	s.Require().Len(refs, 1)

	engine, err := draft.NewEngine(&draft.Config{Evaluator: s.mockEvaluator, Random: random})
	s.Require().NoError(err)

	out, err := engine.DraftItems(s.ctx, &draft.DraftItemsInput{
		Sources:         session.Sources(refs),
		QuantityFormula: "3",
		ItemChance:      100,
		MaxRarity:       loot.RarityCommon,
	})

	s.Require().NoError(err)
	s.Require().Len(out.Items, 3)
	for _, item := range out.Items {
		s.Equal(loot.RarityCommon, item.Rarity())
		s.Equal("commons", item.OriginCollection)
	}
}
