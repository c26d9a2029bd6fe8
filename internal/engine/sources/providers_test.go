package sources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	hostmock "github.com/KirkDiggler/rpg-loot/internal/clients/host/mock"
	"github.com/KirkDiggler/rpg-loot/internal/clients/world"
	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/testutils"
)

type ProvidersTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *testutils.ScriptedRoller
	world  *world.World
}

func TestProvidersSuite(t *testing.T) {
	suite.Run(t, new(ProvidersTestSuite))
}

func (s *ProvidersTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()
	s.world = world.New(s.roller).
		AddPack(host.PackInfo{ID: "goods", DocumentType: host.DocumentTypeItem},
			&host.Document{ID: "silk", Name: "Silk", Rarity: "common", System: map[string]any{"price": 10}},
			&host.Document{ID: "ring", Name: "Ring", Rarity: "rare"},
		).
		AddFolder("gems", "Gems", "").
		AddItem("gems", &host.Document{ID: "ruby", Name: "Ruby", Rarity: "rare"}).
		AddItem("gems", &host.Document{ID: "opal", Name: "Opal", Rarity: "uncommon"}).
		AddItem("gems", &host.Document{ID: "quartz", Name: "Quartz", Rarity: "common"}).
		AddTable(host.Table{ID: "mixed", Rows: []host.TableRow{
			{ID: "r1", Type: host.TableRowDocument, DocumentCollection: host.WorldItemCollection, DocumentID: "ruby"},
			{ID: "r2", Type: host.TableRowText, Text: "A bent nail"},
		}}, 1).
		AddTable(host.Table{ID: "pack-rows", Rows: []host.TableRow{
			{ID: "p1", Type: host.TableRowDocument, DocumentCollection: "goods", DocumentID: "silk"},
		}}, 1)
}

func (s *ProvidersTestSuite) session(store host.DocumentStore, policy sources.TextRowPolicy) *sources.Session {
	session, err := sources.NewSession(&sources.Config{
		Store:    store,
		Random:   dice.NewRandom(s.roller),
		TextRows: policy,
	})
	s.Require().NoError(err)
	return session
}

func allowUpTo(maxRarity loot.Rarity) sources.AllowFunc {
	return func(raw string) bool { return loot.RarityAllowed(raw, maxRarity) }
}

func (s *ProvidersTestSuite) TestPackDrawOne() {
	src := s.session(s.world, "").Source(loot.PackSource("goods"))

	// index pick 2 is the ring, pick 1 the silk
	s.roller.Push(2, 1)
	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityCommon))

	s.Require().NotNil(draft)
	s.Equal("silk", draft.ID)
	s.Equal("goods", draft.OriginCollection)
	s.Equal("pack:goods", draft.SourceKey)
	s.Equal(loot.RarityCommon, draft.Rarity())
	s.Equal(map[string]any{"price": 10}, draft.Data["system"])
}

func (s *ProvidersTestSuite) TestPackDrawOneGivesUpAfterAttempts() {
	src := s.session(s.world, "").Source(loot.PackSource("goods"))

	s.roller.Push(2, 2, 2, 2, 2, 1)
	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityCommon))

	s.Nil(draft)
	s.Equal(1, s.roller.Remaining())
}

func (s *ProvidersTestSuite) TestPackDrawOneSkipsUnresolvableEntries() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	src := s.session(store, "").Source(loot.PackSource("p"))

	store.EXPECT().GetPackIndex(s.ctx, "p").Return([]host.IndexEntry{{ID: "a"}, {ID: "b"}}, nil)
	gomock.InOrder(
		store.EXPECT().GetDocument(s.ctx, "p", "a").Return(nil, errors.NotFound("gone")),
		store.EXPECT().GetDocument(s.ctx, "p", "b").Return(&host.Document{ID: "b", Name: "B"}, nil),
	)

	s.roller.Push(1, 2)
	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityLegendary))

	s.Require().NotNil(draft)
	s.Equal("b", draft.ID)
}

func (s *ProvidersTestSuite) TestPackDrawOneSkipsMissingDocuments() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	src := s.session(store, "").Source(loot.PackSource("p"))

	store.EXPECT().GetPackIndex(s.ctx, "p").Return([]host.IndexEntry{{ID: "a"}, {ID: "b"}}, nil)
	gomock.InOrder(
		store.EXPECT().GetDocument(s.ctx, "p", "a").Return(nil, nil),
		store.EXPECT().GetDocument(s.ctx, "p", "b").Return(&host.Document{ID: "b", Name: "B"}, nil),
	)

	s.roller.Push(1, 2)
	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityLegendary))

	s.Require().NotNil(draft)
	s.Equal("b", draft.ID)
}

func (s *ProvidersTestSuite) TestTableSkipsMissingDocuments() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	src := s.session(store, sources.TextRowsSkip).Source(loot.TableSource("t"))

	row := host.TableRow{ID: "r1", Type: host.TableRowDocument, DocumentCollection: "goods", DocumentID: "gone"}
	store.EXPECT().GetTable(s.ctx, "t").Return(nil, nil)
	store.EXPECT().RollTable(s.ctx, "t").Return(nil, nil)
	store.EXPECT().RollTable(s.ctx, "t").Return(&host.TableRollResult{Rows: []host.TableRow{row}}, nil).Times(sources.DrawAttempts - 1)
	store.EXPECT().GetDocument(s.ctx, "goods", "gone").Return(nil, nil).Times(sources.DrawAttempts - 1)

	s.Equal(0, src.Count(s.ctx))
	s.Nil(src.DrawOne(s.ctx, allowUpTo(loot.RarityLegendary)))
}

func (s *ProvidersTestSuite) TestMissingPackAndFolderCountZero() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	session := s.session(store, "")

	store.EXPECT().GetPack(s.ctx, "p").Return(nil, nil)
	store.EXPECT().GetFolder(s.ctx, "f").Return(nil, nil)

	s.Equal(0, session.Source(loot.PackSource("p")).Count(s.ctx))
	s.Equal(0, session.Source(loot.FolderSource("f")).Count(s.ctx))
}

func (s *ProvidersTestSuite) TestPackDrawOneIndexFailure() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	src := s.session(store, "").Source(loot.PackSource("p"))

	store.EXPECT().GetPackIndex(s.ctx, "p").Return(nil, errors.Unavailable("offline"))

	s.Nil(src.DrawOne(s.ctx, allowUpTo(loot.RarityLegendary)))
}

func (s *ProvidersTestSuite) TestFolderDrawOneFiltersBeforePicking() {
	src := s.session(s.world, "").Source(loot.FolderSource("gems"))

	// allowed set is [opal, quartz]; pick 2 is quartz
	s.roller.Push(2)
	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityUncommon))

	s.Require().NotNil(draft)
	s.Equal("quartz", draft.ID)
	s.Empty(draft.OriginCollection)
	s.Equal("folder:gems", draft.SourceKey)
}

func (s *ProvidersTestSuite) TestFolderDrawOneNothingAllowed() {
	s.world.AddFolder("junk", "Junk", "").
		AddItem("junk", &host.Document{ID: "crown", Name: "Crown", Rarity: "legendary"})
	src := s.session(s.world, "").Source(loot.FolderSource("junk"))

	s.Nil(src.DrawOne(s.ctx, allowUpTo(loot.RarityRare)))
	s.Nil(s.session(s.world, "").Source(loot.FolderSource("missing")).DrawOne(s.ctx, allowUpTo(loot.RarityRare)))
}

func (s *ProvidersTestSuite) TestTableDrawOneResolvesPackRows() {
	src := s.session(s.world, "").Source(loot.TableSource("pack-rows"))

	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityCommon))

	s.Require().NotNil(draft)
	s.Equal("silk", draft.ID)
	s.Equal("goods", draft.OriginCollection)
	s.Equal("table:pack-rows", draft.SourceKey)
}

func (s *ProvidersTestSuite) TestTableRejectsDisallowedDocumentRow() {
	src := s.session(s.world, sources.TextRowsAsCommon).Source(loot.TableSource("mixed"))

	// first roll lands on the rare ruby, second on the text row
	s.roller.Push(1, 2)
	draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityUncommon))

	s.Require().NotNil(draft)
	s.Equal("A bent nail", draft.Name)
	s.Equal(loot.RarityCommon, draft.Rarity())
	s.Equal(true, draft.Data["text"])
}

func (s *ProvidersTestSuite) TestTableNeverReturnsDisallowedRow() {
	for _, policy := range []sources.TextRowPolicy{sources.TextRowsAsCommon, sources.TextRowsSkip} {
		s.Run(string(policy), func() {
			w := world.New(nil).
				AddItem("", &host.Document{ID: "ruby", Name: "Ruby", Rarity: "Rare"}).
				AddTable(host.Table{ID: "mixed", Rows: []host.TableRow{
					{ID: "r1", Type: host.TableRowDocument, DocumentCollection: host.WorldItemCollection, DocumentID: "ruby"},
					{ID: "r2", Type: host.TableRowText, Text: "A bent nail"},
				}}, 1)
			session, err := sources.NewSession(&sources.Config{Store: w, Random: dice.NewRandom(nil), TextRows: policy})
			s.Require().NoError(err)
			src := session.Source(loot.TableSource("mixed"))

			for range 50 {
				draft := src.DrawOne(s.ctx, allowUpTo(loot.RarityUncommon))
				if draft == nil {
					continue
				}
				s.NotEqual("ruby", draft.ID)
				s.Equal(sources.TextRowsAsCommon, policy)
				s.True(loot.RarityAllowed(draft.RarityRaw, loot.RarityUncommon))
			}
		})
	}
}

func (s *ProvidersTestSuite) TestTableSkipPolicyExhaustsAttempts() {
	src := s.session(s.world, sources.TextRowsSkip).Source(loot.TableSource("mixed"))

	s.roller.Push(2, 2, 2, 2, 2)
	s.Nil(src.DrawOne(s.ctx, allowUpTo(loot.RarityLegendary)))
	s.Equal(0, s.roller.Remaining())
}

func (s *ProvidersTestSuite) TestTextRowsRespectCeilingBelowCommon() {
	src := s.session(s.world, sources.TextRowsAsCommon).Source(loot.TableSource("mixed"))
	never := func(string) bool { return false }

	s.Nil(src.DrawOne(s.ctx, never))
}

func (s *ProvidersTestSuite) TestTableRollFailureRetries() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	src := s.session(store, "").Source(loot.TableSource("t"))

	store.EXPECT().RollTable(s.ctx, "t").Return(nil, errors.Unavailable("offline")).Times(sources.DrawAttempts)

	s.Nil(src.DrawOne(s.ctx, allowUpTo(loot.RarityLegendary)))
}
