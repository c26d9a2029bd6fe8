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

type SessionTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *testutils.ScriptedRoller
	world  *world.World
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()
	s.world = world.New(s.roller).
		AddPack(host.PackInfo{ID: "goods", DocumentType: host.DocumentTypeItem},
			&host.Document{ID: "silk", Name: "Silk", Rarity: "common"},
			&host.Document{ID: "ring", Name: "Ring", Rarity: "rare"},
			&host.Document{ID: "rope", Name: "Rope"},
		).
		AddPack(host.PackInfo{ID: "monsters", DocumentType: "Actor"},
			&host.Document{ID: "goblin", Name: "Goblin"},
		).
		AddPack(host.PackInfo{ID: "empty", DocumentType: host.DocumentTypeItem}).
		AddFolder("treasure", "Treasure", "").
		AddFolder("gems", "Gems", "treasure").
		AddFolder("bare", "Bare", "").
		AddItem("treasure", &host.Document{ID: "purse", Name: "Purse", Rarity: "common"}).
		AddItem("gems", &host.Document{ID: "ruby", Name: "Ruby", Rarity: "rare"}).
		AddItem("gems", &host.Document{ID: "opal", Name: "Opal", Rarity: "uncommon"}).
		AddTable(host.Table{ID: "mixed", Rows: []host.TableRow{
			{ID: "r1", Type: host.TableRowDocument, DocumentCollection: host.WorldItemCollection, DocumentID: "ruby"},
			{ID: "r2", Type: host.TableRowText, Text: "A bent nail"},
		}}, 1).
		AddTable(host.Table{ID: "text-only", Rows: []host.TableRow{
			{ID: "t1", Type: host.TableRowText, Text: "Lint"},
		}}, 1)
}

func (s *SessionTestSuite) newSession(store host.DocumentStore, policy sources.TextRowPolicy) *sources.Session {
	session, err := sources.NewSession(&sources.Config{
		Store:    store,
		Random:   dice.NewRandom(s.roller),
		TextRows: policy,
	})
	s.Require().NoError(err)
	return session
}

func (s *SessionTestSuite) TestNewSessionValidation() {
	_, err := sources.NewSession(&sources.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = sources.NewSession(&sources.Config{Store: s.world, Random: dice.NewRandom(nil), TextRows: "maybe"})
	s.Require().Error(err)
}

func (s *SessionTestSuite) TestCount() {
	session := s.newSession(s.world, "")

	testCases := []struct {
		name     string
		ref      loot.SourceRef
		expected int
	}{
		{name: "item pack", ref: loot.PackSource("goods"), expected: 3},
		{name: "actor pack", ref: loot.PackSource("monsters"), expected: 0},
		{name: "empty pack", ref: loot.PackSource("empty"), expected: 0},
		{name: "missing pack", ref: loot.PackSource("nope"), expected: 0},
		{name: "folder tree", ref: loot.FolderSource("treasure"), expected: 3},
		{name: "leaf folder", ref: loot.FolderSource("gems"), expected: 2},
		{name: "empty folder", ref: loot.FolderSource("bare"), expected: 0},
		{name: "missing folder", ref: loot.FolderSource("nope"), expected: 0},
		{name: "table counts document rows", ref: loot.TableSource("mixed"), expected: 1},
		{name: "text only table", ref: loot.TableSource("text-only"), expected: 0},
		{name: "unknown kind", ref: loot.SourceRef{Kind: "scene", ID: "x"}, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, session.Count(s.ctx, tc.ref))
		})
	}
}

func (s *SessionTestSuite) TestCountSurvivesFolderCycle() {
	s.world.LinkFolder("gems", "treasure")
	session := s.newSession(s.world, "")

	s.Equal(3, session.Count(s.ctx, loot.FolderSource("treasure")))
	s.Equal(3, session.Count(s.ctx, loot.FolderSource("gems")))
}

func (s *SessionTestSuite) TestCountIsMemoized() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	session := s.newSession(store, "")

	store.EXPECT().GetPack(s.ctx, "goods").
		Return(&host.PackInfo{ID: "goods", DocumentType: host.DocumentTypeItem}, nil).Times(1)
	store.EXPECT().GetPackIndex(s.ctx, "goods").
		Return([]host.IndexEntry{{ID: "a"}, {ID: "b"}}, nil).Times(1)

	s.Equal(2, session.Count(s.ctx, loot.PackSource("goods")))
	s.Equal(2, session.Count(s.ctx, loot.PackSource("goods")))
}

func (s *SessionTestSuite) TestCountLookupFailure() {
	ctrl := gomock.NewController(s.T())
	store := hostmock.NewMockDocumentStore(ctrl)
	session := s.newSession(store, "")

	store.EXPECT().GetTable(s.ctx, "t").Return(nil, errors.Unavailable("host offline"))

	s.Equal(0, session.Count(s.ctx, loot.TableSource("t")))
}

func (s *SessionTestSuite) TestPrefilter() {
	session := s.newSession(s.world, "")

	kept := session.Prefilter(s.ctx, []loot.SourceRef{
		loot.TableSource("mixed"),
		loot.PackSource("monsters"),
		loot.PackSource("goods"),
		loot.TableSource("mixed"),
		loot.FolderSource("bare"),
		loot.FolderSource("gems"),
	})

	s.Equal([]loot.SourceRef{
		loot.TableSource("mixed"),
		loot.PackSource("goods"),
		loot.FolderSource("gems"),
	}, kept)

	s.Empty(session.Prefilter(s.ctx, nil))
}

func (s *SessionTestSuite) TestSources() {
	session := s.newSession(s.world, "")

	srcs := session.Sources([]loot.SourceRef{
		loot.PackSource("goods"),
		{Kind: "scene", ID: "x"},
		loot.FolderSource("gems"),
		loot.TableSource("mixed"),
	})

	s.Require().Len(srcs, 3)
	s.IsType(&sources.PackSource{}, srcs[0])
	s.IsType(&sources.FolderSource{}, srcs[1])
	s.IsType(&sources.TableSource{}, srcs[2])
	s.Equal(loot.FolderSource("gems"), srcs[1].Ref())
}
