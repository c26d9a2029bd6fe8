package lootsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	lootsession "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_session"
	"github.com/KirkDiggler/rpg-loot/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fixed
	newRepo func(*testing.T, *clock.Fixed) lootsession.Repository
	repo    lootsession.Repository
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	s.repo = s.newRepo(s.T(), s.clock)
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c *clock.Fixed) lootsession.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			repo, err := lootsession.NewRedisRepository(&lootsession.Config{
				Client: client,
				Clock:  c,
			})
			require.NoError(t, err)
			return repo
		},
	})
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T, c *clock.Fixed) lootsession.Repository {
			return lootsession.NewMemoryRepository(c)
		},
	})
}

func (s *RepositoryTestSuite) sampleInput(id string) lootsession.CreateInput {
	return lootsession.CreateInput{
		ID: id,
		Tokens: []*loot.Token{
			{ID: "tok_goblin", Name: "Goblin", ActorID: "act_goblin"},
			{ID: "tok_orc", Name: "Orc", ActorID: "act_orc"},
		},
		Results: map[string]*loot.GenerationResult{
			"tok_goblin": {
				TokenID:  "tok_goblin",
				Items:    []*loot.ItemDraft{{ID: "dagger", Name: "Dagger", RarityRaw: "common"}},
				Currency: loot.CurrencyBundle{Silver: 4},
			},
			"tok_orc": {TokenID: "tok_orc"},
		},
		TTL: 10 * time.Minute,
	}
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, s.sampleInput("sess_1"))
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), created.Session.CreatedAt)
	s.Equal(s.clock.Now().Add(10*time.Minute), created.Session.ExpiresAt)

	got, err := s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Len(got.Session.Results, 2)
	s.Equal("Dagger", got.Session.Results["tok_goblin"].Items[0].Name)
	s.Equal(4, got.Session.Results["tok_goblin"].Currency.Silver)

	ordered := got.Session.OrderedResults()
	s.Require().Len(ordered, 2)
	s.Equal("tok_goblin", ordered[0].TokenID)
	s.Equal("tok_orc", ordered[1].TokenID)
	s.Equal("Orc", got.Session.Token("tok_orc").Name)
	s.Nil(got.Session.Token("missing"))
}

func (s *RepositoryTestSuite) TestCreateDefaultsTTL() {
	input := s.sampleInput("sess_ttl")
	input.TTL = 0

	created, err := s.repo.Create(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(lootsession.DefaultTTL), created.Session.ExpiresAt)
}

func (s *RepositoryTestSuite) TestCreateWithoutResults() {
	input := s.sampleInput("sess_empty")
	input.Results = nil

	created, err := s.repo.Create(s.ctx, input)
	s.Require().NoError(err)
	s.NotNil(created.Session.Results)

	got, err := s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_empty"})
	s.Require().NoError(err)
	s.Require().NotNil(got.Session.Results)
	s.Empty(got.Session.OrderedResults())

	got.Session.Results["tok_orc"] = &loot.GenerationResult{TokenID: "tok_orc"}
	s.Require().NoError(s.repo.Update(s.ctx, got.Session))
}

func (s *RepositoryTestSuite) TestCreateRequiresID() {
	_, err := s.repo.Create(s.ctx, lootsession.CreateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, lootsession.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Create(s.ctx, s.sampleInput("sess_old"))
	s.Require().NoError(err)

	s.clock.Advance(11 * time.Minute)

	_, err = s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_old"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdateReplacesResult() {
	created, err := s.repo.Create(s.ctx, s.sampleInput("sess_up"))
	s.Require().NoError(err)

	session := created.Session
	session.Results["tok_orc"] = &loot.GenerationResult{
		TokenID:  "tok_orc",
		Currency: loot.CurrencyBundle{Gold: 7},
	}

	s.clock.Advance(time.Minute)
	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err := s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_up"})
	s.Require().NoError(err)
	s.Equal(7, got.Session.Results["tok_orc"].Currency.Gold)
	s.Equal(created.Session.ExpiresAt, got.Session.ExpiresAt)
}

func (s *RepositoryTestSuite) TestUpdateExpired() {
	created, err := s.repo.Create(s.ctx, s.sampleInput("sess_late"))
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	err = s.repo.Update(s.ctx, created.Session)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *RepositoryTestSuite) TestUpdateNil() {
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, s.sampleInput("sess_del"))
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, lootsession.DeleteInput{ID: "sess_del"})
	s.Require().NoError(err)
	s.Equal(2, out.ResultsDeleted)

	_, err = s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_del"})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.Delete(s.ctx, lootsession.DeleteInput{ID: "sess_del"})
	s.Require().NoError(err)
	s.Zero(out.ResultsDeleted)
}
