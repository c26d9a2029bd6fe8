package lootsession_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	lerrors "github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	lootsession "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_session"
)

type RedisFailureTestSuite struct {
	suite.Suite
	ctx   context.Context
	mock  redismock.ClientMock
	clock *clock.Fixed
	repo  lootsession.Repository
}

func (s *RedisFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	client, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := lootsession.NewRedisRepository(&lootsession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisFailureTestSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func (s *RedisFailureTestSuite) TestNewRedisRepositoryValidation() {
	_, err := lootsession.NewRedisRepository(nil)
	s.True(lerrors.IsInvalidArgument(err))

	_, err = lootsession.NewRedisRepository(&lootsession.Config{})
	s.True(lerrors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Client")
}

func (s *RedisFailureTestSuite) TestGetRedisError() {
	s.mock.ExpectGet("loot_session:sess_1").SetErr(errors.New("connection reset"))

	_, err := s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_1"})
	s.Require().Error(err)
	s.True(lerrors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestGetCorruptPayload() {
	s.mock.ExpectGet("loot_session:sess_1").SetVal("{not json")

	_, err := s.repo.Get(s.ctx, lootsession.GetInput{ID: "sess_1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "unmarshal")
}

func (s *RedisFailureTestSuite) TestCreateRedisError() {
	s.mock.Regexp().
		ExpectSet("loot_session:sess_1", ".*", lootsession.DefaultTTL).
		SetErr(errors.New("OOM command not allowed"))

	_, err := s.repo.Create(s.ctx, lootsession.CreateInput{ID: "sess_1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to store loot session")
}

func (s *RedisFailureTestSuite) TestDeleteRedisError() {
	session := &lootsession.PreviewSession{
		ID:        "sess_1",
		Results:   map[string]*loot.GenerationResult{"tok": {TokenID: "tok"}},
		CreatedAt: s.clock.Now(),
		ExpiresAt: s.clock.Now().Add(time.Minute),
	}
	raw, err := json.Marshal(session)
	s.Require().NoError(err)

	s.mock.ExpectGet("loot_session:sess_1").SetVal(string(raw))
	s.mock.ExpectDel("loot_session:sess_1").SetErr(errors.New("read only replica"))

	_, err = s.repo.Delete(s.ctx, lootsession.DeleteInput{ID: "sess_1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to delete loot session")
}
