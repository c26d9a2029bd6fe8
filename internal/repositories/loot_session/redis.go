package lootsession

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-loot/internal/redis"
)

// Key pattern: loot_session:{id}
const sessionKeyPrefix = "loot_session:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis backed preview session repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	session := newSession(input, now, ttl)
	if err := r.store(ctx, session, ttl); err != nil {
		return nil, err
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := sessionKeyPrefix + input.ID
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("loot session %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get loot session from Redis")
	}

	var session PreviewSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal loot session")
	}

	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("loot session %s has expired", input.ID)
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Update(ctx context.Context, session *PreviewSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	if !now.Before(session.ExpiresAt) {
		return errors.FailedPrecondition(errSessionExpired)
	}

	return r.store(ctx, session, session.ExpiresAt.Sub(now))
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	deleted := 0
	if out, err := r.Get(ctx, GetInput(input)); err == nil {
		deleted = len(out.Session.Results)
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.ID).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete loot session from Redis")
	}

	return &DeleteOutput{ResultsDeleted: deleted}, nil
}

func (r *redisRepository) store(ctx context.Context, session *PreviewSession, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal loot session")
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store loot session in Redis")
	}
	return nil
}

func newSession(input CreateInput, now time.Time, ttl time.Duration) *PreviewSession {
	results := input.Results
	if results == nil {
		results = make(map[string]*loot.GenerationResult)
	}
	return &PreviewSession{
		ID:        input.ID,
		Tokens:    input.Tokens,
		Results:   results,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
