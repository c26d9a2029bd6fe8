package lootsettings

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-loot/internal/redis"
)

// Key pattern: loot_settings:{world_id}
const settingsKeyPrefix = "loot_settings:"

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

// NewRedisRepository creates a Redis backed settings repository
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

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	raw, err := r.client.Get(ctx, buildKey(input.WorldID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("loot settings for world %s not found", input.WorldID)
		}
		return nil, errors.Wrap(err, "failed to get loot settings from Redis")
	}

	settings, err := decode(raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Settings: settings}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}
	if input.Settings == nil {
		return nil, errors.InvalidArgument(errSettingsNil)
	}

	stored := *input.Settings
	stored.UpdatedAt = r.clock.Now()

	raw, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal loot settings")
	}

	// Settings never expire
	if err := r.client.Set(ctx, buildKey(input.WorldID), raw, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store loot settings in Redis")
	}

	return &SaveOutput{Settings: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	if err := r.client.Del(ctx, buildKey(input.WorldID)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete loot settings from Redis")
	}

	return &DeleteOutput{}, nil
}

func buildKey(worldID string) string {
	return settingsKeyPrefix + worldID
}
