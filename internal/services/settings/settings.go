package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	lootsettings "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_settings"
)

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 30 * time.Second
)

// Config holds the dependencies for the settings service
type Config struct {
	Repository lootsettings.Repository
	WorldID    string

	// Checker validates imported sources. Without one every source is kept.
	Checker SourceChecker

	Clock     clock.Clock
	CacheSize int
	CacheTTL  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	errors.ValidateRequired("WorldID", c.WorldID, vb)

	return vb.Build()
}

type service struct {
	repo     lootsettings.Repository
	worldID  string
	checker  SourceChecker
	clock    clock.Clock
	validate *validator.Validate
	cache    *expirable.LRU[string, *loot.WorldSettings]
}

// New creates a settings service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &service{
		repo:     cfg.Repository,
		worldID:  cfg.WorldID,
		checker:  cfg.Checker,
		clock:    clk,
		validate: validator.New(),
		cache:    expirable.NewLRU[string, *loot.WorldSettings](size, nil, ttl),
	}, nil
}

// load returns the cached settings. Callers must not mutate the result.
func (s *service) load(ctx context.Context) (*loot.WorldSettings, bool, error) {
	if cached, ok := s.cache.Get(s.worldID); ok {
		return cached, cached.UpdatedAt.IsZero(), nil
	}

	out, err := s.repo.Get(ctx, lootsettings.GetInput{WorldID: s.worldID})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, false, errors.Wrap(err, "failed to load loot settings")
		}
		slog.Debug("No loot settings saved, using defaults", "world_id", s.worldID)
		defaults := loot.DefaultWorldSettings()
		s.cache.Add(s.worldID, defaults)
		return defaults, true, nil
	}

	s.cache.Add(s.worldID, out.Settings)
	return out.Settings, false, nil
}

func (s *service) ResolveLootConfig(ctx context.Context, creatureType string, token *loot.Token) (*loot.LootConfiguration, error) {
	world, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if creatureType == "" && token != nil {
		creatureType = token.EffectiveCreatureType()
	}

	var overrides *loot.TokenOverrides
	if token != nil && token.Overrides != nil && token.Overrides.Enabled {
		overrides = token.Overrides
	}

	return Resolve(world, lookupCreatureType(world, creatureType), overrides), nil
}

func (s *service) GetGenerationSettings(ctx context.Context) (*loot.GenerationSettings, error) {
	world, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	gen := world.Generation
	return &gen, nil
}

func (s *service) GetWorldSettings(ctx context.Context) (*GetWorldSettingsOutput, error) {
	world, isDefault, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	copied, err := cloneSettings(world)
	if err != nil {
		return nil, err
	}
	return &GetWorldSettingsOutput{Settings: copied, IsDefault: isDefault}, nil
}

func (s *service) UpdateWorldSettings(ctx context.Context, input *UpdateWorldSettingsInput) (*UpdateWorldSettingsOutput, error) {
	if input == nil || input.Settings == nil {
		return nil, errors.InvalidArgument("settings are required")
	}
	if err := s.validateSettings(input.Settings); err != nil {
		return nil, err
	}

	out, err := s.save(ctx, input.Settings)
	if err != nil {
		return nil, err
	}

	slog.Info("Loot settings updated",
		"world_id", s.worldID,
		"sources", len(out.Defaults.Sources),
		"creature_types", len(out.CreatureTypes))

	return &UpdateWorldSettingsOutput{Settings: out}, nil
}

func (s *service) save(ctx context.Context, settings *loot.WorldSettings) (*loot.WorldSettings, error) {
	s.cache.Remove(s.worldID)

	out, err := s.repo.Save(ctx, lootsettings.SaveInput{WorldID: s.worldID, Settings: settings})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save loot settings")
	}
	return out.Settings, nil
}

func (s *service) validateSettings(settings *loot.WorldSettings) error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePercent("defaults.item_chance", settings.Defaults.ItemChance, vb)
	errors.ValidatePercent("defaults.currency_chance", settings.Defaults.CurrencyChance, vb)

	for weightRarity, weight := range settings.Defaults.RarityWeights {
		if weightRarity.Rank() < 0 {
			vb.Fieldf("defaults.rarity_weights", "unknown rarity %q", weightRarity)
		}
		if weight < 0 {
			vb.Fieldf("defaults.rarity_weights", "weight for %s must not be negative", weightRarity)
		}
	}

	switch sources.TextRowPolicy(settings.Generation.TextRows) {
	case "", sources.TextRowsAsCommon, sources.TextRowsSkip:
	default:
		vb.Fieldf("generation.text_rows", "must be %s or %s, got %q",
			sources.TextRowsAsCommon, sources.TextRowsSkip, settings.Generation.TextRows)
	}

	for name, override := range settings.CreatureTypes {
		if strings.TrimSpace(name) == "" {
			vb.Field("creature_types", "creature type name is required")
		}
		if override == nil {
			continue
		}
		if override.ItemChance != nil {
			errors.ValidatePercent("creature_types."+name+".item_chance", *override.ItemChance, vb)
		}
		if override.CurrencyChance != nil {
			errors.ValidatePercent("creature_types."+name+".currency_chance", *override.CurrencyChance, vb)
		}
	}

	if err := vb.Build(); err != nil {
		return err
	}

	for _, ref := range settings.Defaults.Sources {
		if err := s.validate.Struct(ref); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid source "+ref.Key())
		}
	}
	return nil
}

func lookupCreatureType(world *loot.WorldSettings, creatureType string) *loot.CreatureTypeOverride {
	if creatureType == "" || len(world.CreatureTypes) == 0 {
		return nil
	}
	if override, ok := world.CreatureTypes[creatureType]; ok {
		return override
	}
	want := strings.ToLower(strings.TrimSpace(creatureType))
	for name, override := range world.CreatureTypes {
		if strings.ToLower(name) == want {
			return override
		}
	}
	return nil
}

func cloneSettings(in *loot.WorldSettings) (*loot.WorldSettings, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy loot settings")
	}
	var out loot.WorldSettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "failed to copy loot settings")
	}
	if out.CreatureTypes == nil {
		out.CreatureTypes = make(map[string]*loot.CreatureTypeOverride)
	}
	return &out, nil
}
