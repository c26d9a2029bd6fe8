// Package settings resolves effective loot configuration from saved world
// settings and moves source selections in and out of a world.
package settings

import (
	"context"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

//go:generate mockgen -destination=mock/mock_service.go -package=settingsmock github.com/KirkDiggler/rpg-loot/internal/services/settings Service

// Service defines loot settings access
type Service interface {
	// ResolveLootConfig merges token overrides, the creature type override
	// and world defaults field by field. An empty creatureType falls back to
	// the token's creature type.
	ResolveLootConfig(ctx context.Context, creatureType string, token *loot.Token) (*loot.LootConfiguration, error)

	// GetGenerationSettings returns the world level switches
	GetGenerationSettings(ctx context.Context) (*loot.GenerationSettings, error)

	GetWorldSettings(ctx context.Context) (*GetWorldSettingsOutput, error)
	UpdateWorldSettings(ctx context.Context, input *UpdateWorldSettingsInput) (*UpdateWorldSettingsOutput, error)

	// ExportSources serializes the source selection and creature type
	// overrides as JSON
	ExportSources(ctx context.Context) (*ExportSourcesOutput, error)

	// ImportSources replaces the source selection and creature type
	// overrides. Sources the host does not know are dropped with a warning.
	ImportSources(ctx context.Context, input *ImportSourcesInput) (*ImportSourcesOutput, error)
}

// GetWorldSettingsOutput contains the saved settings, or defaults
type GetWorldSettingsOutput struct {
	Settings *loot.WorldSettings
	// IsDefault is true when the world never saved settings
	IsDefault bool
}

// UpdateWorldSettingsInput replaces the world's settings
type UpdateWorldSettingsInput struct {
	Settings *loot.WorldSettings
}

// UpdateWorldSettingsOutput contains the stored settings
type UpdateWorldSettingsOutput struct {
	Settings *loot.WorldSettings
}

// ExportSourcesOutput contains the serialized selection
type ExportSourcesOutput struct {
	Data      []byte
	Selection *loot.SourceSelection
}

// ImportSourcesInput contains a serialized selection
type ImportSourcesInput struct {
	Data []byte
}

// ImportSourcesOutput reports what was kept and dropped
type ImportSourcesOutput struct {
	Imported      int
	Dropped       []loot.SourceRef
	CreatureTypes int
	Warnings      []loot.Warning
}
