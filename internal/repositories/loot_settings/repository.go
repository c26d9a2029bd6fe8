// Package lootsettings persists per-world loot settings
package lootsettings

import (
	"context"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=lootsettingsmock github.com/KirkDiggler/rpg-loot/internal/repositories/loot_settings Repository

// GetInput identifies a world
type GetInput struct {
	WorldID string
}

// GetOutput contains the saved settings
type GetOutput struct {
	Settings *loot.WorldSettings
}

// SaveInput contains settings to store for a world
type SaveInput struct {
	WorldID  string
	Settings *loot.WorldSettings
}

// SaveOutput contains the stored settings
type SaveOutput struct {
	Settings *loot.WorldSettings
}

// DeleteInput identifies a world
type DeleteInput struct {
	WorldID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// Repository defines storage for world loot settings
type Repository interface {
	// Get returns NOT_FOUND when the world never saved settings
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the world's settings and stamps UpdatedAt
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete resets the world to defaults
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errWorldIDEmpty = "world ID cannot be empty"
	errSettingsNil  = "settings cannot be nil"
)
