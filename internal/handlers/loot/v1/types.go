package v1

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// GenerateLootRequest lists the tokens to generate loot for
type GenerateLootRequest struct {
	Tokens []*loot.Token `json:"tokens"`
}

// GenerateLootResponse holds one result per requested token
type GenerateLootResponse struct {
	SessionID string                   `json:"session_id,omitempty"`
	Applied   bool                     `json:"applied"`
	Results   []*loot.GenerationResult `json:"results"`
}

// SessionRequest identifies a preview session and optionally one token
type SessionRequest struct {
	SessionID string `json:"session_id"`
	TokenID   string `json:"token_id,omitempty"`
}

// RegenerateLootResponse holds the fresh result
type RegenerateLootResponse struct {
	Result *loot.GenerationResult `json:"result"`
}

// ApplyLootResponse reports the applied session
type ApplyLootResponse struct {
	Applied int      `json:"applied"`
	Skipped []string `json:"skipped,omitempty"`
}

// DiscardLootResponse reports how many results were dropped
type DiscardLootResponse struct {
	Discarded int `json:"discarded"`
}

// TokenCreatedRequest carries a newly placed token
type TokenCreatedRequest struct {
	Token *loot.Token `json:"token"`
}

// TokenCreatedResponse reports the auto loot outcome
type TokenCreatedResponse struct {
	Result     *loot.GenerationResult `json:"result,omitempty"`
	Applied    bool                   `json:"applied"`
	SkipReason string                 `json:"skip_reason,omitempty"`
}

// WorldSettingsMessage carries world settings in both directions
type WorldSettingsMessage struct {
	Settings  *loot.WorldSettings `json:"settings"`
	IsDefault bool                `json:"is_default,omitempty"`
}

// ExportSourcesResponse carries the exported selection
type ExportSourcesResponse struct {
	Selection *loot.SourceSelection `json:"selection"`
}

// ImportSourcesRequest carries a selection as an object
type ImportSourcesRequest struct {
	Selection json.RawMessage `json:"selection"`
}

// ImportSourcesResponse reports what was kept and dropped
type ImportSourcesResponse struct {
	Imported      int              `json:"imported"`
	CreatureTypes int              `json:"creature_types"`
	Dropped       []loot.SourceRef `json:"dropped,omitempty"`
	Warnings      []loot.Warning   `json:"warnings,omitempty"`
}
