// Package assignment runs loot generation for tokens and hands the results
// to a preview session or straight to the actors' inventories.
package assignment

//go:generate mockgen -destination=mock/mock_service.go -package=assignmentmock github.com/KirkDiggler/rpg-loot/internal/orchestrators/assignment Service,ConfigStore,Inventory

import (
	"context"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// Event types published on the event bus
const (
	EventLootGenerated = "loot.generated"
	EventLootApplied   = "loot.applied"
	EventTokenCreated  = "token.created"
)

// Event context keys
const (
	ContextSessionID = "session_id"
	ContextItemCount = "item_count"
	ContextCurrency  = "currency"
	ContextSummary   = "summary"
)

// ActorTypeNPC is the only actor type auto-loot applies to
const ActorTypeNPC = "npc"

// Service defines loot assignment operations
type Service interface {
	// GenerateLoot runs every token and either stores a preview session or
	// applies the results, depending on the world's preview setting
	GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error)

	// RegenerateLoot re-runs one token of a preview session
	RegenerateLoot(ctx context.Context, input *RegenerateLootInput) (*RegenerateLootOutput, error)

	// ApplyLoot hands a preview session's results to the inventories and
	// deletes the session
	ApplyLoot(ctx context.Context, input *ApplyLootInput) (*ApplyLootOutput, error)

	// DiscardLoot deletes a preview session without applying it
	DiscardLoot(ctx context.Context, input *DiscardLootInput) (*DiscardLootOutput, error)

	// HandleTokenCreated auto-loots a newly placed NPC token
	HandleTokenCreated(ctx context.Context, input *HandleTokenCreatedInput) (*HandleTokenCreatedOutput, error)
}

// ConfigStore resolves effective loot configuration
type ConfigStore interface {
	ResolveLootConfig(ctx context.Context, creatureType string, token *loot.Token) (*loot.LootConfiguration, error)
	GetGenerationSettings(ctx context.Context) (*loot.GenerationSettings, error)
}

// Inventory receives applied loot
type Inventory interface {
	CreateItems(ctx context.Context, actorID string, items []*loot.ItemDraft) error
	GetCurrency(ctx context.Context, actorID string) (loot.CurrencyBundle, error)
	SetCurrency(ctx context.Context, actorID string, bundle loot.CurrencyBundle) error
}

// GenerateLootInput lists the selected tokens
type GenerateLootInput struct {
	Tokens []*loot.Token
}

// GenerateLootOutput holds one result per token in input order
type GenerateLootOutput struct {
	// SessionID is set when the results wait in a preview session
	SessionID string
	Results   []*loot.GenerationResult
	Applied   bool
}

// RegenerateLootInput identifies the token to re-roll
type RegenerateLootInput struct {
	SessionID string
	TokenID   string
}

// RegenerateLootOutput holds the replacement result
type RegenerateLootOutput struct {
	Result *loot.GenerationResult
}

// ApplyLootInput identifies the session to apply
type ApplyLootInput struct {
	SessionID string
}

// ApplyLootOutput reports what reached the inventories
type ApplyLootOutput struct {
	Results []*loot.GenerationResult
	// Applied counts results handed to an actor
	Applied int
	// Skipped lists tokens without an actor
	Skipped []string
}

// DiscardLootInput identifies the session to drop
type DiscardLootInput struct {
	SessionID string
}

// DiscardLootOutput reports how many results were dropped
type DiscardLootOutput struct {
	Discarded int
}

// HandleTokenCreatedInput carries the new token
type HandleTokenCreatedInput struct {
	Token *loot.Token
}

// HandleTokenCreatedOutput reports whether loot was generated
type HandleTokenCreatedOutput struct {
	Result  *loot.GenerationResult
	Applied bool
	// SkipReason explains why nothing was generated
	SkipReason string
}
