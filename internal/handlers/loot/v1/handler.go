// Package v1 serves loot generation and loot settings over gRPC
package v1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/assignment"
	"github.com/KirkDiggler/rpg-loot/internal/services/settings"
)

// HandlerConfig holds dependencies for the loot handler
type HandlerConfig struct {
	LootService     assignment.Service
	SettingsService settings.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.LootService == nil {
		vb.RequiredField("LootService")
	}
	if c.SettingsService == nil {
		vb.RequiredField("SettingsService")
	}
	return vb.Build()
}

// Handler implements LootServiceServer
type Handler struct {
	lootService     assignment.Service
	settingsService settings.Service
}

var _ LootServiceServer = (*Handler)(nil)

// NewHandler creates a new loot handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		lootService:     cfg.LootService,
		settingsService: cfg.SettingsService,
	}, nil
}

// GenerateLoot runs the requested tokens
func (h *Handler) GenerateLoot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GenerateLootRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if len(in.Tokens) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tokens are required"))
	}

	out, err := h.lootService.GenerateLoot(ctx, &assignment.GenerateLootInput{Tokens: in.Tokens})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GenerateLootResponse{
		SessionID: out.SessionID,
		Applied:   out.Applied,
		Results:   out.Results,
	})
}

// RegenerateLoot re-runs one token of a preview session
func (h *Handler) RegenerateLoot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SessionRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if in.TokenID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token_id is required"))
	}

	out, err := h.lootService.RegenerateLoot(ctx, &assignment.RegenerateLootInput{
		SessionID: in.SessionID,
		TokenID:   in.TokenID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RegenerateLootResponse{Result: out.Result})
}

// ApplyLoot applies a preview session
func (h *Handler) ApplyLoot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SessionRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.lootService.ApplyLoot(ctx, &assignment.ApplyLootInput{SessionID: in.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ApplyLootResponse{Applied: out.Applied, Skipped: out.Skipped})
}

// DiscardLoot drops a preview session
func (h *Handler) DiscardLoot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SessionRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.lootService.DiscardLoot(ctx, &assignment.DiscardLootInput{SessionID: in.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DiscardLootResponse{Discarded: out.Discarded})
}

// TokenCreated auto loots a newly placed token
func (h *Handler) TokenCreated(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in TokenCreatedRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Token == nil || in.Token.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token.id is required"))
	}

	out, err := h.lootService.HandleTokenCreated(ctx, &assignment.HandleTokenCreatedInput{Token: in.Token})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&TokenCreatedResponse{
		Result:     out.Result,
		Applied:    out.Applied,
		SkipReason: out.SkipReason,
	})
}

// GetWorldSettings returns the saved settings or defaults
func (h *Handler) GetWorldSettings(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.settingsService.GetWorldSettings(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&WorldSettingsMessage{Settings: out.Settings, IsDefault: out.IsDefault})
}

// UpdateWorldSettings replaces the world settings
func (h *Handler) UpdateWorldSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in WorldSettingsMessage
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Settings == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("settings are required"))
	}

	out, err := h.settingsService.UpdateWorldSettings(ctx, &settings.UpdateWorldSettingsInput{Settings: in.Settings})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	slog.Info("World loot settings updated", "creature_types", len(out.Settings.CreatureTypes))
	return respond(&WorldSettingsMessage{Settings: out.Settings})
}

// ExportSources returns the source selection and creature type overrides
func (h *Handler) ExportSources(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.settingsService.ExportSources(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ExportSourcesResponse{Selection: out.Selection})
}

// ImportSources replaces the source selection
func (h *Handler) ImportSources(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ImportSourcesRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if len(in.Selection) == 0 || string(in.Selection) == "null" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("selection is required"))
	}

	out, err := h.settingsService.ImportSources(ctx, &settings.ImportSourcesInput{Data: in.Selection})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ImportSourcesResponse{
		Imported:      out.Imported,
		CreatureTypes: out.CreatureTypes,
		Dropped:       out.Dropped,
		Warnings:      out.Warnings,
	})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := encodeResponse(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
