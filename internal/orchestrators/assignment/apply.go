package assignment

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	lootsession "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_session"
)

// apply hands results to the inventories in order. On failure the output
// still lists the results applied before the error, and the second return
// holds what is still owed: the failing result trimmed to the steps that did
// not land, then every result after it.
func (o *orchestrator) apply(ctx context.Context, sessionID string, results []*loot.GenerationResult) (*ApplyLootOutput, []*loot.GenerationResult, error) {
	output := &ApplyLootOutput{Results: make([]*loot.GenerationResult, 0, len(results))}

	for i, result := range results {
		if result.ActorID == "" {
			slog.Warn("Token has no actor, loot not applied", "token_id", result.TokenID)
			output.Skipped = append(output.Skipped, result.TokenID)
			continue
		}

		if pending, err := o.applyOne(ctx, result); err != nil {
			remaining := make([]*loot.GenerationResult, 0, len(results)-i)
			remaining = append(remaining, pending)
			remaining = append(remaining, results[i+1:]...)
			return output, remaining, errors.Wrapf(err, "failed to apply loot to actor %s", result.ActorID)
		}

		output.Results = append(output.Results, result)
		output.Applied++

		o.publish(ctx, EventLootApplied, &loot.Token{
			ID:      result.TokenID,
			Name:    result.TokenName,
			ActorID: result.ActorID,
		}, result, sessionID)
	}

	return output, nil, nil
}

// applyOne creates the items and adds the coins to the actor's purse. On
// failure it returns the part of result that was not applied.
func (o *orchestrator) applyOne(ctx context.Context, result *loot.GenerationResult) (*loot.GenerationResult, error) {
	pending := result
	if len(result.Items) > 0 {
		if err := o.inventory.CreateItems(ctx, result.ActorID, result.Items); err != nil {
			return result, errors.Wrap(err, "failed to create items")
		}
		coinsOnly := *result
		coinsOnly.Items = nil
		pending = &coinsOnly
	}

	if result.Currency.IsZero() {
		return nil, nil
	}

	purse, err := o.inventory.GetCurrency(ctx, result.ActorID)
	if err != nil {
		return pending, errors.Wrap(err, "failed to read currency")
	}
	if err := o.inventory.SetCurrency(ctx, result.ActorID, purse.Add(result.Currency)); err != nil {
		return pending, errors.Wrap(err, "failed to write currency")
	}
	return nil, nil
}

// applyNow applies freshly generated results. Whatever could not be applied
// is kept in a loot session so ApplyLoot can finish it; the session id is
// attached to the returned error under MetaSessionID.
func (o *orchestrator) applyNow(ctx context.Context, tokens []*loot.Token, results []*loot.GenerationResult) (*ApplyLootOutput, error) {
	output, remaining, err := o.apply(ctx, "", results)
	if err == nil {
		return output, nil
	}
	o.metrics.RecordApply(output.Applied)
	if len(remaining) == 0 {
		return nil, err
	}

	byToken := make(map[string]*loot.GenerationResult, len(remaining))
	for _, r := range remaining {
		byToken[r.TokenID] = r
	}

	created, createErr := o.sessionRepo.Create(ctx, lootsession.CreateInput{
		ID:      o.idGen.Generate(),
		Tokens:  tokens,
		Results: byToken,
		TTL:     o.sessionTTL,
	})
	if createErr != nil {
		slog.Error("Failed to keep unapplied loot",
			"tokens", len(remaining),
			"error", createErr)
		return nil, err
	}

	sessionID := created.Session.ID
	slog.Warn("Loot partially applied, remainder kept for retry",
		"session_id", sessionID,
		"applied", output.Applied,
		"remaining", len(remaining))

	return nil, errors.Wrapf(err, "loot partially applied, remainder kept in session %s", sessionID).
		WithMeta(MetaSessionID, sessionID)
}

func (o *orchestrator) publish(ctx context.Context, eventType string, token *loot.Token, result *loot.GenerationResult, sessionID string) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, token, nil)
	event.Context().Set(ContextItemCount, len(result.Items))
	event.Context().Set(ContextCurrency, result.Currency)
	event.Context().Set(ContextSummary, result.Summary())
	if sessionID != "" {
		event.Context().Set(ContextSessionID, sessionID)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish loot event",
			"event", eventType,
			"token_id", token.ID,
			"error", err)
	}
}
