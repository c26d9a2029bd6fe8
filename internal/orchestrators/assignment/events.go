package assignment

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// tokenCreatedPriority runs auto-loot after other token.created handlers
const tokenCreatedPriority = 100

// SubscribeTokenCreated routes token.created events with a *loot.Token
// source to HandleTokenCreated. Failures are logged and not returned to the
// bus.
func SubscribeTokenCreated(bus events.EventBus, svc Service) {
	bus.SubscribeFunc(EventTokenCreated, tokenCreatedPriority, func(ctx context.Context, event events.Event) error {
		token, ok := event.Source().(*loot.Token)
		if !ok || token == nil {
			slog.Warn("token.created event without a token source")
			return nil
		}

		out, err := svc.HandleTokenCreated(ctx, &HandleTokenCreatedInput{Token: token})
		if err != nil {
			slog.Error("Auto loot failed", "token_id", token.ID, "error", err)
			return nil
		}
		if out.SkipReason != "" {
			slog.Debug("Auto loot skipped", "token_id", token.ID, "reason", out.SkipReason)
		}
		return nil
	})
}
