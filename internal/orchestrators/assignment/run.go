package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-loot/internal/engine/currency"
	"github.com/KirkDiggler/rpg-loot/internal/engine/draft"
	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// runState is a step of one token's run
type runState string

const (
	stateConfigResolved     runState = "config_resolved"
	stateSourcesPrefiltered runState = "sources_prefiltered"
	stateItemsDrafted       runState = "items_drafted"
	stateCurrencyRolled     runState = "currency_rolled"
	stateResultReady        runState = "result_ready"
)

// tokenRun carries one token through the states. Only the finished result
// leaves this file.
type tokenRun struct {
	token    *loot.Token
	state    runState
	config   *loot.LootConfiguration
	sources  []loot.SourceRef
	items    []*loot.ItemDraft
	currency loot.CurrencyBundle
	warnings []loot.Warning
}

func (r *tokenRun) advance(state runState, args ...any) {
	r.state = state
	slog.Debug("Loot run advanced",
		append([]any{"token_id", r.token.ID, "state", string(state)}, args...)...)
}

func (r *tokenRun) warn(code errors.Code, format string, args ...any) {
	r.warnings = append(r.warnings, loot.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

func (o *orchestrator) runToken(ctx context.Context, session *sources.Session, gen *loot.GenerationSettings, token *loot.Token) (*loot.GenerationResult, error) {
	run := &tokenRun{token: token}

	cfg, err := o.configStore.ResolveLootConfig(ctx, token.EffectiveCreatureType(), token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve loot configuration")
	}
	run.config = cfg
	run.advance(stateConfigResolved,
		"sources", len(cfg.Sources),
		"max_rarity", string(cfg.MaxRarity))

	o.prefilter(ctx, session, run)
	run.advance(stateSourcesPrefiltered, "kept", len(run.sources))

	drafted, err := o.drafter.DraftItems(ctx, &draft.DraftItemsInput{
		Sources:         session.Sources(run.sources),
		QuantityFormula: cfg.QuantityFormula,
		ItemChance:      cfg.ItemChance,
		MaxRarity:       cfg.MaxRarity,
		RarityWeights:   cfg.RarityWeights,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to draft items")
	}
	run.items = drafted.Items
	run.warnings = append(run.warnings, drafted.Warnings...)
	run.advance(stateItemsDrafted,
		"gate_passed", drafted.GatePassed,
		"quantity", drafted.Quantity,
		"items", len(drafted.Items))

	rolled, err := o.coins.RollCurrency(ctx, &currency.RollCurrencyInput{
		CurrencyChance:  cfg.CurrencyChance,
		UseCRBased:      cfg.UseCRBasedCurrency,
		ChallengeRating: token.ChallengeRating,
		Formula:         cfg.CurrencyFormula,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll currency")
	}
	run.currency = rolled.Currency
	run.warnings = append(run.warnings, rolled.Warnings...)
	run.advance(stateCurrencyRolled,
		"mode", string(rolled.Mode),
		"gate_passed", rolled.GatePassed,
		"fallback", rolled.FallbackUsed)

	result := &loot.GenerationResult{
		TokenID:     token.ID,
		TokenName:   token.Name,
		ActorID:     token.ActorID,
		Items:       run.items,
		Currency:    run.currency,
		Warnings:    run.warnings,
		GeneratedAt: o.clock.Now(),
	}
	run.advance(stateResultReady)

	o.logSummary(gen, result)
	o.publish(ctx, EventLootGenerated, token, result, "")

	return result, nil
}

// prefilter drops sources without items and records why
func (o *orchestrator) prefilter(ctx context.Context, session *sources.Session, run *tokenRun) {
	configured := run.config.Sources
	if len(configured) == 0 {
		run.warn(errors.CodeNoSourcesConfigured, "no loot sources configured for %s", run.token.Name)
		return
	}

	run.sources = session.Prefilter(ctx, configured)

	kept := make(map[string]bool, len(run.sources))
	for _, ref := range run.sources {
		kept[ref.Key()] = true
	}
	reported := make(map[string]bool)
	for _, ref := range configured {
		key := ref.Key()
		if kept[key] || reported[key] {
			continue
		}
		reported[key] = true
		run.warn(errors.CodeSourceUnavailable, "loot source %s has no items", key)
	}

	if len(run.sources) == 0 {
		run.warn(errors.CodeSourceUnavailable, "no configured loot source has items; generating currency only")
	}
}

func (o *orchestrator) logSummary(gen *loot.GenerationSettings, result *loot.GenerationResult) {
	level := slog.LevelDebug
	if gen != nil && gen.DebugLogging {
		level = slog.LevelInfo
	}
	slog.Log(context.Background(), level, "Loot generated",
		"token_id", result.TokenID,
		"token_name", result.TokenName,
		"summary", result.Summary(),
		"warnings", len(result.Warnings))
}
