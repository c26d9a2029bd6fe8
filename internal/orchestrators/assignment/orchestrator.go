package assignment

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/engine/currency"
	"github.com/KirkDiggler/rpg-loot/internal/engine/draft"
	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/metrics"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/idgen"
	lootsession "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_session"
)

// DefaultConcurrency bounds concurrent token runs
const DefaultConcurrency = 4

// MetaSessionID is the error meta key naming the session that holds loot
// left unapplied by a failed direct apply
const MetaSessionID = "session_id"

// Publisher is the part of the event bus the orchestrator uses
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Config holds the dependencies for the assignment orchestrator
type Config struct {
	ConfigStore ConfigStore
	Inventory   Inventory
	Store       host.DocumentStore
	Evaluator   dice.Evaluator
	Random      *dice.Random
	SessionRepo lootsession.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Optional
	EventBus       Publisher
	Metrics        *metrics.Metrics
	Concurrency    int
	SessionTTL     time.Duration
	TextRows       sources.TextRowPolicy
	DraftEngine    draft.Engine
	CurrencyEngine currency.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigStore == nil {
		vb.RequiredField("ConfigStore")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Concurrency < 0 {
		vb.Fieldf("Concurrency", "must not be negative, got %d", c.Concurrency)
	}

	return vb.Build()
}

type orchestrator struct {
	configStore ConfigStore
	inventory   Inventory
	store       host.DocumentStore
	random      *dice.Random
	sessionRepo lootsession.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	eventBus    Publisher
	metrics     *metrics.Metrics
	concurrency int
	sessionTTL  time.Duration
	textRows    sources.TextRowPolicy
	drafter     draft.Engine
	coins       currency.Engine
}

// NewOrchestrator creates a new assignment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	drafter := cfg.DraftEngine
	if drafter == nil {
		var err error
		drafter, err = draft.NewEngine(&draft.Config{Evaluator: cfg.Evaluator, Random: cfg.Random})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create draft engine")
		}
	}

	coins := cfg.CurrencyEngine
	if coins == nil {
		var err error
		coins, err = currency.NewEngine(&currency.Config{Evaluator: cfg.Evaluator, Random: cfg.Random})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create currency engine")
		}
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = lootsession.DefaultTTL
	}

	return &orchestrator{
		configStore: cfg.ConfigStore,
		inventory:   cfg.Inventory,
		store:       cfg.Store,
		random:      cfg.Random,
		sessionRepo: cfg.SessionRepo,
		idGen:       cfg.IDGenerator,
		clock:       clk,
		eventBus:    cfg.EventBus,
		metrics:     cfg.Metrics,
		concurrency: concurrency,
		sessionTTL:  ttl,
		textRows:    cfg.TextRows,
		drafter:     drafter,
		coins:       coins,
	}, nil
}

func (o *orchestrator) GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Tokens) == 0 {
		return nil, errors.InvalidArgument("at least one token is required")
	}
	for i, token := range input.Tokens {
		if token == nil || token.ID == "" {
			return nil, errors.InvalidArgumentf("token %d has no id", i)
		}
	}

	gen, err := o.configStore.GetGenerationSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load generation settings")
	}

	mode := metrics.ModeApply
	if gen.EnableLootPreview {
		mode = metrics.ModePreview
	}
	start := o.clock.Now()

	results, err := o.runTokens(ctx, gen, input.Tokens, mode)
	if err != nil {
		return nil, err
	}
	o.metrics.ObserveDuration(mode, o.clock.Now().Sub(start))

	output := &GenerateLootOutput{Results: results}

	if !gen.EnableLootPreview {
		applied, err := o.applyNow(ctx, input.Tokens, results)
		if err != nil {
			return nil, err
		}
		output.Applied = true
		o.metrics.RecordApply(applied.Applied)
		return output, nil
	}

	byToken := make(map[string]*loot.GenerationResult, len(results))
	for _, r := range results {
		byToken[r.TokenID] = r
	}

	created, err := o.sessionRepo.Create(ctx, lootsession.CreateInput{
		ID:      o.idGen.Generate(),
		Tokens:  input.Tokens,
		Results: byToken,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store loot preview")
	}
	output.SessionID = created.Session.ID

	slog.Info("Loot preview ready",
		"session_id", output.SessionID,
		"tokens", len(results),
		"expires_at", created.Session.ExpiresAt)

	return output, nil
}

func (o *orchestrator) RegenerateLoot(ctx context.Context, input *RegenerateLootInput) (*RegenerateLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("token_id", input.TokenID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.sessionRepo.Get(ctx, lootsession.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get loot session %s", input.SessionID)
	}
	session := got.Session

	token := session.Token(input.TokenID)
	if token == nil {
		return nil, errors.NotFoundf("token %s is not part of loot session %s", input.TokenID, input.SessionID)
	}

	gen, err := o.configStore.GetGenerationSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load generation settings")
	}

	results, err := o.runTokens(ctx, gen, []*loot.Token{token}, metrics.ModeReroll)
	if err != nil {
		return nil, err
	}
	result := results[0]

	session.Results[token.ID] = result
	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update loot session")
	}

	return &RegenerateLootOutput{Result: result}, nil
}

func (o *orchestrator) ApplyLoot(ctx context.Context, input *ApplyLootInput) (*ApplyLootOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	got, err := o.sessionRepo.Get(ctx, lootsession.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get loot session %s", input.SessionID)
	}
	session := got.Session

	output, remaining, err := o.apply(ctx, session.ID, session.OrderedResults())
	if err != nil {
		o.metrics.RecordApply(output.Applied)

		// Keep only what was not applied so a retry cannot double apply
		session.Results = make(map[string]*loot.GenerationResult, len(remaining))
		for _, r := range remaining {
			session.Results[r.TokenID] = r
		}
		if updateErr := o.sessionRepo.Update(ctx, session); updateErr != nil {
			slog.Warn("Failed to trim partially applied loot session",
				"session_id", session.ID,
				"error", updateErr)
		}
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, lootsession.DeleteInput{ID: session.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete applied loot session")
	}
	o.metrics.RecordApply(output.Applied)

	slog.Info("Loot applied",
		"session_id", session.ID,
		"applied", output.Applied,
		"skipped", len(output.Skipped))

	return output, nil
}

func (o *orchestrator) DiscardLoot(ctx context.Context, input *DiscardLootInput) (*DiscardLootOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	out, err := o.sessionRepo.Delete(ctx, lootsession.DeleteInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to discard loot session %s", input.SessionID)
	}

	slog.Debug("Loot session discarded", "session_id", input.SessionID, "results", out.ResultsDeleted)
	return &DiscardLootOutput{Discarded: out.ResultsDeleted}, nil
}

func (o *orchestrator) HandleTokenCreated(ctx context.Context, input *HandleTokenCreatedInput) (*HandleTokenCreatedOutput, error) {
	if input == nil || input.Token == nil || input.Token.ID == "" {
		return nil, errors.InvalidArgument("token is required")
	}
	token := input.Token

	gen, err := o.configStore.GetGenerationSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load generation settings")
	}

	if !gen.EnableAutoLoot {
		return &HandleTokenCreatedOutput{SkipReason: "auto loot disabled"}, nil
	}
	if token.ActorType != ActorTypeNPC {
		slog.Debug("Skipping auto loot for non NPC token",
			"token_id", token.ID,
			"actor_type", token.ActorType)
		return &HandleTokenCreatedOutput{SkipReason: "token is not an npc"}, nil
	}

	results, err := o.runTokens(ctx, gen, []*loot.Token{token}, metrics.ModeAuto)
	if err != nil {
		return nil, err
	}

	applied, err := o.applyNow(ctx, []*loot.Token{token}, results)
	if err != nil {
		return nil, err
	}
	o.metrics.RecordApply(applied.Applied)

	return &HandleTokenCreatedOutput{
		Result:  results[0],
		Applied: applied.Applied > 0,
	}, nil
}

// runTokens generates every token concurrently against one source session
func (o *orchestrator) runTokens(ctx context.Context, gen *loot.GenerationSettings, tokens []*loot.Token, mode string) ([]*loot.GenerationResult, error) {
	textRows := o.textRows
	if gen.TextRows != "" {
		textRows = sources.TextRowPolicy(gen.TextRows)
	}

	session, err := sources.NewSession(&sources.Config{
		Store:    o.store,
		Random:   o.random,
		TextRows: textRows,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start source session")
	}

	results := make([]*loot.GenerationResult, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, token := range tokens {
		g.Go(func() error {
			result, err := o.runToken(gctx, session, gen, token)
			if err != nil {
				return errors.Wrapf(err, "failed to generate loot for token %s", token.ID)
			}
			results[i] = result
			o.metrics.RecordResult(mode, result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
