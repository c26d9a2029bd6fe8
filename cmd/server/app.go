package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/clients/srd"
	"github.com/KirkDiggler/rpg-loot/internal/clients/world"
	"github.com/KirkDiggler/rpg-loot/internal/config"
	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/engine/sources"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/metrics"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/assignment"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-loot/internal/redis"
	lootsession "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_session"
	lootsettings "github.com/KirkDiggler/rpg-loot/internal/repositories/loot_settings"
	"github.com/KirkDiggler/rpg-loot/internal/services/settings"
)

const redisPingTimeout = 5 * time.Second

// app is the wired process shared by every command
type app struct {
	cfg      *config.Config
	world    *world.World
	store    host.DocumentStore
	settings settings.Service
	loot     assignment.Service
	bus      events.EventBus
	registry *prometheus.Registry
	redis    redisclient.Client
}

// loadConfig reads the process config and installs the slog default
func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return cfg, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{
		cfg:      cfg,
		bus:      events.NewBus(),
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	random := dice.NewRandom(nil)
	clk := clock.New()

	if cfg.WorldFile != "" {
		w, err := world.LoadFile(cfg.WorldFile, random.Roller())
		if err != nil {
			return nil, err
		}
		a.world = w
	} else {
		a.world = world.New(random.Roller())
	}

	a.store = a.world
	if cfg.EnableSRD {
		backend, err := srd.New(&srd.Config{
			PackID:   cfg.SRDPackID,
			CacheTTL: cfg.SRDCacheTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create srd pack")
		}
		a.store = host.NewMux(a.world, backend)
		slog.Info("SRD equipment pack mounted", "pack_id", cfg.SRDPackID)
	}

	settingsRepo, sessionRepo, err := a.repositories(ctx, clk)
	if err != nil {
		return nil, err
	}

	a.settings, err = settings.New(&settings.Config{
		Repository: settingsRepo,
		WorldID:    cfg.WorldID,
		Checker:    settings.NewStoreChecker(a.store),
		Clock:      clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create settings service")
	}

	evaluator, err := dice.NewEvaluator(&dice.Config{Roller: random.Roller()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice evaluator")
	}

	a.loot, err = assignment.NewOrchestrator(&assignment.Config{
		ConfigStore: a.settings,
		Inventory:   a.world,
		Store:       a.store,
		Evaluator:   evaluator,
		Random:      random,
		SessionRepo: sessionRepo,
		IDGenerator: idgen.NewUUID("loot"),
		Clock:       clk,
		EventBus:    a.bus,
		Metrics:     metrics.New(a.registry),
		Concurrency: cfg.Concurrency,
		SessionTTL:  cfg.SessionTTL,
		TextRows:    sources.TextRowPolicy(cfg.TextRowPolicy),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create loot orchestrator")
	}

	assignment.SubscribeTokenCreated(a.bus, a.loot)

	return a, nil
}

// repositories picks Redis when REDIS_URL is set and memory otherwise
func (a *app) repositories(ctx context.Context, clk clock.Clock) (lootsettings.Repository, lootsession.Repository, error) {
	if a.cfg.RedisURL == "" {
		slog.Info("REDIS_URL not set, using in-memory repositories")
		return lootsettings.NewMemoryRepository(clk), lootsession.NewMemoryRepository(clk), nil
	}

	client, err := redisclient.NewClientFromURL(a.cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	a.redis = client

	settingsRepo, err := lootsettings.NewRedisRepository(&lootsettings.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create loot settings repository")
	}
	sessionRepo, err := lootsession.NewRedisRepository(&lootsession.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create loot session repository")
	}

	slog.Info("Using Redis repositories")
	return settingsRepo, sessionRepo, nil
}

func (a *app) Close() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		slog.Warn("Failed to close redis client", "error", err)
	}
}
