package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-character-engine/internal/adapters/rpgtoolkit"
	"github.com/KirkDiggler/dnd-character-engine/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/config"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/observability"
	resourcerepo "github.com/KirkDiggler/dnd-character-engine/internal/repositories/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/services/engine"
)

const redisPingTimeout = 5 * time.Second

// app is everything a command needs to reach the engine
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service engine.Service
	closers []func() error
}

// newApp wires the engine. Commands that read or write stored state ask for
// Redis; everything else runs against an in-memory repository.
func newApp(ctx context.Context, useRedis bool) (*app, error) {
	_ = godotenv.Load() // nolint:errcheck // a missing .env file is fine

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
	}

	catalog, err := rulebook.LoadSRD()
	if err != nil {
		return nil, fmt.Errorf("failed to load SRD catalog: %w", err)
	}

	var repo resourcerepo.Repository = resourcerepo.NewInMemoryRepository()
	if useRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, redisClient.Close)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Debug("connected to redis", zap.String("addr", cfg.Redis.Addr))

		repo = resourcerepo.NewRedisRepository(&resourcerepo.RedisRepoConfig{
			Client:    redisClient,
			KeyPrefix: cfg.Redis.KeyPrefix,
			TTL:       cfg.Redis.TTL,
		})
	}

	var dndClient dnd5e.Client
	if cfg.DND5E.Remote {
		dndClient, err = dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create D&D 5e client: %w", err)
		}
	}

	bus := rpgtoolkit.NewEventBusAdapter(nil)
	bus.Subscribe(rpgtoolkit.EventCharacterDied, 100, func(_ context.Context, e rpgtoolkit.ResourceEvent) error {
		logger.Warn("character died", zap.String("character_id", e.CharacterID))
		return nil
	})
	bus.Subscribe(rpgtoolkit.EventResourcesRest, 100, func(_ context.Context, e rpgtoolkit.ResourceEvent) error {
		logger.Info("character rested",
			zap.String("character_id", e.CharacterID),
			zap.String("rest", string(e.Rest)),
			zap.Int("current_hp", e.CurrentHP))
		return nil
	})

	a.service = engine.NewService(&engine.ServiceConfig{
		Catalog:     catalog,
		Repository:  repo,
		DNDClient:   dndClient,
		Publisher:   bus,
		HealingMode: engine.HealingMode(cfg.Rules.ShortRestHealing),
		Logger:      logger,
	})

	return a, nil
}

// Close releases connections and flushes the logger
func (a *app) Close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	_ = a.logger.Sync() // nolint:errcheck // stderr sync fails on some terminals
}
