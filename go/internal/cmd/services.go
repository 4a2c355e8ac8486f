package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/dynasty-trades/go/clients"
	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/cache"
	"github.com/mcdev12/dynasty-trades/go/internal/config"
	"github.com/mcdev12/dynasty-trades/go/internal/draftpicks"
	"github.com/mcdev12/dynasty-trades/go/internal/leaderboard"
	"github.com/mcdev12/dynasty-trades/go/internal/leagues"
	"github.com/mcdev12/dynasty-trades/go/internal/trades"
	"github.com/mcdev12/dynasty-trades/go/internal/transactions"
	"github.com/mcdev12/dynasty-trades/go/internal/values"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Leagues     *leagues.Service
	Trades      *trades.Service
	Leaderboard *leaderboard.Service
}

// setupCache returns the configured response cache and a func that releases it.
func setupCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendNATS:
		kvConfig := cache.DefaultKVConfig()
		kvConfig.URL = cfg.Cache.NATSURL
		kvConfig.Bucket = cfg.Cache.Bucket
		kvConfig.TTL = cfg.Cache.TTL

		kv, err := cache.NewKVCache(ctx, kvConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create nats cache: %w", err)
		}
		log.Info().Str("bucket", kvConfig.Bucket).Dur("ttl", kvConfig.TTL).Msg("using nats key-value cache")
		closeKV := func() {
			if err := kv.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close nats cache")
			}
		}
		return kv, closeKV, nil
	default:
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("using in-memory cache")
		return cache.NewMemoryCache(cfg.Cache.TTL, clockwork.NewRealClock()), func() {}, nil
	}
}

func setupServices(cfg *config.Config, pool *pgxpool.Pool, responseCache cache.Cache) *Services {
	// Wire up dependency injection chain
	// Source layer → Repository layer → App layer → Service layer

	sleeper := sleeperclient.NewSleeperClient(cfg.Sleeper.BaseURL, cfg.Sleeper.RequestTimeout)
	retry := clients.DefaultRetry
	retry.MaxAttempts = cfg.Sleeper.MaxAttempts
	sleeper.SetRetry(retry)

	// Leagues
	leaguesRepo := leagues.NewRepository(sleeper, responseCache)
	leaguesApp := leagues.NewApp(leaguesRepo, clockwork.NewRealClock())
	leaguesService := leagues.NewService(leaguesApp)

	// Transactions
	transactionsRepo := transactions.NewRepository(sleeper, responseCache)
	transactionsApp := transactions.NewApp(transactionsRepo, transactions.Config{
		ScanWeeks:        cfg.Trades.ScanWeeks,
		FetchConcurrency: cfg.Trades.FetchConcurrency,
	})

	// Values
	valuesRepo := values.NewRepository(pool)
	valuesApp := values.NewApp(valuesRepo)

	// Draft picks
	draftPicksRepo := draftpicks.NewRepository(sleeper, responseCache)
	draftPicksApp := draftpicks.NewApp(draftPicksRepo, valuesApp, draftpicks.Config{
		FloorValue:       cfg.Trades.FuturePickFloorValue,
		FetchConcurrency: cfg.Trades.FetchConcurrency,
	})

	// Trades
	tradesApp := trades.NewApp(leaguesApp, transactionsApp, draftPicksApp, valuesApp, trades.Config{
		PageSize:          cfg.Trades.PageSize,
		EnrichConcurrency: cfg.Trades.EnrichConcurrency,
	})
	tradesService := trades.NewService(tradesApp)

	// Leaderboard
	leaderboardApp := leaderboard.NewApp(tradesApp)
	leaderboardService := leaderboard.NewService(leaderboardApp)

	return &Services{
		Leagues:     leaguesService,
		Trades:      tradesService,
		Leaderboard: leaderboardService,
	}
}
