package transactions

import (
	"context"
	"fmt"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// TransactionsRepository defines what the app layer needs from the repository
type TransactionsRepository interface {
	GetWeekTrades(ctx context.Context, leagueID string, week int) ([]models.Transaction, error)
}

// App collects completed trades across the seasons of a league
type App struct {
	repo TransactionsRepository
	cfg  Config
}

// NewApp creates a new transactions App
func NewApp(repo TransactionsRepository, cfg Config) *App {
	return &App{
		repo: repo,
		cfg:  cfg.withDefaults(),
	}
}

// CollectHistory returns every completed trade of the given leagues, in
// league order and then week order. Any failed week aborts the collection.
func (a *App) CollectHistory(ctx context.Context, leagueIDs []string) ([]models.Transaction, error) {
	weeks := a.cfg.ScanWeeks
	results := make([][]models.Transaction, len(leagueIDs)*weeks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.FetchConcurrency)

	for li, leagueID := range leagueIDs {
		for week := 0; week < weeks; week++ {
			slot := li*weeks + week
			g.Go(func() error {
				trades, err := a.repo.GetWeekTrades(gctx, leagueID, week)
				if err != nil {
					return fmt.Errorf("failed to get trades for league %s week %d: %w", leagueID, week, err)
				}
				results[slot] = trades
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Transaction
	for _, trades := range results {
		all = append(all, trades...)
	}

	log.Info().
		Strs("league_ids", leagueIDs).
		Int("trades", len(all)).
		Msg("collected league trades")

	return all, nil
}
