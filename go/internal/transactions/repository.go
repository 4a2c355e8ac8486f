package transactions

import (
	"context"
	"strconv"

	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/cache"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

// TransactionSource defines what the repository needs from the league platform
type TransactionSource interface {
	GetTransactions(ctx context.Context, leagueID string, week int) ([]sleeperclient.Transaction, error)
}

// Repository reads one week of trades at a time through the response cache
type Repository struct {
	source TransactionSource
	cache  cache.Cache
}

// NewRepository creates a new transactions repository
func NewRepository(source TransactionSource, c cache.Cache) *Repository {
	return &Repository{
		source: source,
		cache:  c,
	}
}

// GetWeekTrades returns the completed trades of one league week. Only the
// filtered result is cached, and an empty week is never cached.
func (r *Repository) GetWeekTrades(ctx context.Context, leagueID string, week int) ([]models.Transaction, error) {
	key := cache.Key{Kind: cache.KindTransactions, ID: leagueID, Sub: strconv.Itoa(week)}
	return cache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]models.Transaction, error) {
		raw, err := r.source.GetTransactions(ctx, leagueID, week)
		if err != nil {
			return nil, err
		}

		var trades []models.Transaction
		for _, tx := range raw {
			if keep(tx) {
				trades = append(trades, normalize(leagueID, tx))
			}
		}
		return trades, nil
	}, cache.EmptySlice[models.Transaction])
}
