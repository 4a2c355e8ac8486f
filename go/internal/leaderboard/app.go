package leaderboard

import (
	"context"
	"fmt"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/mcdev12/dynasty-trades/go/internal/trades"
	"github.com/mcdev12/dynasty-trades/go/internal/transport"
	"github.com/rs/zerolog/log"
)

const allRosters = 0

// TradeHistory defines what the leaderboard needs from the trades app
type TradeHistory interface {
	EnrichHistory(ctx context.Context, leagueID string, rosterID int) (*trades.EnrichedHistory, error)
}

// App builds league trade leaderboards
type App struct {
	trades TradeHistory
}

// NewApp creates a new leaderboard App
func NewApp(trades TradeHistory) *App {
	return &App{
		trades: trades,
	}
}

// GetLeaderboard ranks the league's current rosters over every trade in the
// league's history.
func (a *App) GetLeaderboard(ctx context.Context, leagueID string) (*models.Leaderboard, error) {
	history, err := a.trades.EnrichHistory(ctx, leagueID, allRosters)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich trades: %w", err)
	}

	entries := Aggregate(history.Rosters, history.Trades)

	event := log.Info().
		Str("league_id", leagueID).
		Int("trades", len(history.Trades)).
		Int("entries", len(entries))
	if id, ok := transport.RequestIDFromContext(ctx); ok {
		event = event.Str("request_id", id)
	}
	event.Msg("built leaderboard")

	rosters := history.Rosters
	if rosters == nil {
		rosters = []models.Roster{}
	}

	current := history.History.Current
	return &models.Leaderboard{
		LeagueID:     current.LeagueID,
		LeagueName:   current.Name,
		LeagueAvatar: current.Avatar,
		Season:       current.Season,
		TradesCount:  len(history.Trades),
		Skipped:      history.Skipped,
		Rosters:      rosters,
		Entries:      entries,
	}, nil
}
