package trades

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/leagues"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/mcdev12/dynasty-trades/go/internal/transport"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RosterFilterAll selects trades of every roster.
const RosterFilterAll = "all"

// LeagueResolver defines what the trades app needs from the leagues app
type LeagueResolver interface {
	ResolveHistory(ctx context.Context, leagueID string) (*leagues.History, error)
	GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error)
}

// TradeCollector defines what the trades app needs from the transactions app
type TradeCollector interface {
	CollectHistory(ctx context.Context, leagueIDs []string) ([]models.Transaction, error)
}

// BoardLoader loads draft boards and resolves picks against them
type BoardLoader interface {
	PickResolver
	LoadBoards(ctx context.Context, leagueIDs []string) (models.DraftBoards, error)
}

// Config tunes the trades pipeline.
type Config struct {
	PageSize          int
	EnrichConcurrency int
}

// EnrichedHistory is every valued trade across a league's history.
type EnrichedHistory struct {
	History leagues.History
	Rosters []models.Roster
	Trades  []models.EnrichedTrade
	Skipped int
}

// App assembles valued trade histories
type App struct {
	leagues   LeagueResolver
	collector TradeCollector
	picks     BoardLoader
	valuer    PlayerValuer
	cfg       Config
}

// NewApp creates a new trades App
func NewApp(leagues LeagueResolver, collector TradeCollector, picks BoardLoader, valuer PlayerValuer, cfg Config) *App {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.EnrichConcurrency <= 0 {
		cfg.EnrichConcurrency = 8
	}
	return &App{
		leagues:   leagues,
		collector: collector,
		picks:     picks,
		valuer:    valuer,
		cfg:       cfg,
	}
}

// ParseRosterFilter accepts "all" (or nothing) and integer roster ids. It
// returns 0 for "all".
func ParseRosterFilter(filter string) (int, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, RosterFilterAll) {
		return 0, nil
	}
	id, err := strconv.Atoi(filter)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("roster_id must be %q or a positive integer, got %q: %w", RosterFilterAll, filter, models.ErrInvalidArgument)
	}
	return id, nil
}

// GetTrades returns one page of valued trades for the league and its
// previous seasons, newest first, optionally limited to one roster.
func (a *App) GetTrades(ctx context.Context, leagueID, rosterFilter, page string) (*models.TradePage, error) {
	rosterID, err := ParseRosterFilter(rosterFilter)
	if err != nil {
		return nil, err
	}

	enriched, err := a.EnrichHistory(ctx, leagueID, rosterID)
	if err != nil {
		return nil, err
	}

	p := Paginate(enriched.Trades, page, a.cfg.PageSize)

	filterLabel := RosterFilterAll
	if rosterID != 0 {
		filterLabel = strconv.Itoa(rosterID)
	}

	current := enriched.History.Current
	return &models.TradePage{
		LeagueID:        current.LeagueID,
		LeagueName:      current.Name,
		LeagueSeason:    current.Season,
		LeagueAvatar:    current.Avatar,
		RosterFilter:    filterLabel,
		Page:            p.Number,
		PageSize:        p.Size,
		TotalPages:      p.TotalPages,
		TotalTrades:     p.TotalItems,
		HasNext:         p.HasNext,
		HasPrevious:     p.HasPrevious,
		SkippedTrades:   enriched.Skipped,
		PreviousLeagues: nonNil(enriched.History.Previous),
		Rosters:         nonNil(enriched.Rosters),
		Trades:          p.Items,
	}, nil
}

// EnrichHistory values every completed trade of the league's history.
// rosterID 0 keeps all trades. Trades that reference data that does not
// exist are skipped and logged; any other failure aborts.
func (a *App) EnrichHistory(ctx context.Context, leagueID string, rosterID int) (*EnrichedHistory, error) {
	start := time.Now()
	logger := log.With().Str("league_id", leagueID).Logger()
	if id, ok := transport.RequestIDFromContext(ctx); ok {
		logger = logger.With().Str("request_id", id).Logger()
	}

	history, err := a.leagues.ResolveHistory(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve league history: %w", err)
	}
	leagueIDs := history.LeagueIDs()

	var (
		rosters []models.Roster
		boards  models.DraftBoards
		txs     []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rosters, err = a.leagues.GetRosters(gctx, history.Current.LeagueID)
		return err
	})
	g.Go(func() error {
		var err error
		boards, err = a.picks.LoadBoards(gctx, leagueIDs)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = a.collector.CollectHistory(gctx, leagueIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rosterID != 0 {
		filtered := make([]models.Transaction, 0, len(txs))
		for _, tx := range txs {
			if tx.Involves(rosterID) {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}

	index := models.NewRosterIndex(rosters)
	results := make([]*models.EnrichedTrade, len(txs))

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.EnrichConcurrency)
	for i, tx := range txs {
		eg.Go(func() error {
			trade, err := Enrich(ectx, tx, index, boards, a.valuer, a.picks)
			if err != nil {
				var integrity *models.DataIntegrityError
				if errors.As(err, &integrity) {
					logger.Warn().
						Str("transaction_id", integrity.TransactionID).
						Str("trade_league_id", integrity.LeagueID).
						Str("asset_id", integrity.AssetID).
						Str("reason", integrity.Reason).
						Msg("skipping trade with unresolvable data")
					return nil
				}
				return fmt.Errorf("failed to enrich trade %s: %w", tx.TransactionID, err)
			}
			results[i] = &trade
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := &EnrichedHistory{
		History: *history,
		Rosters: rosters,
		Trades:  make([]models.EnrichedTrade, 0, len(results)),
	}
	for _, r := range results {
		if r == nil {
			out.Skipped++
			continue
		}
		out.Trades = append(out.Trades, *r)
	}

	sort.SliceStable(out.Trades, func(i, j int) bool {
		return out.Trades[i].CreatedAtMillis > out.Trades[j].CreatedAtMillis
	})

	logger.Info().
		Int("league_history_count", len(history.Previous)).
		Int("trades", len(out.Trades)).
		Int("skipped", out.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("enriched league trades")

	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
