package draftpicks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/mcdev12/dynasty-trades/go/internal/values"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFloorValue values future picks in rounds the value store does
	// not track.
	DefaultFloorValue = 750

	// lastProxyRound is the last round with proxy assets in the value store.
	lastProxyRound = 4
)

// DraftPicksRepository defines what the app layer needs from the repository
type DraftPicksRepository interface {
	GetDraftBoard(ctx context.Context, leagueID string) (*models.DraftBoard, error)
}

// Valuer defines what pick resolution needs from the value store
type Valuer interface {
	Appraise(ctx context.Context, asset models.ValueAsset, tradeDate time.Time) (models.Valuation, error)
	AppraisePlayer(ctx context.Context, sleeperPlayerID string, tradeDate time.Time) (string, models.Valuation, error)
	FindAsset(ctx context.Context, name string) (*models.ValueAsset, error)
}

// Config tunes board loading and future pick valuation.
type Config struct {
	FloorValue       int
	FetchConcurrency int
}

// App resolves traded draft picks to drafted players or proxy values
type App struct {
	repo   DraftPicksRepository
	valuer Valuer
	cfg    Config
}

// NewApp creates a new draft picks App
func NewApp(repo DraftPicksRepository, valuer Valuer, cfg Config) *App {
	if cfg.FloorValue <= 0 {
		cfg.FloorValue = DefaultFloorValue
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 4
	}
	return &App{
		repo:   repo,
		valuer: valuer,
		cfg:    cfg,
	}
}

// LoadBoards loads the draft board of every league in leagueIDs (newest
// first) and keys them by season. When two leagues report the same season
// the newer league wins.
func (a *App) LoadBoards(ctx context.Context, leagueIDs []string) (models.DraftBoards, error) {
	loaded := make([]*models.DraftBoard, len(leagueIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.FetchConcurrency)
	for i, leagueID := range leagueIDs {
		g.Go(func() error {
			board, err := a.repo.GetDraftBoard(gctx, leagueID)
			if err != nil {
				return fmt.Errorf("failed to get draft board for league %s: %w", leagueID, err)
			}
			loaded[i] = board
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	boards := make(models.DraftBoards, len(loaded))
	for _, b := range loaded {
		if b == nil {
			continue
		}
		if _, ok := boards[b.Season]; ok {
			continue
		}
		boards[b.Season] = *b
	}
	return boards, nil
}

// Resolve values a traded pick. A pick whose season has been drafted
// resolves to the player taken with it; otherwise it is valued through the
// proxy asset for its projected range, or the floor value in late rounds.
func (a *App) Resolve(ctx context.Context, boards models.DraftBoards, pick models.TradedPick, rosters models.RosterIndex, tradeDate time.Time) (models.TradedDraftPick, error) {
	out := models.TradedDraftPick{
		Season:           pick.Season,
		Round:            pick.Round,
		OriginalRosterID: pick.OriginalRosterID,
		Description:      pick.Description(),
	}

	if board, ok := boards[pick.Season]; ok && board.Drafted() {
		return a.resolveDrafted(ctx, board, pick, rosters, tradeDate, out)
	}
	return a.resolveFuture(ctx, boards, pick, rosters, tradeDate, out)
}

func (a *App) resolveDrafted(ctx context.Context, board models.DraftBoard, pick models.TradedPick, rosters models.RosterIndex, tradeDate time.Time, out models.TradedDraftPick) (models.TradedDraftPick, error) {
	owner := rosters[pick.OriginalRosterID]

	slot, ok := board.SlotFor(owner.UserID, pick.OriginalRosterID)
	if !ok {
		return out, &models.DataIntegrityError{
			AssetID: pick.AssetID(),
			Reason:  fmt.Sprintf("no draft slot for roster %d in %s draft %s", pick.OriginalRosterID, board.Season, board.DraftID),
		}
	}

	var found []models.DraftSelection
	for _, s := range board.Selections {
		if s.Round == pick.Round && s.Slot == slot {
			found = append(found, s)
		}
	}
	switch len(found) {
	case 0:
		return out, &models.DataIntegrityError{
			AssetID: pick.AssetID(),
			Reason:  fmt.Sprintf("no selection at round %d slot %d in %s draft %s", pick.Round, slot, board.Season, board.DraftID),
		}
	case 1:
	default:
		return out, &models.DataIntegrityError{
			AssetID: pick.AssetID(),
			Reason:  fmt.Sprintf("%d selections at round %d slot %d in %s draft %s", len(found), pick.Round, slot, board.Season, board.DraftID),
		}
	}

	selection := found[0]
	name, valuation, err := a.valuer.AppraisePlayer(ctx, selection.PlayerID, tradeDate)
	if err != nil {
		return out, err
	}
	if name == values.UnknownPlayerName && selection.PlayerName != "" {
		name = selection.PlayerName
	}

	out.Resolution = models.PickResolvedToPlayer
	out.PlayerID = selection.PlayerID
	out.PlayerName = name
	out.Valuation = valuation
	return out, nil
}

func (a *App) resolveFuture(ctx context.Context, boards models.DraftBoards, pick models.TradedPick, rosters models.RosterIndex, tradeDate time.Time, out models.TradedDraftPick) (models.TradedDraftPick, error) {
	out.Resolution = models.PickResolvedToProxyValue

	if pick.Round > lastProxyRound {
		out.ProxyName = fmt.Sprintf("round %d floor", pick.Round)
		out.Valuation = models.FixedValuation(a.cfg.FloorValue)
		return out, nil
	}

	owner := rosters[pick.OriginalRosterID]
	slot := latestSlot(boards, owner.UserID, pick.OriginalRosterID)
	name := fmt.Sprintf("%s %s %s", pick.Season, models.PickRangeForSlot(slot), models.Ordinal(pick.Round))

	asset, err := a.valuer.FindAsset(ctx, name)
	if err != nil {
		return out, fmt.Errorf("failed to find proxy %q: %w", name, err)
	}
	if asset == nil {
		return out, &models.DataIntegrityError{
			AssetID: pick.AssetID(),
			Reason:  fmt.Sprintf("no proxy asset named %q", name),
		}
	}

	valuation, err := a.valuer.Appraise(ctx, *asset, tradeDate)
	if err != nil {
		return out, err
	}

	log.Debug().
		Str("asset_id", pick.AssetID()).
		Str("proxy", asset.Name).
		Int("slot", slot).
		Msg("valued future pick by proxy")

	out.ProxyName = asset.Name
	out.Valuation = valuation
	return out, nil
}

// latestSlot returns the roster's slot in the most recent draft that has
// one, or 0.
func latestSlot(boards models.DraftBoards, userID string, rosterID int) int {
	seasons := make([]string, 0, len(boards))
	for season := range boards {
		seasons = append(seasons, season)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(seasons)))

	for _, season := range seasons {
		if slot, ok := boards[season].SlotFor(userID, rosterID); ok {
			return slot
		}
	}
	return 0
}
