package draftpicks

import (
	"context"
	"strconv"

	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/cache"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

// DraftSource defines what the repository needs from the league platform
type DraftSource interface {
	GetDrafts(ctx context.Context, leagueID string) ([]sleeperclient.Draft, error)
	GetDraftPicks(ctx context.Context, draftID string) ([]sleeperclient.DraftedPlayer, error)
}

// Repository builds draft boards from cached upstream drafts
type Repository struct {
	source DraftSource
	cache  cache.Cache
}

// NewRepository creates a new draft picks repository
func NewRepository(source DraftSource, c cache.Cache) *Repository {
	return &Repository{
		source: source,
		cache:  c,
	}
}

// GetDraftBoard returns the board of the league's rookie draft, or nil when
// the league has no draft.
func (r *Repository) GetDraftBoard(ctx context.Context, leagueID string) (*models.DraftBoard, error) {
	drafts, err := cache.Fetch(ctx, r.cache, cache.Key{Kind: cache.KindDrafts, ID: leagueID},
		func(ctx context.Context) ([]sleeperclient.Draft, error) {
			return r.source.GetDrafts(ctx, leagueID)
		}, cache.EmptySlice[sleeperclient.Draft])
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, nil
	}

	// A league season has a single draft; the first one listed is used.
	draft := drafts[0]

	picks, err := cache.Fetch(ctx, r.cache, cache.Key{Kind: cache.KindDraftPicks, ID: draft.DraftID},
		func(ctx context.Context) ([]sleeperclient.DraftedPlayer, error) {
			return r.source.GetDraftPicks(ctx, draft.DraftID)
		}, cache.EmptySlice[sleeperclient.DraftedPlayer])
	if err != nil {
		return nil, err
	}

	board := buildBoard(leagueID, draft, picks)
	return &board, nil
}

func buildBoard(leagueID string, draft sleeperclient.Draft, picks []sleeperclient.DraftedPlayer) models.DraftBoard {
	board := models.DraftBoard{
		Season:       draft.Season,
		LeagueID:     leagueID,
		DraftID:      draft.DraftID,
		Status:       draft.Status,
		SlotByUser:   make(map[string]int, len(draft.DraftOrder)),
		SlotByRoster: make(map[int]int, len(draft.SlotToRosterID)),
		Selections:   make([]models.DraftSelection, 0, len(picks)),
	}

	for userID, slot := range draft.DraftOrder {
		board.SlotByUser[userID] = slot
	}
	for slotKey, rosterID := range draft.SlotToRosterID {
		slot, err := strconv.Atoi(slotKey)
		if err != nil {
			continue
		}
		board.SlotByRoster[rosterID] = slot
	}

	for _, p := range picks {
		if p.PlayerID == "" {
			continue
		}
		board.Selections = append(board.Selections, models.DraftSelection{
			PlayerID:   p.PlayerID,
			PlayerName: p.Metadata.FullName(),
			Round:      p.Round,
			Slot:       p.DraftSlot,
			PickNo:     p.PickNo,
			RosterID:   p.RosterID,
			PickedBy:   p.PickedBy,
		})
	}

	return board
}
