package trades

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

type fakeValuer struct {
	values map[string]models.Valuation
	calls  atomic.Int64
}

func (f *fakeValuer) AppraisePlayer(ctx context.Context, id string, tradeDate time.Time) (string, models.Valuation, error) {
	f.calls.Add(1)
	v, ok := f.values[id]
	if !ok {
		return "Unknown Player", models.Valuation{}, nil
	}
	return "Player " + id, v, nil
}

type fakePicks struct {
	values map[string]models.Valuation
	err    error
}

func (f *fakePicks) Resolve(ctx context.Context, boards models.DraftBoards, pick models.TradedPick, rosters models.RosterIndex, tradeDate time.Time) (models.TradedDraftPick, error) {
	if f.err != nil {
		return models.TradedDraftPick{}, f.err
	}
	return models.TradedDraftPick{
		Season:      pick.Season,
		Round:       pick.Round,
		Description: pick.Description(),
		Resolution:  models.PickResolvedToProxyValue,
		Valuation:   f.values[pick.AssetID()],
	}, nil
}

func (f *fakePicks) LoadBoards(ctx context.Context, leagueIDs []string) (models.DraftBoards, error) {
	return models.DraftBoards{}, nil
}

var testRosters = models.NewRosterIndex([]models.Roster{
	{RosterID: 1, UserID: "ua", UserName: "A"},
	{RosterID: 2, UserID: "ub", UserName: "B"},
	{RosterID: 3, UserID: "uc", UserName: "C"},
})

func TestEnrichEndToEndScenario(t *testing.T) {
	tx := models.Transaction{
		LeagueID:      "L",
		TransactionID: "T1",
		CreatedAt:     "2024-06-01",
		RosterIDs:     []int{1, 2},
		Adds:          map[string]int{"X": 1, "Y": 2},
		DraftPicks:    []models.TradedPick{{Season: "2025", Round: 1, OriginalRosterID: 2, PreviousOwnerID: 2, OwnerID: 1}},
		WaiverBudget:  []models.WaiverTransfer{{Sender: 1, Receiver: 2, Amount: 50}},
	}
	valuer := &fakeValuer{values: map[string]models.Valuation{
		"X": {ValueWhenTraded: 8000, LatestValue: 9000},
		"Y": {ValueWhenTraded: 6000, LatestValue: 5000},
	}}
	picks := &fakePicks{values: map[string]models.Valuation{
		"pick:2025:1:2": models.FixedValuation(9500),
	}}

	got, err := Enrich(context.Background(), tx, testRosters, nil, valuer, picks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := got.Ledgers[1], got.Ledgers[2]
	if a.TotalCurrentValue != 18500 || b.TotalCurrentValue != 5000 {
		t.Errorf("current totals = %d/%d, want 18500/5000", a.TotalCurrentValue, b.TotalCurrentValue)
	}
	if a.TotalValueWhenTraded != 17500 || b.TotalValueWhenTraded != 6000 {
		t.Errorf("traded totals = %d/%d, want 17500/6000", a.TotalValueWhenTraded, b.TotalValueWhenTraded)
	}
	if !a.Won || b.Won {
		t.Errorf("won = %v/%v, want true/false", a.Won, b.Won)
	}
	if a.FAB != -50 || b.FAB != 50 {
		t.Errorf("fab = %d/%d, want -50/50", a.FAB, b.FAB)
	}
	if len(a.DraftPicks) != 1 || a.DraftPicks[0].Description != "2025 1st round" {
		t.Errorf("unexpected picks %+v", a.DraftPicks)
	}
	if a.UserName != "A" || b.UserName != "B" {
		t.Errorf("expected roster identity on ledgers")
	}
	if len(tx.Adds) != 2 || tx.WaiverBudget[0].Amount != 50 {
		t.Errorf("input transaction was modified")
	}
}

func TestEnrichTiesAllWin(t *testing.T) {
	tx := models.Transaction{
		TransactionID: "T2",
		CreatedAt:     "2024-06-01",
		RosterIDs:     []int{1, 2, 3},
		Adds:          map[string]int{"X": 1, "Y": 2, "Z": 3},
	}
	valuer := &fakeValuer{values: map[string]models.Valuation{
		"X": {LatestValue: 4000},
		"Y": {LatestValue: 4000},
		"Z": {LatestValue: 100},
	}}

	got, err := Enrich(context.Background(), tx, testRosters, nil, valuer, &fakePicks{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Ledgers[1].Won || !got.Ledgers[2].Won || got.Ledgers[3].Won {
		t.Errorf("expected rosters 1 and 2 to tie as winners")
	}
}

func TestEnrichUnknownRosterIsIntegrityError(t *testing.T) {
	tx := models.Transaction{
		LeagueID:      "L",
		TransactionID: "T3",
		CreatedAt:     "2024-06-01",
		RosterIDs:     []int{1, 12},
		Adds:          map[string]int{"X": 1},
	}

	_, err := Enrich(context.Background(), tx, testRosters, nil, &fakeValuer{}, &fakePicks{})

	var integrity *models.DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected data integrity error, got %v", err)
	}
	if integrity.TransactionID != "T3" || integrity.LeagueID != "L" || integrity.AssetID != "roster:12" {
		t.Errorf("unexpected integrity error %+v", integrity)
	}
}

func TestEnrichPickIntegrityErrorNamesTrade(t *testing.T) {
	tx := models.Transaction{
		LeagueID:      "L",
		TransactionID: "T4",
		CreatedAt:     "2024-06-01",
		RosterIDs:     []int{1, 2},
		Adds:          map[string]int{"X": 1},
		DraftPicks:    []models.TradedPick{{Season: "2030", Round: 1, OriginalRosterID: 2, OwnerID: 1}},
	}
	picks := &fakePicks{err: &models.DataIntegrityError{AssetID: "pick:2030:1:2", Reason: "no proxy"}}

	_, err := Enrich(context.Background(), tx, testRosters, nil, &fakeValuer{}, picks)

	var integrity *models.DataIntegrityError
	if !errors.As(err, &integrity) || integrity.TransactionID != "T4" {
		t.Fatalf("expected integrity error naming T4, got %v", err)
	}
}
