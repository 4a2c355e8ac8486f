package leaderboard

import (
	"context"
	"testing"

	"github.com/mcdev12/dynasty-trades/go/internal/leagues"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/mcdev12/dynasty-trades/go/internal/trades"
)

var rosters = []models.Roster{
	{RosterID: 1, UserName: "A"},
	{RosterID: 2, UserName: "B"},
	{RosterID: 3, UserName: "C"},
}

func trade(id string, values map[int]int) models.EnrichedTrade {
	t := models.EnrichedTrade{
		Transaction: models.Transaction{TransactionID: id, LeagueID: "L"},
		Ledgers:     map[int]models.RosterLedger{},
	}
	for _, r := range rosters {
		v, ok := values[r.RosterID]
		if !ok {
			continue
		}
		t.RosterIDs = append(t.RosterIDs, r.RosterID)
		l := models.NewRosterLedger(r)
		l.TotalCurrentValue = v
		t.Ledgers[r.RosterID] = l
	}
	return t
}

func entryFor(entries []models.LeaderboardEntry, rosterID int) models.LeaderboardEntry {
	for _, e := range entries {
		if e.RosterID == rosterID {
			return e
		}
	}
	return models.LeaderboardEntry{}
}

func TestAggregateNetValues(t *testing.T) {
	entries := Aggregate(rosters, []models.EnrichedTrade{
		trade("T1", map[int]int{1: 18500, 2: 5000}),
		trade("T2", map[int]int{1: 1000, 3: 3000}),
	})

	if len(entries) != 3 {
		t.Fatalf("expected an entry per roster, got %d", len(entries))
	}

	a := entryFor(entries, 1)
	if a.TotalNetValue != 13500-2000 || a.TotalTrades != 2 {
		t.Errorf("unexpected entry for A: %+v", a)
	}
	if a.BestTrade.TransactionID != "T1" || a.BestTrade.NetValue != 13500 {
		t.Errorf("unexpected best trade %+v", a.BestTrade)
	}
	if a.WorstTrade.TransactionID != "T2" || a.WorstTrade.NetValue != -2000 {
		t.Errorf("unexpected worst trade %+v", a.WorstTrade)
	}

	b := entryFor(entries, 2)
	if b.TotalNetValue != -13500 || b.TotalTrades != 1 {
		t.Errorf("unexpected entry for B: %+v", b)
	}
	if b.BestTrade != b.WorstTrade {
		t.Errorf("with one trade best and worst should be the same ref")
	}

	if entries[0].RosterID != 1 || entries[1].RosterID != 3 || entries[2].RosterID != 2 {
		t.Errorf("unexpected order %d, %d, %d", entries[0].RosterID, entries[1].RosterID, entries[2].RosterID)
	}
}

func TestAggregateExcludesThreePartyTrades(t *testing.T) {
	entries := Aggregate(rosters, []models.EnrichedTrade{
		trade("T3", map[int]int{1: 100, 2: 200, 3: 300}),
		trade("T2", map[int]int{1: 900, 2: 400}),
	})

	a := entryFor(entries, 1)
	if a.TotalNetValue != 500 || a.TotalTrades != 1 || a.BestTrade == nil || a.BestTrade.TransactionID != "T2" {
		t.Errorf("two-party trade not counted for A: %+v", a)
	}
	b := entryFor(entries, 2)
	if b.TotalNetValue != -500 || b.TotalTrades != 1 || b.WorstTrade == nil || b.WorstTrade.TransactionID != "T2" {
		t.Errorf("two-party trade not counted for B: %+v", b)
	}
	c := entryFor(entries, 3)
	if c.TotalTrades != 0 || c.TotalNetValue != 0 || c.BestTrade != nil || c.WorstTrade != nil {
		t.Errorf("three-party trade counted for C: %+v", c)
	}
}

func TestAggregateFirstBestTradeWinsTies(t *testing.T) {
	entries := Aggregate(rosters, []models.EnrichedTrade{
		trade("first", map[int]int{1: 500, 2: 0}),
		trade("second", map[int]int{1: 500, 2: 0}),
	})

	a := entryFor(entries, 1)
	if a.BestTrade.TransactionID != "first" || a.WorstTrade.TransactionID != "first" {
		t.Errorf("expected first occurrence to win ties, got best=%s worst=%s", a.BestTrade.TransactionID, a.WorstTrade.TransactionID)
	}
}

func TestAggregateTieOrderByRosterID(t *testing.T) {
	entries := Aggregate(rosters, nil)
	for i, e := range entries {
		if e.RosterID != i+1 {
			t.Fatalf("expected roster id order on equal totals, got %d at %d", e.RosterID, i)
		}
	}
}

type fakeHistory struct {
	history *trades.EnrichedHistory
}

func (f *fakeHistory) EnrichHistory(ctx context.Context, leagueID string, rosterID int) (*trades.EnrichedHistory, error) {
	return f.history, nil
}

func TestGetLeaderboard(t *testing.T) {
	app := NewApp(&fakeHistory{history: &trades.EnrichedHistory{
		History: leagues.History{Current: models.LeagueSeason{LeagueID: "L", Name: "League", Season: "2025"}},
		Rosters: rosters,
		Trades: []models.EnrichedTrade{
			trade("T1", map[int]int{1: 10, 2: 5}),
			trade("T2", map[int]int{1: 1, 2: 1, 3: 1}),
		},
	}})

	board, err := app.GetLeaderboard(context.Background(), "L")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.LeagueName != "League" || board.TradesCount != 2 || len(board.Entries) != 3 {
		t.Errorf("unexpected leaderboard %+v", board)
	}
	if board.Entries[0].RosterID != 1 || board.Entries[0].TotalNetValue != 5 {
		t.Errorf("unexpected leader %+v", board.Entries[0])
	}
}
