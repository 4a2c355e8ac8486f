package trades

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mcdev12/dynasty-trades/go/internal/leagues"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

type fakeLeagues struct {
	history *leagues.History
	rosters []models.Roster
	err     error
}

func (f *fakeLeagues) ResolveHistory(ctx context.Context, leagueID string) (*leagues.History, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func (f *fakeLeagues) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	return f.rosters, nil
}

type fakeCollector struct {
	txs []models.Transaction
	ids []string
}

func (f *fakeCollector) CollectHistory(ctx context.Context, leagueIDs []string) ([]models.Transaction, error) {
	f.ids = leagueIDs
	return f.txs, nil
}

func testHistory() *leagues.History {
	return &leagues.History{
		Current:  models.LeagueSeason{LeagueID: "L25", Season: "2025", Name: "Dynasty Bros"},
		Previous: []models.HistoryEntry{{LeagueID: "L24", Season: "2024"}},
	}
}

func txAt(id string, millis int64, rosters ...int) models.Transaction {
	return models.Transaction{
		LeagueID:        "L25",
		TransactionID:   id,
		CreatedAtMillis: millis,
		CreatedAt:       "2024-06-01",
		RosterIDs:       rosters,
		Adds:            map[string]int{"P" + id: rosters[0]},
	}
}

func newTestApp(txs []models.Transaction) (*App, *fakeCollector) {
	collector := &fakeCollector{txs: txs}
	lg := &fakeLeagues{
		history: testHistory(),
		rosters: []models.Roster{{RosterID: 1, UserName: "A"}, {RosterID: 2, UserName: "B"}, {RosterID: 3, UserName: "C"}},
	}
	return NewApp(lg, collector, &fakePicks{}, &fakeValuer{}, Config{}), collector
}

func TestGetTradesSortsNewestFirstAndPaginates(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 45; i++ {
		txs = append(txs, txAt(fmt.Sprintf("T%02d", i), int64(i), 1, 2))
	}
	app, collector := newTestApp(txs)

	page, err := app.GetTrades(context.Background(), "L25", "all", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collector.ids) != 2 || collector.ids[0] != "L25" || collector.ids[1] != "L24" {
		t.Errorf("expected history league ids, got %v", collector.ids)
	}
	if page.TotalTrades != 45 || page.TotalPages != 3 || len(page.Trades) != 20 {
		t.Errorf("unexpected page counts %d/%d/%d", page.TotalTrades, page.TotalPages, len(page.Trades))
	}
	if page.Trades[0].TransactionID != "T44" {
		t.Errorf("expected newest trade first, got %s", page.Trades[0].TransactionID)
	}
	if !page.HasNext || page.HasPrevious {
		t.Errorf("unexpected has_next/has_previous %v/%v", page.HasNext, page.HasPrevious)
	}
	if page.LeagueName != "Dynasty Bros" || len(page.PreviousLeagues) != 1 || len(page.Rosters) != 3 {
		t.Errorf("unexpected league info %+v", page)
	}

	last, err := app.GetTrades(context.Background(), "L25", "all", "99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last.Page != 3 || len(last.Trades) != 5 || last.Trades[4].TransactionID != "T00" {
		t.Errorf("unexpected last page %d with %d trades", last.Page, len(last.Trades))
	}
}

func TestEnrichHistoryValuesTradesConcurrently(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 45; i++ {
		txs = append(txs, txAt(fmt.Sprintf("T%02d", i), int64(i), 1, 2))
	}
	valuer := &fakeValuer{}
	lg := &fakeLeagues{
		history: testHistory(),
		rosters: []models.Roster{{RosterID: 1, UserName: "A"}, {RosterID: 2, UserName: "B"}},
	}
	app := NewApp(lg, &fakeCollector{txs: txs}, &fakePicks{}, valuer, Config{EnrichConcurrency: 8})

	history, err := app.EnrichHistory(context.Background(), "L25", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Trades) != 45 || history.Skipped != 0 {
		t.Errorf("expected 45 enriched trades, got %d (%d skipped)", len(history.Trades), history.Skipped)
	}
	if got := valuer.calls.Load(); got != 45 {
		t.Errorf("expected one appraisal per added player, got %d", got)
	}
}

func TestGetTradesFiltersByRoster(t *testing.T) {
	app, _ := newTestApp([]models.Transaction{
		txAt("T1", 1, 1, 2),
		txAt("T2", 2, 2, 3),
		txAt("T3", 3, 1, 3),
	})

	page, err := app.GetTrades(context.Background(), "L25", "3", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalTrades != 2 || page.RosterFilter != "3" {
		t.Fatalf("expected 2 trades for roster 3, got %d", page.TotalTrades)
	}
	for _, tr := range page.Trades {
		if !tr.Involves(3) {
			t.Errorf("trade %s does not involve roster 3", tr.TransactionID)
		}
	}
}

func TestGetTradesSkipsIntegrityFailures(t *testing.T) {
	app, _ := newTestApp([]models.Transaction{
		txAt("T1", 1, 1, 2),
		txAt("T2", 2, 1, 9),
	})

	page, err := app.GetTrades(context.Background(), "L25", "all", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalTrades != 1 || page.SkippedTrades != 1 || page.Trades[0].TransactionID != "T1" {
		t.Fatalf("expected T2 to be skipped, got %+v", page)
	}
}

func TestGetTradesRejectsBadRosterFilter(t *testing.T) {
	app, _ := newTestApp(nil)

	if _, err := app.GetTrades(context.Background(), "L25", "two", "1"); !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestGetTradesPropagatesHistoryCycle(t *testing.T) {
	app := NewApp(&fakeLeagues{err: fmt.Errorf("league A links back to B: %w", models.ErrHistoryCycle)},
		&fakeCollector{}, &fakePicks{}, &fakeValuer{}, Config{})

	if _, err := app.GetTrades(context.Background(), "A", "all", "1"); !errors.Is(err, models.ErrHistoryCycle) {
		t.Fatalf("expected history cycle, got %v", err)
	}
}

func TestGetTradesEmptyLeague(t *testing.T) {
	app, _ := newTestApp(nil)

	page, err := app.GetTrades(context.Background(), "L25", "all", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 1 || len(page.Trades) != 0 || page.Trades == nil {
		t.Fatalf("expected one empty page, got %+v", page)
	}
}
