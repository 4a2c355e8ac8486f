package transactions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/cache"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

type fakeSource struct {
	mu    sync.Mutex
	weeks map[string]map[int][]sleeperclient.Transaction
	fail  map[string]int
	calls int
}

func (f *fakeSource) GetTransactions(ctx context.Context, leagueID string, week int) ([]sleeperclient.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if w, ok := f.fail[leagueID]; ok && w == week {
		return nil, &models.UpstreamError{Endpoint: fmt.Sprintf("/league/%s/transactions/%d", leagueID, week), Status: 500, Err: errors.New("boom")}
	}
	return f.weeks[leagueID][week], nil
}

func trade(id string, week int, millis int64) sleeperclient.Transaction {
	return sleeperclient.Transaction{
		TransactionID: id,
		Type:          "trade",
		Status:        "complete",
		StatusUpdated: millis,
		Leg:           week,
		RosterIDs:     []int{1, 2},
		Adds:          map[string]int{"p-" + id: 1},
	}
}

func newTestApp(src *fakeSource) *App {
	c := cache.NewMemoryCache(time.Minute, clockwork.NewFakeClock())
	return NewApp(NewRepository(src, c), Config{})
}

func TestCollectHistoryFiltersAndOrders(t *testing.T) {
	waiver := trade("w", 1, 0)
	waiver.Type = "waiver"
	failed := trade("f", 1, 0)
	failed.Status = "failed"
	picksOnly := trade("p", 1, 0)
	picksOnly.Adds = nil

	src := &fakeSource{weeks: map[string]map[int][]sleeperclient.Transaction{
		"current": {
			1: {trade("c1", 1, 1), waiver, failed, picksOnly},
			7: {trade("c7", 7, 7)},
		},
		"previous": {
			0:  {trade("p0", 0, 0)},
			20: {trade("p20", 20, 20)},
		},
	}}

	got, err := newTestApp(src).CollectHistory(context.Background(), []string{"current", "previous"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"c1", "c7", "p0", "p20"}
	if len(got) != len(want) {
		t.Fatalf("expected %d trades, got %d: %+v", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i].TransactionID != id {
			t.Errorf("trade[%d] = %s, want %s", i, got[i].TransactionID, id)
		}
	}
	if got[2].LeagueID != "previous" {
		t.Errorf("expected league id to be stamped, got %q", got[2].LeagueID)
	}
	if src.calls != 2*DefaultScanWeeks {
		t.Errorf("expected %d weekly fetches, got %d", 2*DefaultScanWeeks, src.calls)
	}
}

func TestCollectHistoryCachesNonEmptyWeeksOnly(t *testing.T) {
	src := &fakeSource{weeks: map[string]map[int][]sleeperclient.Transaction{
		"L": {3: {trade("t", 3, 0)}},
	}}
	app := newTestApp(src)

	for i := 0; i < 2; i++ {
		if _, err := app.CollectHistory(context.Background(), []string{"L"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// 21 fetches the first time, 20 empty weeks again the second time.
	if want := DefaultScanWeeks + DefaultScanWeeks - 1; src.calls != want {
		t.Fatalf("expected %d fetches, got %d", want, src.calls)
	}
}

func TestCollectHistoryAbortsOnUpstreamFailure(t *testing.T) {
	src := &fakeSource{
		weeks: map[string]map[int][]sleeperclient.Transaction{"L": {1: {trade("t", 1, 0)}}},
		fail:  map[string]int{"L": 5},
	}

	_, err := newTestApp(src).CollectHistory(context.Background(), []string{"L"})
	if !errors.Is(err, models.ErrUpstreamFetch) {
		t.Fatalf("expected upstream fetch error, got %v", err)
	}
}

func TestNormalizeUsesUTCDates(t *testing.T) {
	ts := time.Date(2024, 1, 5, 23, 30, 0, 0, time.UTC).UnixMilli()
	raw := trade("t", 4, ts)
	raw.DraftPicks = []sleeperclient.DraftPick{{Season: "2025", Round: 1, RosterID: 2, PreviousOwnerID: 2, OwnerID: 1}}
	raw.WaiverBudget = []sleeperclient.WaiverBudget{{Sender: 1, Receiver: 2, Amount: 10}}

	tx := normalize("L", raw)

	if tx.CreatedAt != "2024-01-05" {
		t.Errorf("CreatedAt = %q", tx.CreatedAt)
	}
	if tx.CreatedAtPretty != "Jan 05 2024" {
		t.Errorf("CreatedAtPretty = %q", tx.CreatedAtPretty)
	}
	if tx.Week != 4 || tx.CreatedAtMillis != ts {
		t.Errorf("unexpected week/millis %d/%d", tx.Week, tx.CreatedAtMillis)
	}
	if tx.DraftPicks[0].OriginalRosterID != 2 || tx.DraftPicks[0].OwnerID != 1 {
		t.Errorf("unexpected pick %+v", tx.DraftPicks[0])
	}
	if tx.WaiverBudget[0].Amount != 10 {
		t.Errorf("unexpected waiver budget %+v", tx.WaiverBudget)
	}
}
