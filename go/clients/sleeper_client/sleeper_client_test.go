package sleeper_client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mcdev12/dynasty-trades/go/clients"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *SleeperClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewSleeperClient(server.URL, time.Second)
	client.SetRetry(clients.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond})
	return client
}

func TestGetTransactionsDecodesTrades(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/league/L1/transactions/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{
			"transaction_id": "T1",
			"type": "trade",
			"status": "complete",
			"status_updated": 1700000000000,
			"leg": 3,
			"roster_ids": [1, 2],
			"adds": {"4046": 1},
			"draft_picks": [{"season": "2025", "round": 1, "roster_id": 2, "previous_owner_id": 2, "owner_id": 1}],
			"waiver_budget": [{"sender": 1, "receiver": 2, "amount": 15}]
		}]`))
	})

	txs, err := client.GetTransactions(context.Background(), "L1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}

	tx := txs[0]
	if !tx.IsCompletedTrade() {
		t.Errorf("expected completed trade")
	}
	if tx.Adds["4046"] != 1 {
		t.Errorf("expected player 4046 added to roster 1, got %v", tx.Adds)
	}
	if len(tx.DraftPicks) != 1 || tx.DraftPicks[0].RosterID != 2 || tx.DraftPicks[0].OwnerID != 1 {
		t.Errorf("unexpected draft picks %+v", tx.DraftPicks)
	}
	if len(tx.WaiverBudget) != 1 || tx.WaiverBudget[0].Amount != 15 {
		t.Errorf("unexpected waiver budget %+v", tx.WaiverBudget)
	}
}

func TestGetLeagueNullIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	league, err := client.GetLeague(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if league != nil {
		t.Fatalf("expected nil league, got %+v", league)
	}
}

func TestServerErrorsAreRetriedThenSurfaced(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetRosters(context.Background(), "L1")
	if !errors.Is(err, models.ErrUpstreamFetch) {
		t.Fatalf("expected upstream fetch error, got %v", err)
	}

	var upstream *models.UpstreamError
	if !errors.As(err, &upstream) || upstream.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502 in upstream error, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.GetDrafts(context.Background(), "L1"); !errors.Is(err, models.ErrUpstreamFetch) {
		t.Fatalf("expected upstream fetch error, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestTimeoutIsUpstreamFailure(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.SetTimeout(20 * time.Millisecond)

	_, err := client.GetDraftPicks(context.Background(), "D1")
	if !errors.Is(err, models.ErrUpstreamFetch) {
		t.Fatalf("expected upstream fetch error, got %v", err)
	}
}

func TestMalformedBodyIsUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	if _, err := client.GetLeagueUsers(context.Background(), "L1"); !errors.Is(err, models.ErrUpstreamFetch) {
		t.Fatalf("expected upstream fetch error, got %v", err)
	}
}
