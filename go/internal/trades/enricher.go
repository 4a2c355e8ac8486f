package trades

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

// PlayerValuer values a player received in a trade.
type PlayerValuer interface {
	AppraisePlayer(ctx context.Context, sleeperPlayerID string, tradeDate time.Time) (string, models.Valuation, error)
}

// PickResolver values a draft pick received in a trade.
type PickResolver interface {
	Resolve(ctx context.Context, boards models.DraftBoards, pick models.TradedPick, rosters models.RosterIndex, tradeDate time.Time) (models.TradedDraftPick, error)
}

// Enrich builds a valued ledger for every roster in tx. Any reference to a
// roster that does not exist fails the whole trade with a
// *models.DataIntegrityError naming the trade.
func Enrich(ctx context.Context, tx models.Transaction, rosters models.RosterIndex, boards models.DraftBoards, valuer PlayerValuer, picks PickResolver) (models.EnrichedTrade, error) {
	trade, err := enrich(ctx, tx, rosters, boards, valuer, picks)
	if err != nil {
		var integrity *models.DataIntegrityError
		if errors.As(err, &integrity) {
			integrity.LeagueID = tx.LeagueID
			integrity.TransactionID = tx.TransactionID
		}
		return models.EnrichedTrade{}, err
	}
	return trade, nil
}

func enrich(ctx context.Context, tx models.Transaction, rosters models.RosterIndex, boards models.DraftBoards, valuer PlayerValuer, picks PickResolver) (models.EnrichedTrade, error) {
	tradeDate, err := time.Parse(models.DateLayout, tx.CreatedAt)
	if err != nil {
		tradeDate = time.UnixMilli(tx.CreatedAtMillis).UTC().Truncate(24 * time.Hour)
	}

	ledgers := make(map[int]models.RosterLedger, len(tx.RosterIDs))
	for _, id := range tx.RosterIDs {
		r, ok := rosters[id]
		if !ok {
			return models.EnrichedTrade{}, unknownRoster(id, "trade party")
		}
		ledgers[id] = models.NewRosterLedger(r)
	}

	for _, wb := range tx.WaiverBudget {
		sender, ok := ledgers[wb.Sender]
		if !ok {
			return models.EnrichedTrade{}, unknownRoster(wb.Sender, "waiver budget sender")
		}
		receiver, ok := ledgers[wb.Receiver]
		if !ok {
			return models.EnrichedTrade{}, unknownRoster(wb.Receiver, "waiver budget receiver")
		}
		sender.FAB -= wb.Amount
		ledgers[wb.Sender] = sender
		receiver.FAB += wb.Amount
		ledgers[wb.Receiver] = receiver
	}

	for _, pick := range tx.DraftPicks {
		ledger, ok := ledgers[pick.OwnerID]
		if !ok {
			return models.EnrichedTrade{}, &models.DataIntegrityError{
				AssetID: pick.AssetID(),
				Reason:  fmt.Sprintf("pick owner roster %d is not part of the trade", pick.OwnerID),
			}
		}

		resolved, err := picks.Resolve(ctx, boards, pick, rosters, tradeDate)
		if err != nil {
			return models.EnrichedTrade{}, err
		}

		ledger.DraftPicks = append(ledger.DraftPicks, resolved)
		ledger.TotalValueWhenTraded += resolved.ValueWhenTraded
		ledger.TotalCurrentValue += resolved.LatestValue
		ledgers[pick.OwnerID] = ledger
	}

	for _, playerID := range slices.Sorted(maps.Keys(tx.Adds)) {
		rosterID := tx.Adds[playerID]
		ledger, ok := ledgers[rosterID]
		if !ok {
			return models.EnrichedTrade{}, &models.DataIntegrityError{
				AssetID: "player:" + playerID,
				Reason:  fmt.Sprintf("receiving roster %d is not part of the trade", rosterID),
			}
		}

		name, valuation, err := valuer.AppraisePlayer(ctx, playerID, tradeDate)
		if err != nil {
			return models.EnrichedTrade{}, err
		}

		ledger.Players = append(ledger.Players, models.TradedPlayer{
			PlayerID:   playerID,
			PlayerName: name,
			Valuation:  valuation,
		})
		ledger.TotalValueWhenTraded += valuation.ValueWhenTraded
		ledger.TotalCurrentValue += valuation.LatestValue
		ledgers[rosterID] = ledger
	}

	markWinners(ledgers)

	return models.EnrichedTrade{
		Transaction: tx,
		Ledgers:     ledgers,
	}, nil
}

// markWinners flags every roster whose current value equals the highest in
// the trade.
func markWinners(ledgers map[int]models.RosterLedger) {
	best := 0
	first := true
	for _, l := range ledgers {
		if first || l.TotalCurrentValue > best {
			best = l.TotalCurrentValue
			first = false
		}
	}
	for id, l := range ledgers {
		l.Won = l.TotalCurrentValue == best
		ledgers[id] = l
	}
}

func unknownRoster(rosterID int, role string) error {
	return &models.DataIntegrityError{
		AssetID: fmt.Sprintf("roster:%d", rosterID),
		Reason:  fmt.Sprintf("%s roster %d does not exist in the league", role, rosterID),
	}
}
