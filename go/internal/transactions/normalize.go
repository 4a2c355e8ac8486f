package transactions

import (
	"time"

	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

const prettyDateLayout = "Jan 02 2006"

// keep reports whether a raw transaction is a completed trade that moved at
// least one player. Pick-only trades carry no adds and are left out.
func keep(tx sleeperclient.Transaction) bool {
	return tx.IsCompletedTrade() && tx.Adds != nil
}

// normalize converts a raw upstream trade into a models.Transaction. Dates
// are rendered in UTC.
func normalize(leagueID string, tx sleeperclient.Transaction) models.Transaction {
	created := time.UnixMilli(tx.StatusUpdated).UTC()

	picks := make([]models.TradedPick, 0, len(tx.DraftPicks))
	for _, p := range tx.DraftPicks {
		picks = append(picks, models.TradedPick{
			Season:           p.Season,
			Round:            p.Round,
			OriginalRosterID: p.RosterID,
			PreviousOwnerID:  p.PreviousOwnerID,
			OwnerID:          p.OwnerID,
		})
	}

	budget := make([]models.WaiverTransfer, 0, len(tx.WaiverBudget))
	for _, b := range tx.WaiverBudget {
		budget = append(budget, models.WaiverTransfer{
			Sender:   b.Sender,
			Receiver: b.Receiver,
			Amount:   b.Amount,
		})
	}

	adds := make(map[string]int, len(tx.Adds))
	for playerID, rosterID := range tx.Adds {
		adds[playerID] = rosterID
	}

	return models.Transaction{
		LeagueID:        leagueID,
		TransactionID:   tx.TransactionID,
		CreatedAtMillis: tx.StatusUpdated,
		CreatedAt:       created.Format(models.DateLayout),
		CreatedAtPretty: created.Format(prettyDateLayout),
		Week:            tx.Leg,
		RosterIDs:       append([]int(nil), tx.RosterIDs...),
		Adds:            adds,
		DraftPicks:      picks,
		WaiverBudget:    budget,
	}
}
