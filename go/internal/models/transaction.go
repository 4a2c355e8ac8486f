package models

import (
	"fmt"
	"strconv"
)

// TradedPick is a draft pick that changed hands in a trade. OriginalRosterID
// is the roster the pick originally belonged to; OwnerID receives it.
type TradedPick struct {
	Season           string `json:"season"`
	Round            int    `json:"round"`
	OriginalRosterID int    `json:"roster_id"`
	PreviousOwnerID  int    `json:"previous_owner_id"`
	OwnerID          int    `json:"owner_id"`
}

// AssetID identifies the pick in logs and integrity errors.
func (p TradedPick) AssetID() string {
	return fmt.Sprintf("pick:%s:%d:%d", p.Season, p.Round, p.OriginalRosterID)
}

// Description renders the pick as "2025 1st round".
func (p TradedPick) Description() string {
	return fmt.Sprintf("%s %s round", p.Season, Ordinal(p.Round))
}

// WaiverTransfer moves free-agent budget (FAB) between two rosters.
type WaiverTransfer struct {
	Sender   int `json:"sender"`
	Receiver int `json:"receiver"`
	Amount   int `json:"amount"`
}

// Transaction is a completed trade as collected from the league platform.
// It is never mutated after collection.
type Transaction struct {
	LeagueID        string           `json:"league_id"`
	TransactionID   string           `json:"transaction_id"`
	CreatedAtMillis int64            `json:"created_at_millis"`
	CreatedAt       string           `json:"created_at_yyyy_mm_dd"`
	CreatedAtPretty string           `json:"created_at_pretty"`
	Week            int              `json:"week"`
	RosterIDs       []int            `json:"roster_ids"`
	Adds            map[string]int   `json:"adds"`
	DraftPicks      []TradedPick     `json:"draft_picks"`
	WaiverBudget    []WaiverTransfer `json:"waiver_budget"`
}

// Involves reports whether rosterID is a party to the trade.
func (t Transaction) Involves(rosterID int) bool {
	for _, id := range t.RosterIDs {
		if id == rosterID {
			return true
		}
	}
	return false
}

// Ordinal renders 1 as "1st", 2 as "2nd" and so on.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
