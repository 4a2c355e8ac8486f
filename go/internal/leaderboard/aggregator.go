package leaderboard

import (
	"sort"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

// Aggregate ranks rosters by the net value they gained through trades. Only
// trades between exactly two known rosters count. Entries are ordered by
// total net value, highest first, then by roster id.
func Aggregate(rosters []models.Roster, trades []models.EnrichedTrade) []models.LeaderboardEntry {
	entries := make(map[int]*models.LeaderboardEntry, len(rosters))
	for _, r := range rosters {
		entries[r.RosterID] = &models.LeaderboardEntry{Roster: r}
	}

	for _, trade := range trades {
		if trade.Parties() != 2 {
			continue
		}
		idA, idB := trade.RosterIDs[0], trade.RosterIDs[1]
		entryA, okA := entries[idA]
		entryB, okB := entries[idB]
		ledgerA, okLA := trade.Ledgers[idA]
		ledgerB, okLB := trade.Ledgers[idB]
		if !okA || !okB || !okLA || !okLB {
			continue
		}

		netA := ledgerA.TotalCurrentValue - ledgerB.TotalCurrentValue
		record(entryA, trade, netA)
		record(entryB, trade, -netA)
	}

	out := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalNetValue != out[j].TotalNetValue {
			return out[i].TotalNetValue > out[j].TotalNetValue
		}
		return out[i].RosterID < out[j].RosterID
	})
	return out
}

func record(e *models.LeaderboardEntry, trade models.EnrichedTrade, net int) {
	e.TotalNetValue += net
	e.TotalTrades++

	ref := &models.TradeRef{
		TransactionID: trade.TransactionID,
		LeagueID:      trade.LeagueID,
		Week:          trade.Week,
		CreatedAt:     trade.CreatedAt,
		NetValue:      net,
	}
	if e.BestTrade == nil || net > e.BestTrade.NetValue {
		e.BestTrade = ref
	}
	if e.WorstTrade == nil || net < e.WorstTrade.NetValue {
		e.WorstTrade = ref
	}
}
