package models

// TradeRef points at a trade from a leaderboard entry.
type TradeRef struct {
	TransactionID string `json:"transaction_id"`
	LeagueID      string `json:"league_id"`
	Week          int    `json:"week"`
	CreatedAt     string `json:"created_at_yyyy_mm_dd"`
	NetValue      int    `json:"net_value"`
}

// LeaderboardEntry is one roster's cumulative trading record.
type LeaderboardEntry struct {
	Roster
	TotalNetValue int       `json:"total_net_value"`
	TotalTrades   int       `json:"total_trades"`
	BestTrade     *TradeRef `json:"best_trade"`
	WorstTrade    *TradeRef `json:"worst_trade"`
}

// Leaderboard ranks the current season's rosters by net trade value.
type Leaderboard struct {
	LeagueID     string             `json:"league_id"`
	LeagueName   string             `json:"league_name"`
	LeagueAvatar string             `json:"league_avatar,omitempty"`
	Season       string             `json:"league_season"`
	TradesCount  int                `json:"trades_count"`
	Skipped      int                `json:"skipped_trades"`
	Rosters      []Roster           `json:"league_users"`
	Entries      []LeaderboardEntry `json:"leaderboard"`
}
