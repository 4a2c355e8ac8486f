package models

// TradedPlayer is a player received by a roster in a trade.
type TradedPlayer struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Valuation
}

// TradedDraftPick is a draft pick received by a roster in a trade, resolved
// either to the player drafted with it or to a proxy value.
type TradedDraftPick struct {
	Season           string         `json:"season"`
	Round            int            `json:"round"`
	OriginalRosterID int            `json:"original_roster_id"`
	Description      string         `json:"description"`
	Resolution       PickResolution `json:"resolution"`
	PlayerID         string         `json:"player_id,omitempty"`
	PlayerName       string         `json:"player_name,omitempty"`
	ProxyName        string         `json:"proxy_name,omitempty"`
	Valuation
}

// RosterLedger is what one roster gave and got in a trade.
type RosterLedger struct {
	Roster
	FAB                  int               `json:"fab"`
	Players              []TradedPlayer    `json:"players"`
	DraftPicks           []TradedDraftPick `json:"draft_picks"`
	TotalValueWhenTraded int               `json:"total_value_when_traded"`
	TotalCurrentValue    int               `json:"total_current_value"`
	Won                  bool              `json:"won"`
}

// NewRosterLedger returns a zeroed ledger carrying the roster's identity.
func NewRosterLedger(r Roster) RosterLedger {
	return RosterLedger{
		Roster:     r,
		Players:    []TradedPlayer{},
		DraftPicks: []TradedDraftPick{},
	}
}

// EnrichedTrade is a transaction with a valued ledger for every party.
type EnrichedTrade struct {
	Transaction
	Ledgers map[int]RosterLedger `json:"rosters"`
}

// Parties returns the number of rosters involved in the trade.
func (t EnrichedTrade) Parties() int {
	return len(t.RosterIDs)
}

// TradePage is one page of enriched trades for a league.
type TradePage struct {
	LeagueID        string          `json:"league_id"`
	LeagueName      string          `json:"league_name"`
	LeagueSeason    string          `json:"league_season"`
	LeagueAvatar    string          `json:"league_avatar,omitempty"`
	RosterFilter    string          `json:"roster_id"`
	Page            int             `json:"page"`
	PageSize        int             `json:"page_size"`
	TotalPages      int             `json:"total_pages"`
	TotalTrades     int             `json:"total_trades"`
	HasNext         bool            `json:"has_next"`
	HasPrevious     bool            `json:"has_previous"`
	SkippedTrades   int             `json:"skipped_trades"`
	PreviousLeagues []HistoryEntry  `json:"previous_leagues"`
	Rosters         []Roster        `json:"league_users"`
	Trades          []EnrichedTrade `json:"trades"`
}
