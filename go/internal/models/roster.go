package models

// Roster is a league member's team. RosterID is stable within a season
// and is the join key for every leg of a trade.
type Roster struct {
	RosterID     int    `json:"roster_id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Avatar       string `json:"user_avatar,omitempty"`
	RosterAvatar string `json:"roster_avatar,omitempty"`
}

// RosterIndex looks rosters up by roster id.
type RosterIndex map[int]Roster

// NewRosterIndex indexes rosters by roster id.
func NewRosterIndex(rosters []Roster) RosterIndex {
	idx := make(RosterIndex, len(rosters))
	for _, r := range rosters {
		idx[r.RosterID] = r
	}
	return idx
}
