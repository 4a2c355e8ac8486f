package models

// LeagueType represents the type of league
type LeagueType string

const (
	LeagueTypeRedraft LeagueType = "Redraft"
	LeagueTypeKeeper  LeagueType = "Keeper"
	LeagueTypeDynasty LeagueType = "Dynasty"
	LeagueTypeUnknown LeagueType = "Unknown"
)

// LeagueTypeFromSetting maps the upstream numeric league type setting.
func LeagueTypeFromSetting(v int) LeagueType {
	switch v {
	case 0:
		return LeagueTypeRedraft
	case 1:
		return LeagueTypeKeeper
	case 2:
		return LeagueTypeDynasty
	default:
		return LeagueTypeUnknown
	}
}

// LeagueSeason is one season-specific instance of a persistent league.
// Seasons are linked backward through PreviousLeagueID.
type LeagueSeason struct {
	LeagueID         string     `json:"league_id"`
	Season           string     `json:"season"`
	PreviousLeagueID string     `json:"previous_league_id,omitempty"`
	Name             string     `json:"name"`
	Avatar           string     `json:"avatar,omitempty"`
	Sport            string     `json:"sport,omitempty"`
	LeagueType       LeagueType `json:"league_type,omitempty"`
}

// HasPrevious reports whether the season links to an earlier one.
// Both "" and "0" terminate the chain.
func (l LeagueSeason) HasPrevious() bool {
	return l.PreviousLeagueID != "" && l.PreviousLeagueID != "0"
}

// HistoryEntry is one previous season in a league's history chain.
type HistoryEntry struct {
	LeagueID string `json:"previous_league_id"`
	Season   string `json:"season"`
}
