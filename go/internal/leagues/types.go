package leagues

import "github.com/mcdev12/dynasty-trades/go/internal/models"

// History is a league together with its linked previous seasons.
type History struct {
	Current  models.LeagueSeason   `json:"current"`
	Previous []models.HistoryEntry `json:"previous_leagues"`
}

// LeagueIDs returns the current league id followed by every previous one,
// newest first.
func (h History) LeagueIDs() []string {
	ids := make([]string, 0, len(h.Previous)+1)
	ids = append(ids, h.Current.LeagueID)
	for _, p := range h.Previous {
		ids = append(ids, p.LeagueID)
	}
	return ids
}

// UserLeagues is the response of a user league lookup.
type UserLeagues struct {
	Username string                `json:"username"`
	UserID   string                `json:"user_id"`
	Season   string                `json:"season"`
	Leagues  []models.LeagueSeason `json:"leagues"`
}
