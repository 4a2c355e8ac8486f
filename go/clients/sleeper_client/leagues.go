package sleeper_client

import (
	"context"
	"fmt"
)

type LeagueSettings struct {
	Type int `json:"type"`
}

type League struct {
	LeagueID         string         `json:"league_id"`
	PreviousLeagueID string         `json:"previous_league_id"`
	Name             string         `json:"name"`
	Season           string         `json:"season"`
	Status           string         `json:"status"`
	Sport            string         `json:"sport"`
	Avatar           string         `json:"avatar"`
	TotalRosters     int            `json:"total_rosters"`
	DraftID          string         `json:"draft_id"`
	Settings         LeagueSettings `json:"settings"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
	Avatar   string `json:"avatar"`
}

type LeagueUser struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar"`
	Metadata    UserMetadata `json:"metadata"`
}

type Roster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
	LeagueID string `json:"league_id"`
}

// GetLeague returns nil without error when the league does not exist; the
// upstream answers unknown ids with a literal null.
func (c *SleeperClient) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	var league *League
	if err := c.getJSON(ctx, fmt.Sprintf(LeagueEndpoint, leagueID), &league); err != nil {
		return nil, fmt.Errorf("failed to get league %s: %w", leagueID, err)
	}
	return league, nil
}

func (c *SleeperClient) GetLeagueUsers(ctx context.Context, leagueID string) ([]LeagueUser, error) {
	var users []LeagueUser
	if err := c.getJSON(ctx, fmt.Sprintf(LeagueUsersEndpoint, leagueID), &users); err != nil {
		return nil, fmt.Errorf("failed to get users for league %s: %w", leagueID, err)
	}
	return users, nil
}

func (c *SleeperClient) GetRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.getJSON(ctx, fmt.Sprintf(RostersEndpoint, leagueID), &rosters); err != nil {
		return nil, fmt.Errorf("failed to get rosters for league %s: %w", leagueID, err)
	}
	return rosters, nil
}
