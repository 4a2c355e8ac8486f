package sleeper_client

import (
	"context"
	"fmt"
)

type Draft struct {
	DraftID        string         `json:"draft_id"`
	LeagueID       string         `json:"league_id"`
	Season         string         `json:"season"`
	Status         string         `json:"status"`
	Type           string         `json:"type"`
	DraftOrder     map[string]int `json:"draft_order"`
	SlotToRosterID map[string]int `json:"slot_to_roster_id"`
	StartTime      int64          `json:"start_time"`
}

type DraftPickMetadata struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

func (m DraftPickMetadata) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	default:
		return m.FirstName + " " + m.LastName
	}
}

type DraftedPlayer struct {
	PlayerID  string            `json:"player_id"`
	Round     int               `json:"round"`
	DraftSlot int               `json:"draft_slot"`
	PickNo    int               `json:"pick_no"`
	RosterID  int               `json:"roster_id"`
	PickedBy  string            `json:"picked_by"`
	DraftID   string            `json:"draft_id"`
	Metadata  DraftPickMetadata `json:"metadata"`
}

func (c *SleeperClient) GetDrafts(ctx context.Context, leagueID string) ([]Draft, error) {
	var drafts []Draft
	if err := c.getJSON(ctx, fmt.Sprintf(DraftsEndpoint, leagueID), &drafts); err != nil {
		return nil, fmt.Errorf("failed to get drafts for league %s: %w", leagueID, err)
	}
	return drafts, nil
}

func (c *SleeperClient) GetDraftPicks(ctx context.Context, draftID string) ([]DraftedPlayer, error) {
	var picks []DraftedPlayer
	if err := c.getJSON(ctx, fmt.Sprintf(DraftPicksEndpoint, draftID), &picks); err != nil {
		return nil, fmt.Errorf("failed to get picks for draft %s: %w", draftID, err)
	}
	return picks, nil
}
