package sleeper_client

import (
	"context"
	"fmt"
)

type DraftPick struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"roster_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
	OwnerID         int    `json:"owner_id"`
}

type WaiverBudget struct {
	Sender   int `json:"sender"`
	Receiver int `json:"receiver"`
	Amount   int `json:"amount"`
}

type Transaction struct {
	TransactionID string         `json:"transaction_id"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	StatusUpdated int64          `json:"status_updated"`
	Created       int64          `json:"created"`
	Leg           int            `json:"leg"`
	RosterIDs     []int          `json:"roster_ids"`
	Adds          map[string]int `json:"adds"`
	Drops         map[string]int `json:"drops"`
	DraftPicks    []DraftPick    `json:"draft_picks"`
	WaiverBudget  []WaiverBudget `json:"waiver_budget"`
}

func (t Transaction) IsCompletedTrade() bool {
	return t.Type == TransactionTypeTrade && t.Status == TransactionStatusComplete
}

func (c *SleeperClient) GetTransactions(ctx context.Context, leagueID string, week int) ([]Transaction, error) {
	var transactions []Transaction
	if err := c.getJSON(ctx, fmt.Sprintf(TransactionsEndpoint, leagueID, week), &transactions); err != nil {
		return nil, fmt.Errorf("failed to get transactions for league %s week %d: %w", leagueID, week, err)
	}
	return transactions, nil
}
