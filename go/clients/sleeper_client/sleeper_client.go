package sleeper_client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/dynasty-trades/go/clients"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

type SleeperClient struct {
	*clients.BaseClient
}

func NewSleeperClient(baseURL string, timeout time.Duration) *SleeperClient {
	if baseURL == "" {
		baseURL = BaseURL
	}

	client := &SleeperClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}

// getJSON fetches endpoint and decodes it into out. Undecodable bodies count
// as upstream failures.
func (c *SleeperClient) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &models.UpstreamError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("failed to unmarshal response: %w", err),
		}
	}

	return nil
}
