package sleeper_client

import (
	"context"
	"fmt"
	"net/url"
)

type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// GetUser returns nil without error for unknown usernames.
func (c *SleeperClient) GetUser(ctx context.Context, username string) (*User, error) {
	var user *User
	if err := c.getJSON(ctx, fmt.Sprintf(UserEndpoint, url.PathEscape(username)), &user); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return user, nil
}

func (c *SleeperClient) GetUserLeagues(ctx context.Context, userID, season string) ([]League, error) {
	var leagues []League
	if err := c.getJSON(ctx, fmt.Sprintf(UserLeaguesEndpoint, userID, SportNFL, season), &leagues); err != nil {
		return nil, fmt.Errorf("failed to get leagues for user %s season %s: %w", userID, season, err)
	}
	return leagues, nil
}
