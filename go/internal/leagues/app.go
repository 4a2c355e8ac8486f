package leagues

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/rs/zerolog/log"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	GetLeague(ctx context.Context, leagueID string) (*models.LeagueSeason, error)
	GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error)
	GetUser(ctx context.Context, username string) (*sleeperclient.User, error)
	GetUserLeagues(ctx context.Context, userID, season string) ([]models.LeagueSeason, error)
}

// App handles league identity and history
type App struct {
	repo  LeaguesRepository
	clock clockwork.Clock
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// GetLeague retrieves one league season
func (a *App) GetLeague(ctx context.Context, leagueID string) (*models.LeagueSeason, error) {
	if strings.TrimSpace(leagueID) == "" {
		return nil, fmt.Errorf("league id is required: %w", models.ErrInvalidArgument)
	}
	return a.repo.GetLeague(ctx, leagueID)
}

// GetRosters retrieves the league's rosters with their owners
func (a *App) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	rosters, err := a.repo.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rosters: %w", err)
	}
	return rosters, nil
}

// ResolveHistory follows previous_league_id links from leagueID until the
// chain ends. A league id seen twice is reported as models.ErrHistoryCycle.
func (a *App) ResolveHistory(ctx context.Context, leagueID string) (*History, error) {
	current, err := a.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	history := &History{Current: *current}
	seen := map[string]struct{}{current.LeagueID: {}}

	league := current
	for league.HasPrevious() {
		prevID := league.PreviousLeagueID
		if _, ok := seen[prevID]; ok {
			return nil, fmt.Errorf("league %s links back to %s: %w", league.LeagueID, prevID, models.ErrHistoryCycle)
		}
		seen[prevID] = struct{}{}

		league, err = a.repo.GetLeague(ctx, prevID)
		if err != nil {
			return nil, fmt.Errorf("failed to get previous league %s: %w", prevID, err)
		}
		history.Previous = append(history.Previous, models.HistoryEntry{
			LeagueID: prevID,
			Season:   league.Season,
		})
	}

	log.Debug().
		Str("league_id", leagueID).
		Int("league_history_count", len(history.Previous)).
		Msg("resolved league history")

	return history, nil
}

// GetUserLeagues looks a user up by username and lists their leagues for
// season, defaulting to the current year.
func (a *App) GetUserLeagues(ctx context.Context, username, season string) (*UserLeagues, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required: %w", models.ErrInvalidArgument)
	}
	if season == "" {
		season = strconv.Itoa(a.clock.Now().Year())
	} else if _, err := strconv.Atoi(season); err != nil {
		return nil, fmt.Errorf("season %q is not a year: %w", season, models.ErrInvalidArgument)
	}

	user, err := a.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	leagues, err := a.repo.GetUserLeagues(ctx, user.UserID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to get user leagues: %w", err)
	}

	return &UserLeagues{
		Username: username,
		UserID:   user.UserID,
		Season:   season,
		Leagues:  leagues,
	}, nil
}
