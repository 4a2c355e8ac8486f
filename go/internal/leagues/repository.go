package leagues

import (
	"context"
	"fmt"

	sleeperclient "github.com/mcdev12/dynasty-trades/go/clients/sleeper_client"
	"github.com/mcdev12/dynasty-trades/go/internal/cache"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

// LeagueSource defines what the repository needs from the league platform
type LeagueSource interface {
	GetLeague(ctx context.Context, leagueID string) (*sleeperclient.League, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]sleeperclient.LeagueUser, error)
	GetRosters(ctx context.Context, leagueID string) ([]sleeperclient.Roster, error)
	GetUser(ctx context.Context, username string) (*sleeperclient.User, error)
	GetUserLeagues(ctx context.Context, userID, season string) ([]sleeperclient.League, error)
}

// Repository reads league identity data from the league platform through
// the response cache
type Repository struct {
	source LeagueSource
	cache  cache.Cache
}

// NewRepository creates a new leagues repository
func NewRepository(source LeagueSource, c cache.Cache) *Repository {
	return &Repository{
		source: source,
		cache:  c,
	}
}

// GetLeague returns one league season, or models.ErrNotFound.
func (r *Repository) GetLeague(ctx context.Context, leagueID string) (*models.LeagueSeason, error) {
	key := cache.Key{Kind: cache.KindLeague, ID: leagueID}
	league, err := cache.Fetch(ctx, r.cache, key, func(ctx context.Context) (*models.LeagueSeason, error) {
		raw, err := r.source.GetLeague(ctx, leagueID)
		if err != nil || raw == nil {
			return nil, err
		}
		l := leagueFromSleeper(*raw)
		return &l, nil
	}, cache.NilPointer[models.LeagueSeason])
	if err != nil {
		return nil, err
	}
	if league == nil {
		return nil, fmt.Errorf("league %s: %w", leagueID, models.ErrNotFound)
	}
	return league, nil
}

// GetRosters joins the league's users with its rosters on the owning user.
// Users without a roster are left out.
func (r *Repository) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	key := cache.Key{Kind: cache.KindLeagueUsers, ID: leagueID}
	return cache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]models.Roster, error) {
		users, err := r.source.GetLeagueUsers(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		rosters, err := r.source.GetRosters(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return joinRosters(users, rosters), nil
	}, cache.EmptySlice[models.Roster])
}

// GetUser returns the platform user for a username, or models.ErrNotFound.
func (r *Repository) GetUser(ctx context.Context, username string) (*sleeperclient.User, error) {
	user, err := r.source.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.UserID == "" {
		return nil, fmt.Errorf("user %s: %w", username, models.ErrNotFound)
	}
	return user, nil
}

// GetUserLeagues returns the user's NFL leagues for a season.
func (r *Repository) GetUserLeagues(ctx context.Context, userID, season string) ([]models.LeagueSeason, error) {
	raw, err := r.source.GetUserLeagues(ctx, userID, season)
	if err != nil {
		return nil, err
	}

	leagues := make([]models.LeagueSeason, 0, len(raw))
	for _, l := range raw {
		if l.Sport != "" && l.Sport != sleeperclient.SportNFL {
			continue
		}
		leagues = append(leagues, leagueFromSleeper(l))
	}
	return leagues, nil
}

func leagueFromSleeper(l sleeperclient.League) models.LeagueSeason {
	return models.LeagueSeason{
		LeagueID:         l.LeagueID,
		Season:           l.Season,
		PreviousLeagueID: l.PreviousLeagueID,
		Name:             l.Name,
		Avatar:           l.Avatar,
		Sport:            l.Sport,
		LeagueType:       models.LeagueTypeFromSetting(l.Settings.Type),
	}
}

func joinRosters(users []sleeperclient.LeagueUser, rosters []sleeperclient.Roster) []models.Roster {
	rosterByOwner := make(map[string]int, len(rosters))
	for _, r := range rosters {
		if r.OwnerID != "" {
			rosterByOwner[r.OwnerID] = r.RosterID
		}
	}

	joined := make([]models.Roster, 0, len(users))
	for _, u := range users {
		rosterID, ok := rosterByOwner[u.UserID]
		if !ok {
			continue
		}
		joined = append(joined, models.Roster{
			RosterID:     rosterID,
			UserID:       u.UserID,
			UserName:     u.DisplayName,
			Avatar:       u.Avatar,
			RosterAvatar: u.Metadata.Avatar,
		})
	}
	return joined
}
