package leagues

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mcdev12/dynasty-trades/go/internal/transport"
	"github.com/rs/zerolog/log"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	GetUserLeagues(ctx context.Context, username, season string) (*UserLeagues, error)
}

// Service exposes league lookups over HTTP
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues HTTP service
func NewService(app LeaguesApp) *Service {
	return &Service{
		app: app,
	}
}

func (s *Service) Mount(r chi.Router) {
	r.Get("/api/users/{username}/leagues", s.handleGetUserLeagues)
}

func (s *Service) handleGetUserLeagues(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	season := r.URL.Query().Get("season")

	leagues, err := s.app.GetUserLeagues(r.Context(), username, season)
	if err != nil {
		log.Error().
			Err(err).
			Str("username", username).
			Str("season", season).
			Msg("failed to get user leagues")
		transport.WriteError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, leagues)
}
