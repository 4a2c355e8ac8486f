package leaderboard

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/mcdev12/dynasty-trades/go/internal/transport"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	LeaderboardServiceName = "dynasty.trades.v1.LeaderboardService"

	// GetLeaderboardProcedure is the connect procedure path of GetLeaderboard.
	GetLeaderboardProcedure = "/" + LeaderboardServiceName + "/GetLeaderboard"
)

// LeaderboardApp defines what the service layer needs from the leaderboard application
type LeaderboardApp interface {
	GetLeaderboard(ctx context.Context, leagueID string) (*models.Leaderboard, error)
}

// Service exposes leaderboards over REST and connect
type Service struct {
	app LeaderboardApp
}

// NewService creates a new leaderboard service
func NewService(app LeaderboardApp) *Service {
	return &Service{
		app: app,
	}
}

func (s *Service) Mount(r chi.Router) {
	r.Get("/api/leagues/{leagueID}/leaderboard", s.handleGetLeaderboard)
	r.Handle(GetLeaderboardProcedure, connect.NewUnaryHandler(GetLeaderboardProcedure, s.GetLeaderboard))
}

func (s *Service) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.getLeaderboard(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, board)
}

// GetLeaderboard is the connect handler. The request carries league_id.
func (s *Service) GetLeaderboard(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	board, err := s.getLeaderboard(ctx, transport.StringField(req.Msg, "league_id"))
	if err != nil {
		return nil, transport.ConnectError(err)
	}

	msg, err := transport.ToStruct(board)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(msg), nil
}

func (s *Service) getLeaderboard(ctx context.Context, leagueID string) (*models.Leaderboard, error) {
	requestID := transport.NewRequestID()
	ctx = transport.WithRequestID(ctx, requestID)

	board, err := s.app.GetLeaderboard(ctx, leagueID)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("league_id", leagueID).
			Msg("failed to get leaderboard")
		return nil, err
	}
	return board, nil
}
