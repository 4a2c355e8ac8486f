package trades

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
	TradeServiceName = "dynasty.trades.v1.TradeService"

	// GetTradesProcedure is the connect procedure path of GetTrades.
	GetTradesProcedure = "/" + TradeServiceName + "/GetTrades"
)

// TradesApp defines what the service layer needs from the trades application
type TradesApp interface {
	GetTrades(ctx context.Context, leagueID, rosterFilter, page string) (*models.TradePage, error)
}

// Service exposes trade pages over REST and connect
type Service struct {
	app TradesApp
}

// NewService creates a new trades service
func NewService(app TradesApp) *Service {
	return &Service{
		app: app,
	}
}

func (s *Service) Mount(r chi.Router) {
	r.Get("/api/leagues/{leagueID}/trades", s.handleGetTrades)
	r.Handle(GetTradesProcedure, connect.NewUnaryHandler(GetTradesProcedure, s.GetTrades))
}

func (s *Service) handleGetTrades(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rosterFilter := query.Get("roster_id")
	if rosterFilter == "" {
		rosterFilter = RosterFilterAll
	}

	page, err := s.getTrades(r.Context(), chi.URLParam(r, "leagueID"), rosterFilter, query.Get("page"))
	if err != nil {
		transport.WriteError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, page)
}

// GetTrades is the connect handler. The request carries league_id, roster_id
// and page fields; the response is the trade page as a Struct.
func (s *Service) GetTrades(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	page, err := s.getTrades(ctx,
		transport.StringField(req.Msg, "league_id"),
		transport.StringField(req.Msg, "roster_id"),
		transport.StringField(req.Msg, "page"),
	)
	if err != nil {
		return nil, transport.ConnectError(err)
	}

	msg, err := transport.ToStruct(page)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(msg), nil
}

func (s *Service) getTrades(ctx context.Context, leagueID, rosterFilter, page string) (*models.TradePage, error) {
	requestID := transport.NewRequestID()
	ctx = transport.WithRequestID(ctx, requestID)

	result, err := s.app.GetTrades(ctx, leagueID, rosterFilter, page)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("league_id", leagueID).
			Str("roster_id", rosterFilter).
			Str("page", page).
			Msg("failed to get trades")
		return nil, err
	}
	return result, nil
}
