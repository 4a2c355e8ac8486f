package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type apiError struct {
	Error string `json:"error"`
}

// NewRequestID returns a short id for correlating the log lines of one request.
func NewRequestID() string {
	return uuid.New().String()[:8]
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError writes a sanitized message for err with a matching status code.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, HTTPStatus(err), apiError{Error: PublicMessage(err)})
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrHistoryCycle):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstreamFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func ConnectCode(err error) connect.Code {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return connect.CodeInvalidArgument
	case errors.Is(err, models.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, models.ErrHistoryCycle):
		return connect.CodeFailedPrecondition
	case errors.Is(err, models.ErrUpstreamFetch):
		return connect.CodeUnavailable
	default:
		return connect.CodeInternal
	}
}

// PublicMessage hides upstream and internal detail from callers; the full
// error is logged by the caller.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrNotFound):
		return err.Error()
	case errors.Is(err, models.ErrHistoryCycle):
		return "league history contains a cycle"
	case errors.Is(err, models.ErrUpstreamFetch):
		return "league platform is unavailable"
	default:
		return "internal error"
	}
}

func ConnectError(err error) *connect.Error {
	return connect.NewError(ConnectCode(err), errors.New(PublicMessage(err)))
}

// ToStruct converts a JSON-serializable response into a protobuf Struct.
func ToStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("failed to convert response to struct: %w", err)
	}
	return out, nil
}

// StringField reads a string-valued request field, accepting numbers too.
func StringField(s *structpb.Struct, name string) string {
	if s == nil {
		return ""
	}
	v, ok := s.GetFields()[name]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return fmt.Sprintf("%v", k.NumberValue)
	default:
		return ""
	}
}
