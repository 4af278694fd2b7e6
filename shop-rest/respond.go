package shoprest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// StatusError is an error that carries the HTTP status and message a handler
// should respond with. Anything else that reaches the boundary becomes a
// generic 500 so upstream provider details never leak to clients.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StatusError) Unwrap() error { return e.Err }

func BadRequest(message string) error {
	return &StatusError{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string, err error) error {
	return &StatusError{Status: http.StatusNotFound, Message: message, Err: err}
}

// HandlerFunc is an http.HandlerFunc that may fail; Handler adapts it,
// routing any returned error through RespondError.
type HandlerFunc func(w http.ResponseWriter, req *http.Request) error

func Handler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := fn(w, req); err != nil {
			RespondError(req.Context(), w, err)
		}
	}
}

func Respond(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func RespondError(ctx context.Context, w http.ResponseWriter, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		zerolog.Ctx(ctx).Warn().Err(err).Int("status", statusErr.Status).Msg("request failed")
		_ = Respond(w, statusErr.Status, map[string]string{"error": statusErr.Message})
		return
	}

	zerolog.Ctx(ctx).Error().Err(err).Msg("request failed")
	_ = Respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
