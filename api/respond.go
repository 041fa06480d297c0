package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/news-board-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	// Marshal first so a failure can still become a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes {"msg": ...}. Details, field and cause are logged, never sent.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unhandled error")
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Msg: errs.MsgInternal})
		return
	}

	var event *zerolog.Event
	if apiErr.StatusCode >= http.StatusInternalServerError {
		event = r.logger.Error()
	} else {
		event = r.logger.Debug()
	}
	event = event.Int("status", apiErr.StatusCode).Str("error", apiErr.GetFullError())
	if apiErr.Field != "" {
		event = event.Str("field", apiErr.Field)
	}
	event.Msg(apiErr.Msg)

	r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{Msg: apiErr.Msg})
}
