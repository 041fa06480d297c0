package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rpupo63/news-board-backend/errs"
	"github.com/rs/zerolog/log"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type apiHandler struct {
	responder   Responder
	store       Pinger
	startupTime time.Time
}

func newAPIHandler(store Pinger, startupTime time.Time) apiHandler {
	logger := log.With().Str("handlerName", "apiHandler").Logger()
	return apiHandler{responder: NewResponder(logger), store: store, startupTime: startupTime}
}

type endpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (h apiHandler) getEndpoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, endpointsResponse{json.RawMessage(endpointsJSON)})
	}
}

func (h apiHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(h.startupTime).Seconds())
		if h.store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := h.store.Ping(ctx); err != nil {
				h.responder.logger.Error().Err(err).Msg("health check failed")
				h.responder.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", UptimeSeconds: uptime})
				return
			}
		}
		h.responder.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", UptimeSeconds: uptime})
	}
}

// invalidEndpoint answers unmatched paths and methods alike.
func (h apiHandler) invalidEndpoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteError(w, errs.NewRouteNotFoundError(r.Method, r.URL.Path))
	}
}
