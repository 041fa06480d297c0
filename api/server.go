package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/news-board-backend/config"
	"github.com/rpupo63/news-board-backend/database"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, c map[string]string) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(newStores(db),
		withStartupTime(startupTime),
		withAcceptedOrigins(config.GetStrings(c, "ACCEPTED_ORIGINS", []string{"*"})),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),  // Timeout for reading the entire request
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180), // Timeout for writing the response
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	acceptedOrigins []string
	startupTime     time.Time
}

func withAcceptedOrigins(origins []string) func(*router) {
	return func(r *router) {
		r.acceptedOrigins = origins
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(stores Stores, opts ...func(*router)) *chi.Mux {
	router := router{acceptedOrigins: []string{"*"}, startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(requestID)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(requestLogger)
	chiRouter.Use(corsMiddleware(router.acceptedOrigins))
	chiRouter.Use(middleware.StripSlashes)

	// Initialize all handlers
	handlers := initializeHandlers(stores, router.startupTime)

	chiRouter.NotFound(handlers.apiHandler.invalidEndpoint())
	chiRouter.MethodNotAllowed(handlers.apiHandler.invalidEndpoint())

	setupRoutes(chiRouter, handlers)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
