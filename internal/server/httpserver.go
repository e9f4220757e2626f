// Package server exposes the action dispatch app over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/illmade-knight/action-dispatch/pkg/actions"
	"github.com/rs/zerolog"
)

// httpShutdownTimeout bounds how long in-flight requests get on shutdown.
const httpShutdownTimeout = 10 * time.Second

// ActionDispatcher is the slice of the app this server needs.
type ActionDispatcher interface {
	Dispatch(ctx context.Context, envelope actions.Envelope) error
}

// HTTPServer wraps the gin engine with graceful shutdown helpers.
type HTTPServer struct {
	listenAddr string
	engine     *gin.Engine
	dispatcher ActionDispatcher
	logger     zerolog.Logger
}

// New constructs the HTTP server with its routes registered.
func New(listenAddr string, dispatcher ActionDispatcher, logger zerolog.Logger) *HTTPServer {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &HTTPServer{
		listenAddr: listenAddr,
		engine:     engine,
		dispatcher: dispatcher,
		logger:     logger.With().Str("component", "http-server").Logger(),
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.POST("/v1/actions", s.handleAction)

	return s
}

// Engine returns the underlying gin engine, mainly for tests.
func (s *HTTPServer) Engine() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.listenAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.listenAddr).Msg("Action dispatch HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// handleAction decodes the outer action envelope and hands it to the app.
// Structural decode errors and unknown actions are the client's fault;
// capability failures are the upstream target's.
func (s *HTTPServer) handleAction(c *gin.Context) {
	var envelope actions.Envelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action envelope"})
		return
	}

	err := s.dispatcher.Dispatch(c.Request.Context(), envelope)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "dispatched"})
	case errors.Is(err, actions.ErrUnknownAction), errors.Is(err, actions.ErrMalformedPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Warn().Err(err).Str("action_type", envelope.Type).Msg("Dispatch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "action could not be completed"})
	}
}
