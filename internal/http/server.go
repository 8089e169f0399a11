// Package http provides the HTTP chat API for chatterd.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/chatterd/internal/dialog"
	"github.com/fyrsmithlabs/chatterd/internal/entity"
	"github.com/fyrsmithlabs/chatterd/internal/intent"
)

// Server provides HTTP endpoints for the conversation engine.
type Server struct {
	echo   *echo.Echo
	engine *dialog.Engine
	logger *zap.Logger
	config *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
	// RateLimit is the allowed request rate per client IP, in requests
	// per second. Zero disables rate limiting.
	RateLimit float64
}

// NewServer creates a new HTTP server.
func NewServer(engine *dialog.Engine, logger *zap.Logger, cfg *Config) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8420,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:   e,
		engine: engine,
		logger: logger,
		config: cfg,
	}

	// Register routes
	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	// Health check
	s.echo.GET("/health", s.handleHealth)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")
	v1.POST("/messages", s.handleMessage)
	v1.GET("/sessions/:id", s.handleGetSession)
	v1.POST("/sessions/:id/reset", s.handleResetSession)
	v1.DELETE("/sessions/:id", s.handleEndSession)
}

// MessageRequest is the request body for POST /api/v1/messages.
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// MessageResponse is the response body for POST /api/v1/messages.
type MessageResponse struct {
	SessionID string          `json:"session_id"`
	Response  string          `json:"response"`
	Intent    intent.Intent   `json:"intent"`
	Entities  []entity.Entity `json:"entities"`
}

// StatusResponse is the response body for session lifecycle endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleMessage runs one message through the conversation engine.
// Malformed calls (missing session id or text) are rejected here; the
// engine itself never fails on well-formed input.
func (s *Server) handleMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid message request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id field is required")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	reply, err := s.engine.ProcessMessage(req.SessionID, req.Text)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		SessionID: req.SessionID,
		Response:  reply.Response,
		Intent:    reply.Intent,
		Entities:  reply.Entities,
	})
}

// handleGetSession returns a read-only snapshot of a session.
func (s *Server) handleGetSession(c echo.Context) error {
	snap, ok := s.engine.GetSession(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, snap)
}

// handleResetSession clears a session's context data and history.
func (s *Server) handleResetSession(c echo.Context) error {
	if !s.engine.ResetContext(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "reset"})
}

// handleEndSession removes a session from the store.
func (s *Server) handleEndSession(c echo.Context) error {
	if !s.engine.EndSession(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ended"})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying Echo instance for registering additional
// routes, such as the metrics endpoint.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
