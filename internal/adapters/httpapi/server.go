package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mikey/phish-triage/internal/core"
	"go.uber.org/zap"
)

// AnalyzeRequest is the request body for the analyze endpoint
type AnalyzeRequest struct {
	Text    string `json:"text"`
	Subject string `json:"subject"`
}

// Server exposes triage over HTTP
type Server struct {
	echo    *echo.Echo
	service *core.TriageService
	logger  *zap.Logger
	addr    string
}

// NewServer creates a new HTTP server
func NewServer(service *core.TriageService, logger *zap.Logger, addr string, corsOrigins []string, debug bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = debug

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	s := &Server{
		echo:    e,
		service: service,
		logger:  logger,
		addr:    addr,
	}

	e.GET("/health", s.handleHealth)
	e.POST("/api/analyze", s.handleAnalyze)

	return s
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid input"})
	}

	email := &core.EmailRequest{
		Body:    req.Text,
		Subject: req.Subject,
	}

	verdict, err := s.service.Analyze(c.Request().Context(), email)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, verdict)
}

// writeError maps triage errors to HTTP responses. Full error detail goes
// to the log, not the client.
func (s *Server) writeError(c echo.Context, err error) error {
	if errors.Is(err, core.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid input"})
	}

	var formatErr *core.ResponseFormatError
	if errors.As(err, &formatErr) {
		s.logger.Error("Model returned unparseable response",
			zap.String("request_id", requestID(c)),
			zap.Error(formatErr.Err),
			zap.String("raw", formatErr.Raw))
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Invalid JSON from model",
			"raw":   formatErr.Raw,
		})
	}

	s.logger.Error("Analysis failed",
		zap.String("request_id", requestID(c)),
		zap.Error(err))

	var upstreamErr *core.UpstreamServiceError
	details := "analysis failed"
	if errors.As(err, &upstreamErr) {
		details = fmt.Sprintf("upstream %s service unavailable", upstreamErr.Provider)
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":   "Internal server error",
		"details": details,
	})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// ProcessEmail runs a single email through triage
func (s *Server) ProcessEmail(ctx context.Context, req *core.EmailRequest) (*core.Verdict, error) {
	return s.service.Analyze(ctx, req)
}

// Start starts the HTTP server and blocks until it exits
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(ctx)
}
