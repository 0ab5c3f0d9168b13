package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/weather-map/internal/config"
	"github.com/vzahanych/weather-map/internal/sampler"
	"github.com/vzahanych/weather-map/internal/server/handlers"
	"github.com/vzahanych/weather-map/internal/server/middlewares"
	"github.com/vzahanych/weather-map/pkg/telemetry"
	"go.uber.org/zap"
)

type Server struct {
	cfg     config.ServerConfig
	engine  *gin.Engine
	server  *http.Server
	sampler *sampler.Service
	metrics *handlers.MetricsHandler
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

func NewServer(cfg *config.Config, svc *sampler.Service, logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	httpMetrics := middlewares.NewMetricsMiddleware(logger, tele)

	engine.Use(middlewares.RequestIDMiddleware())
	engine.Use(middlewares.LoggingMiddleware(logger, true))
	engine.Use(middlewares.RecoveryMiddleware(logger, true))
	engine.Use(middlewares.TelemetryMiddleware(logger, tele))
	engine.Use(httpMetrics.Handler())
	engine.Use(middlewares.RateLimitMiddleware(logger, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	metrics := handlers.NewMetricsHandler(httpMetrics, logger)
	svc.SetMetricsRecorder(metrics)

	s := &Server{
		cfg:     cfg.Server,
		engine:  engine,
		sampler: svc,
		metrics: metrics,
		logger:  logger,
		tele:    tele,
	}

	s.setupRoutes(cfg.Sampler.DefaultMaxCount)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:      s.engine,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeout) * time.Second,
	}

	return s
}

func (s *Server) setupRoutes(defaultMaxCount int) {
	annotations := handlers.NewAnnotationsHandler(s.sampler, defaultMaxCount, s.logger)
	health := handlers.NewHealthHandler(s.sampler, s.logger)

	// Business endpoints
	s.engine.GET("/annotations", annotations.GetAnnotations)
	s.engine.GET("/forecasts", annotations.GetForecasts)

	// Health endpoints (Kubernetes friendly)
	s.engine.GET("/health", health.Health)
	s.engine.GET("/health/live", health.Liveness)
	s.engine.GET("/health/ready", health.Readiness)

	// Monitoring endpoints
	s.engine.GET("/metrics", s.metrics.ServeMetrics)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
