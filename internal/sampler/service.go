package sampler

import (
	"context"
	"fmt"

	"github.com/vzahanych/weather-map/internal/config"
	"github.com/vzahanych/weather-map/internal/forecast"
	"github.com/vzahanych/weather-map/internal/store"
	"github.com/vzahanych/weather-map/pkg/logger"
	"github.com/vzahanych/weather-map/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MetricsRecorder receives counters about store reads and produced samples.
type MetricsRecorder interface {
	RecordStoreRead(ctx context.Context, success bool)
	RecordSample(ctx context.Context, returned int)
}

// Service answers map viewport queries with sampled forecast annotations.
type Service struct {
	store        store.RecordStore
	filterRegion bool
	logger       *zap.Logger
	tele         *telemetry.Telemetry
	metrics      MetricsRecorder
}

func NewService(st store.RecordStore, cfg config.SamplerConfig, logger *zap.Logger, tele *telemetry.Telemetry) *Service {
	return &Service{
		store:        st,
		filterRegion: cfg.FilterRegion,
		logger:       logger,
		tele:         tele,
	}
}

// SetMetricsRecorder sets the metrics recorder for the service
func (s *Service) SetMetricsRecorder(metrics MetricsRecorder) {
	s.metrics = metrics
}

// GetForecastAnnotations returns at most maxCount annotations for the map
// viewport. Unless region filtering is enabled, region does not narrow the
// candidate records.
func (s *Service) GetForecastAnnotations(ctx context.Context, region forecast.Region, maxCount int) ([]forecast.Annotation, error) {
	tracer := s.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "sampler.GetForecastAnnotations")
	defer span.End()

	reqLogger := logger.ForContext(ctx, s.logger)

	span.SetAttributes(
		attribute.Int("max_count", maxCount),
		attribute.Bool("filter_region", s.filterRegion),
		attribute.Float64("center_lat", region.Center.Latitude),
		attribute.Float64("center_lon", region.Center.Longitude),
	)

	if maxCount < 0 {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, fmt.Errorf("%w: max count must not be negative, got %d", ErrInvalidArgument, maxCount)
	}

	records, err := s.AllForecasts(ctx)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		s.tele.RecordError(ctx, err, map[string]interface{}{"operation": "all_records"})
		reqLogger.Error("Failed to read forecast records", zap.Error(err))
		return nil, err
	}

	if s.filterRegion {
		records = FilterRegion(records, region)
	}

	annotations, err := Sample(records, maxCount)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("records", len(records)),
		attribute.Int("returned", len(annotations)),
	)

	if s.metrics != nil {
		s.metrics.RecordSample(ctx, len(annotations))
	}

	reqLogger.Debug("Forecast annotations sampled",
		zap.Int("records", len(records)),
		zap.Int("max_count", maxCount),
		zap.Int("returned", len(annotations)))

	return annotations, nil
}

// AllForecasts returns every stored record in insertion order.
func (s *Service) AllForecasts(ctx context.Context) ([]forecast.Record, error) {
	records, err := s.store.AllRecords(ctx)
	if s.metrics != nil {
		s.metrics.RecordStoreRead(ctx, err == nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast records: %w", err)
	}
	return records, nil
}

// Ready reports whether the store holds at least one record.
func (s *Service) Ready(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count forecast records: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("record store is empty")
	}
	return nil
}
