package sampler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vzahanych/weather-map/internal/config"
	"github.com/vzahanych/weather-map/internal/forecast"
	"github.com/vzahanych/weather-map/internal/store"
	"github.com/vzahanych/weather-map/pkg/telemetry"
	"go.uber.org/zap/zaptest"
)

type failingStore struct {
	store.RecordStore
	err error
}

func (f *failingStore) AllRecords(ctx context.Context) ([]forecast.Record, error) {
	return nil, f.err
}

func (f *failingStore) Count(ctx context.Context) (int, error) {
	return 0, f.err
}

type recordingMetrics struct {
	reads, readErrors int
	samples           []int
}

func (m *recordingMetrics) RecordStoreRead(ctx context.Context, success bool) {
	m.reads++
	if !success {
		m.readErrors++
	}
}

func (m *recordingMetrics) RecordSample(ctx context.Context, returned int) {
	m.samples = append(m.samples, returned)
}

func seededStore(t *testing.T) store.RecordStore {
	t.Helper()
	st := store.NewMemoryStore()
	_, err := store.Seed(context.Background(), st, store.DefaultSeed())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func createTestService(t *testing.T, st store.RecordStore, cfg config.SamplerConfig) *Service {
	return NewService(st, cfg, zaptest.NewLogger(t), &telemetry.Telemetry{})
}

var denverRegion = forecast.Region{
	Center: forecast.Coordinate{Latitude: 39.75, Longitude: -104.98},
	Span:   forecast.Span{LatitudeDelta: 2, LongitudeDelta: 2},
}

func TestService_RegionDoesNotFilterByDefault(t *testing.T) {
	svc := createTestService(t, seededStore(t), config.SamplerConfig{})

	annotations, err := svc.GetForecastAnnotations(context.Background(), denverRegion, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"S.F.", "Denver", "Miami"}, places(annotations))
}

func TestService_FilterRegionEnabled(t *testing.T) {
	svc := createTestService(t, seededStore(t), config.SamplerConfig{FilterRegion: true})

	annotations, err := svc.GetForecastAnnotations(context.Background(), denverRegion, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Denver"}, places(annotations))
}

func TestService_NegativeMaxCount(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := createTestService(t, seededStore(t), config.SamplerConfig{})
	svc.SetMetricsRecorder(metrics)

	_, err := svc.GetForecastAnnotations(context.Background(), denverRegion, -2)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Zero(t, metrics.reads, "store must not be read for invalid arguments")
}

func TestService_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("disk on fire")
	metrics := &recordingMetrics{}
	svc := createTestService(t, &failingStore{err: storeErr}, config.SamplerConfig{})
	svc.SetMetricsRecorder(metrics)

	annotations, err := svc.GetForecastAnnotations(context.Background(), denverRegion, 3)
	assert.Nil(t, annotations)
	assert.True(t, errors.Is(err, storeErr))
	assert.Equal(t, 1, metrics.readErrors)
	assert.Empty(t, metrics.samples)
}

func TestService_RecordsMetrics(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := createTestService(t, seededStore(t), config.SamplerConfig{})
	svc.SetMetricsRecorder(metrics)

	_, err := svc.GetForecastAnnotations(context.Background(), denverRegion, 4)
	require.NoError(t, err)
	_, err = svc.GetForecastAnnotations(context.Background(), denverRegion, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.reads)
	assert.Equal(t, []int{4, 7}, metrics.samples)
}

func TestService_Ready(t *testing.T) {
	svc := createTestService(t, seededStore(t), config.SamplerConfig{})
	assert.NoError(t, svc.Ready(context.Background()))

	empty := createTestService(t, store.NewMemoryStore(), config.SamplerConfig{})
	assert.Error(t, empty.Ready(context.Background()))

	closed := store.NewMemoryStore()
	require.NoError(t, closed.Close())
	assert.ErrorIs(t, createTestService(t, closed, config.SamplerConfig{}).Ready(context.Background()), store.ErrClosed)
}

func TestService_AllForecasts(t *testing.T) {
	svc := createTestService(t, seededStore(t), config.SamplerConfig{})

	records, err := svc.AllForecasts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, store.DefaultSeed(), records)
}
