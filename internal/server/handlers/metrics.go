package handlers

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/weather-map/internal/server/middlewares"
	"go.uber.org/zap"
)

// HTTPMetricsProvider exposes request metrics collected by the metrics middleware.
type HTTPMetricsProvider interface {
	Snapshot() middlewares.HTTPSnapshot
}

// AppMetrics holds application-level metrics (store, sampler)
type AppMetrics struct {
	mutex               sync.RWMutex
	storeReads          int64
	storeReadErrors     int64
	sampleCalls         int64
	annotationsReturned int64
}

type MetricsHandler struct {
	logger     *zap.Logger
	http       HTTPMetricsProvider
	appMetrics *AppMetrics
}

func NewMetricsHandler(httpMetrics HTTPMetricsProvider, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		logger:     logger,
		http:       httpMetrics,
		appMetrics: &AppMetrics{},
	}
}

// RecordStoreRead records a read of all records from the store
func (h *MetricsHandler) RecordStoreRead(ctx context.Context, success bool) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.storeReads++
	if !success {
		h.appMetrics.storeReadErrors++
	}
	h.appMetrics.mutex.Unlock()
}

// RecordSample records a completed sample and its size
func (h *MetricsHandler) RecordSample(ctx context.Context, returned int) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.sampleCalls++
	h.appMetrics.annotationsReturned += int64(returned)
	h.appMetrics.mutex.Unlock()
}

// ServeMetrics exposes metrics in Prometheus text format
func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	var b strings.Builder

	if h.http != nil {
		snap := h.http.Snapshot()

		keys := make([]string, 0, len(snap.RequestsTotal))
		for k := range snap.RequestsTotal {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		writeHeader(&b, "http_requests_total", "Total number of HTTP requests", "counter")
		for _, key := range keys {
			b.WriteString("http_requests_total{route_status=\"" + key + "\"} " + strconv.FormatInt(snap.RequestsTotal[key], 10) + "\n")
		}

		writeHeader(&b, "http_request_duration_seconds_avg", "Average duration of HTTP requests", "gauge")
		b.WriteString("http_request_duration_seconds_avg " + strconv.FormatFloat(snap.AvgDuration, 'f', 6, 64) + "\n")

		writeHeader(&b, "http_active_requests", "Number of active HTTP requests", "gauge")
		b.WriteString("http_active_requests " + strconv.FormatInt(snap.ActiveRequests, 10) + "\n")
	}

	h.appMetrics.mutex.RLock()
	defer h.appMetrics.mutex.RUnlock()

	writeHeader(&b, "store_reads_total", "Total record store reads", "counter")
	b.WriteString("store_reads_total " + strconv.FormatInt(h.appMetrics.storeReads, 10) + "\n")

	writeHeader(&b, "store_read_errors_total", "Total failed record store reads", "counter")
	b.WriteString("store_read_errors_total " + strconv.FormatInt(h.appMetrics.storeReadErrors, 10) + "\n")

	writeHeader(&b, "sampler_samples_total", "Total forecast samples produced", "counter")
	b.WriteString("sampler_samples_total " + strconv.FormatInt(h.appMetrics.sampleCalls, 10) + "\n")

	writeHeader(&b, "sampler_annotations_total", "Total annotations returned by the sampler", "counter")
	b.WriteString("sampler_annotations_total " + strconv.FormatInt(h.appMetrics.annotationsReturned, 10) + "\n")

	c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	c.String(200, b.String())
}

func writeHeader(b *strings.Builder, name, help, kind string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("# HELP " + name + " " + help + "\n")
	b.WriteString("# TYPE " + name + " " + kind + "\n")
}
