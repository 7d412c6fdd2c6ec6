package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/graphlift/graphlift/pkg/observability"
)

var (
	detectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlift_detections_total",
			Help: "Total number of format detections by detected format",
		},
		[]string{"format"},
	)

	conversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlift_conversions_total",
			Help: "Total number of conversions by analysis format and status",
		},
		[]string{"format", "status"},
	)

	conversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "graphlift_conversion_duration_seconds",
			Help: "Time spent converting analysis documents",
		},
		[]string{"format"},
	)

	graphNodes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphlift_graph_nodes",
			Help:    "Node counts of converted graphs",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"format"},
	)

	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlift_renders_total",
			Help: "Total number of renders by output format and status",
		},
		[]string{"format", "status"},
	)

	renderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "graphlift_render_duration_seconds",
			Help: "Time spent rendering graph artifacts",
		},
		[]string{"format"},
	)

	cacheOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlift_cache_operations_total",
			Help: "Cache operations by entry kind and operation",
		},
		[]string{"kind", "op"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlift_http_requests_total",
			Help: "HTTP requests by method, route, and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "graphlift_http_request_duration_seconds",
			Help: "HTTP request latency by method and route",
		},
		[]string{"method", "route"},
	)
)

func init() {
	prometheus.MustRegister(
		detectionsTotal,
		conversionsTotal,
		conversionDuration,
		graphNodes,
		rendersTotal,
		renderDuration,
		cacheOpsTotal,
		httpRequestsTotal,
		httpRequestDuration,
	)
}

// RegisterMetrics installs the Prometheus-backed hook implementations.
// Hooks are process-global, so calling this once at startup instruments
// every Runner in the process.
func RegisterMetrics() {
	observability.SetConvertHooks(metricConvertHooks{})
	observability.SetCacheHooks(metricCacheHooks{})
	observability.SetHTTPHooks(metricHTTPHooks{})
}

type metricConvertHooks struct{}

var _ observability.ConvertHooks = metricConvertHooks{}

func (metricConvertHooks) OnDetect(_ context.Context, format string) {
	detectionsTotal.WithLabelValues(format).Inc()
}

func (metricConvertHooks) OnConvertStart(context.Context, string) {}

func (metricConvertHooks) OnConvertComplete(_ context.Context, format string, nodes, _ int, d time.Duration, err error) {
	conversionsTotal.WithLabelValues(format, statusLabel(err)).Inc()
	if err == nil {
		conversionDuration.WithLabelValues(format).Observe(d.Seconds())
		graphNodes.WithLabelValues(format).Observe(float64(nodes))
	}
}

func (metricConvertHooks) OnRenderStart(context.Context, string) {}

func (metricConvertHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	rendersTotal.WithLabelValues(format, statusLabel(err)).Inc()
	if err == nil {
		renderDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

type metricCacheHooks struct{}

var _ observability.CacheHooks = metricCacheHooks{}

func (metricCacheHooks) OnCacheHit(_ context.Context, kind string) {
	cacheOpsTotal.WithLabelValues(kind, "hit").Inc()
}

func (metricCacheHooks) OnCacheMiss(_ context.Context, kind string) {
	cacheOpsTotal.WithLabelValues(kind, "miss").Inc()
}

func (metricCacheHooks) OnCacheSet(_ context.Context, kind string, _ int) {
	cacheOpsTotal.WithLabelValues(kind, "set").Inc()
}

type metricHTTPHooks struct{}

var _ observability.HTTPHooks = metricHTTPHooks{}

func (metricHTTPHooks) OnRequest(context.Context, string, string) {}

func (metricHTTPHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
