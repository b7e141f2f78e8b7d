// Package metrics implements the observability hooks with Prometheus
// collectors.
//
// Register the hooks once at startup and expose the registry:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	m.Install()
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package metrics

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/induwarauthsara/folio/pkg/observability"
)

const namespace = "folio"

// Metrics holds the collectors. It implements PipelineHooks, CacheHooks and
// HTTPHooks.
type Metrics struct {
	loads           *prometheus.CounterVec
	composeDuration prometheus.Histogram
	composedUnits   prometheus.Gauge
	renders         *prometheus.CounterVec
	renderDuration  prometheus.Histogram
	cacheEvents     *prometheus.CounterVec
	cacheBytes      *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	handlerErrors   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_loads_total",
			Help:      "Profile loads by source kind and result.",
		}, []string{"source", "result"}),
		composeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compose_duration_seconds",
			Help:      "Time spent composing the page document.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		composedUnits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "composed_units",
			Help:      "Visual units in the most recently composed document.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render passes by format and result.",
		}, []string{"format", "result"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering all requested formats.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Cache lookups and writes by key type.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache by key type.",
		}, []string{"key_type"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Preview server responses by route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Preview server latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		handlerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_handler_errors_total",
			Help:      "Preview server handler failures by route.",
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.loads, m.composeDuration, m.composedUnits,
		m.renders, m.renderDuration,
		m.cacheEvents, m.cacheBytes,
		m.requests, m.requestDuration, m.handlerErrors,
	)
	return m
}

// Install registers m as the global pipeline, cache and HTTP hooks.
func (m *Metrics) Install() {
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func sourceKind(source string) string {
	if source == "" || source == "default" {
		return "default"
	}
	return "file"
}

func (m *Metrics) OnLoadStart(context.Context, string) {}

func (m *Metrics) OnLoadComplete(_ context.Context, source string, _ time.Duration, err error) {
	m.loads.WithLabelValues(sourceKind(source), result(err)).Inc()
}

func (m *Metrics) OnComposeStart(context.Context, int) {}

func (m *Metrics) OnComposeComplete(_ context.Context, units int, d time.Duration, err error) {
	m.composeDuration.Observe(d.Seconds())
	if err == nil {
		m.composedUnits.Set(float64(units))
	}
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	m.renderDuration.Observe(d.Seconds())
	for _, f := range formats {
		m.renders.WithLabelValues(f, result(err)).Inc()
	}
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	m.requests.WithLabelValues(strings.ToUpper(method), route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) OnError(_ context.Context, _, route string, _ error) {
	m.handlerErrors.WithLabelValues(route).Inc()
}

var (
	_ observability.PipelineHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)
