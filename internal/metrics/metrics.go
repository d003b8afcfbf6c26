// Package metrics exposes the prometheus collectors of the tweetflow service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics holds the collectors on a private registry, so several servers
// (and tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	builds             *prometheus.CounterVec
	buildNodes         prometheus.Histogram
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tweetflow_workflow_builds_total",
				Help: "Total number of workflow builds",
			},
			[]string{"outcome"},
		),
		buildNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tweetflow_workflow_nodes",
				Help:    "Number of nodes in built workflows",
				Buckets: prometheus.LinearBuckets(3, 1, 10),
			},
		),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tweetflow_content_generations_total",
				Help: "Total number of content generation calls",
			},
			[]string{"kind", "outcome"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "tweetflow_content_generation_duration_seconds",
				Help: "Duration of content generation calls",
			},
			[]string{"kind"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tweetflow_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "tweetflow_http_request_duration_seconds",
				Help: "Duration of HTTP requests",
			},
			[]string{"route"},
		),
	}
	m.registry.MustRegister(
		m.builds,
		m.buildNodes,
		m.generations,
		m.generationDuration,
		m.requests,
		m.requestDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBuild records one workflow build. nodes is ignored unless outcome is OutcomeOK.
func (m *Metrics) ObserveBuild(outcome string, nodes int) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.buildNodes.Observe(float64(nodes))
	}
}

// ObserveGeneration records one content generation call of the given kind.
func (m *Metrics) ObserveGeneration(kind string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.generations.WithLabelValues(kind, outcome).Inc()
	m.generationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
