package server

import (
	"net/http"

	"github.com/krateoplatformops/oasdocs/internal/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "oasdocs"

// Metrics holds the collectors of one server on an isolated registry, so
// several servers (or tests) never collide on the default registry.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal          *prometheus.CounterVec
	RequestDurationSeconds *prometheus.HistogramVec
	NotModifiedTotal       prometheus.Counter

	CatalogDocuments  prometheus.Gauge
	CatalogOperations *prometheus.GaugeVec
	CatalogGuides     *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served, by route pattern, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		RequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency, by route pattern and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		NotModifiedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_not_modified_total",
				Help:      "Requests answered with 304 thanks to a matching If-None-Match.",
			},
		),
		CatalogDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "catalog_documents",
				Help:      "Documents loaded in the catalog.",
			},
		),
		CatalogOperations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "catalog_operations",
				Help:      "Indexed operations per document.",
			},
			[]string{"document"},
		),
		CatalogGuides: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "catalog_guides",
				Help:      "Guides per document.",
			},
			[]string{"document"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSeconds,
		m.NotModifiedTotal,
		m.CatalogDocuments,
		m.CatalogOperations,
		m.CatalogGuides,
	)

	return m
}

// ObserveCatalog records the size of c.
func (m *Metrics) ObserveCatalog(c *catalog.Catalog) {
	m.CatalogOperations.Reset()
	m.CatalogGuides.Reset()

	docs := c.Documents()
	m.CatalogDocuments.Set(float64(len(docs)))
	for _, d := range docs {
		m.CatalogOperations.WithLabelValues(d.Key).Set(float64(d.Operations))
		m.CatalogGuides.WithLabelValues(d.Key).Set(float64(len(c.Guides(d.Key))))
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
