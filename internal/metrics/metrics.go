package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// GBIF upstream metrics
	GBIFRequestsTotal   *prometheus.CounterVec
	GBIFRequestDuration *prometheus.HistogramVec

	// Application metrics
	SpeciesSearchesTotal       *prometheus.CounterVec
	OccurrenceCollectionsTotal *prometheus.CounterVec
	OccurrencePagesFetched     prometheus.Histogram
	OccurrencePointsReturned   prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "endpoint", "status"},
		),

		GBIFRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gbif_requests_total",
				Help: "Total number of requests issued to the GBIF API",
			},
			[]string{"endpoint", "status"},
		),

		GBIFRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gbif_request_duration_seconds",
				Help:    "GBIF API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		SpeciesSearchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "species_searches_total",
				Help: "Total number of species name searches",
			},
			[]string{"result"},
		),

		OccurrenceCollectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "occurrence_collections_total",
				Help: "Total number of occurrence collection runs",
			},
			[]string{"result"},
		),

		OccurrencePagesFetched: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "occurrence_pages_per_collection",
				Help:    "Number of GBIF pages fetched per occurrence collection",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),

		OccurrencePointsReturned: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "occurrence_points_returned",
				Help:    "Number of points returned per occurrence collection after sampling",
				Buckets: prometheus.ExponentialBuckets(10, 4, 7),
			},
		),
	}
}
