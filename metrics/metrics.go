package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worldcup_http_requests_total",
		Help: "API requests served",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worldcup_http_request_duration_seconds",
		Help:    "API request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// AggregationDuration observes stats aggregation latency by operation.
	AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worldcup_aggregation_duration_seconds",
		Help:    "Stats aggregation latency",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"operation"})

	// WSClients tracks connected WebSocket clients.
	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "worldcup_ws_clients",
		Help: "Connected WebSocket clients",
	})

	// DatasetRecords reports loaded record counts by kind.
	DatasetRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "worldcup_dataset_records",
		Help: "Records loaded at startup",
	}, []string{"kind"})
)

// TimeAggregation returns a func that records the elapsed time for one
// aggregation operation; use with defer.
func TimeAggregation(operation string) func() {
	start := time.Now()
	return func() {
		AggregationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// SetDatasetCounts publishes the loaded record counts.
func SetDatasetCounts(tournaments, matches, players int) {
	DatasetRecords.WithLabelValues("tournaments").Set(float64(tournaments))
	DatasetRecords.WithLabelValues("matches").Set(float64(matches))
	DatasetRecords.WithLabelValues("players").Set(float64(players))
}
