// Package metrics exposes Prometheus collectors for the API and the
// recommendation engine.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragrance_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fragrance_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecommendationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragrance_recommendation_runs_total",
			Help: "Recommendation engine invocations",
		},
		[]string{"source"}, // "collection", "preview"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fragrance_recommendation_duration_seconds",
			Help:    "Time spent computing recommendations",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	RecommendationsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragrance_recommendations_returned_total",
			Help: "Recommendations returned to clients",
		},
		[]string{"kind"}, // "layering", "purchase"
	)

	CollectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fragrance_collection_size",
			Help: "Number of perfumes in the last evaluated collection snapshot",
		},
	)
)

// RecordHTTPRequest records one finished request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordRecommendation records one engine run over a snapshot of size n.
func RecordRecommendation(source string, n, layering, purchase int, d time.Duration) {
	RecommendationRuns.WithLabelValues(source).Inc()
	RecommendationDuration.Observe(d.Seconds())
	RecommendationsReturned.WithLabelValues("layering").Add(float64(layering))
	RecommendationsReturned.WithLabelValues("purchase").Add(float64(purchase))
	if source == "collection" {
		CollectionSize.Set(float64(n))
	}
}
