package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Business metrics
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fare_quotes_total",
			Help: "Total number of fare quotes calculated",
		},
		[]string{"service", "mode"},
	)

	QuoteAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fare_quote_amount",
			Help:    "Distribution of quoted fare totals",
			Buckets: []float64{5, 10, 15, 20, 30, 50, 75, 100},
		},
		[]string{"service", "mode"},
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_predictions_total",
			Help: "Total number of model price predictions",
		},
		[]string{"service", "status"},
	)

	ArtifactLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifact_loads_total",
			Help: "Total number of model artifact load attempts",
		},
		[]string{"service", "artifact", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordQuote records one calculated fare quote
func RecordQuote(service, mode string, total float64) {
	QuotesTotal.WithLabelValues(service, mode).Inc()
	QuoteAmount.WithLabelValues(service, mode).Observe(total)
}

// RecordPrediction records one model prediction attempt
func RecordPrediction(service string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	PredictionsTotal.WithLabelValues(service, status).Inc()
}

// RecordArtifactLoad records one artifact load attempt
func RecordArtifactLoad(service, artifact string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ArtifactLoadsTotal.WithLabelValues(service, artifact, status).Inc()
}
