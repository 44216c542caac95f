package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"driver", "operation", "collection"},
	)

	GraphQLOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphql_operations_total",
			Help: "Total number of executed GraphQL operations",
		},
		[]string{"outcome"}, // outcome: ok, error
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordStoreOperation(driver, operation, collection string, duration time.Duration) {
	StoreOperationDuration.WithLabelValues(driver, operation, collection).Observe(duration.Seconds())
}

// ObserveStore is meant to be deferred: defer metrics.ObserveStore("postgres", "find", "clients")().
func ObserveStore(driver, operation, collection string) func() {
	start := time.Now()
	return func() {
		RecordStoreOperation(driver, operation, collection, time.Since(start))
	}
}

func IncGraphQLOperation(hasErrors bool) {
	outcome := "ok"
	if hasErrors {
		outcome = "error"
	}
	GraphQLOperations.WithLabelValues(outcome).Inc()
}
