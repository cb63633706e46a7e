package telemetry

import (
	"strings"
	"time"

	apperrors "fitness-tracker/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_operations_total",
			Help: "Total number of profile operations by outcome",
		},
		[]string{"operation", "result"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitness_operation_duration_seconds",
			Help:    "Profile operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_recommendation_cache_lookups_total",
			Help: "Recommendation cache lookups by result",
		},
		[]string{"result"},
	)
)

const (
	CacheHit         = "hit"
	CacheMiss        = "miss"
	CacheError       = "error"
	CacheUnavailable = "unavailable"
)

// Result maps an operation error to its metric label: "ok", the lowercased
// domain error code, or "error".
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeUnknown {
		return strings.ToLower(string(code))
	}
	return "error"
}

// Track runs fn and records its outcome and duration under operation.
func Track(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	operationsTotal.WithLabelValues(operation, Result(err)).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	return err
}

func CacheLookup(result string) {
	cacheLookupsTotal.WithLabelValues(result).Inc()
}
