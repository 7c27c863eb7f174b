package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowallet",
		Subsystem: "algod",
		Name:      "requests_total",
		Help:      "Number of algod requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	nodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "algowallet",
		Subsystem: "algod",
		Name:      "request_duration_seconds",
		Help:      "Duration of algod requests by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	indexerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowallet",
		Subsystem: "indexer",
		Name:      "requests_total",
		Help:      "Number of indexer requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	confirmationRounds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "algowallet",
		Name:      "confirmation_wait_rounds",
		Help:      "Rounds waited before a submitted transaction was resolved.",
		Buckets:   prometheus.LinearBuckets(0, 1, 12),
	})
)

// ObserveNodeRequest records one algod call.
func ObserveNodeRequest(operation string, start time.Time, err error) {
	nodeRequests.WithLabelValues(operation, outcome(err)).Inc()
	nodeDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveIndexerRequest records one indexer call.
func ObserveIndexerRequest(operation string, err error) {
	indexerRequests.WithLabelValues(operation, outcome(err)).Inc()
}

// ObserveConfirmationRounds records how many rounds a confirmation wait spanned.
func ObserveConfirmationRounds(rounds uint64) {
	confirmationRounds.Observe(float64(rounds))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
