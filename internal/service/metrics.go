package service

import "github.com/prometheus/client_golang/prometheus"

var (
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "status_engine",
			Name:      "transitions_total",
			Help:      "Total number of order transitions by operation and result",
		},
		[]string{"operation", "result"},
	)

	auditFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "status_engine",
			Name:      "audit_failures_total",
			Help:      "Total number of activity log entries that could not be published",
		},
	)

	suggestionScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment_service",
			Subsystem: "slot_recommender",
			Name:      "suggestion_score",
			Help:      "Histogram of scores of suggested drawers",
			Buckets:   []float64{0, 20, 25, 40, 45, 60, 65, 85},
		},
	)

	suggestionsWithoutSlot = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "slot_recommender",
			Name:      "suggestions_without_slot_total",
			Help:      "Total number of suggestions where the chosen drawer had no free slot",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		transitionsTotal,
		auditFailures,
		suggestionScore,
		suggestionsWithoutSlot,
	)
}
