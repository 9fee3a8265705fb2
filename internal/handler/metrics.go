package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	shipmentEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "shipment_events_processed_total",
			Help:      "Total number of successfully applied shipment events",
		},
	)

	shipmentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "shipment_events_failed_total",
			Help:      "Total number of shipment events that failed to apply",
		},
	)

	shipmentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "shipment_events_dlq_total",
			Help:      "Total number of shipment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	shipmentEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "shipment_event_duration_seconds",
			Help:      "Histogram of shipment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	shipmentEventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "shipment_events_in_progress",
			Help:      "Number of shipment events currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		shipmentEventsProcessed,
		shipmentEventsFailed,
		shipmentEventsDLQ,
		commitErrors,
		shipmentEventDuration,
		shipmentEventsInProgress,
	)
}
