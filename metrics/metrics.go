// Package metrics holds the Prometheus metrics of the real-time gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OpenConnections tracks the websocket connections currently attached.
	OpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hirechat_realtime_open_connections",
			Help: "Number of currently open real-time connections",
		},
	)

	// JoinedRooms tracks the conversation rooms with at least one local connection.
	JoinedRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hirechat_realtime_joined_rooms",
			Help: "Number of conversation rooms with local connections",
		},
	)

	// PublishedEvents counts the events handed to the broker.
	PublishedEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirechat_realtime_published_events_total",
			Help: "Total number of real-time events published",
		},
		[]string{"event"},
	)

	// DroppedDeliveries counts frames that could not be queued on a connection.
	DroppedDeliveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hirechat_realtime_dropped_deliveries_total",
			Help: "Total number of frames dropped because a connection was closed or too slow",
		},
	)

	// RejectedHandshakes counts upgrade requests refused before the upgrade.
	RejectedHandshakes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirechat_realtime_rejected_handshakes_total",
			Help: "Total number of rejected real-time handshakes",
		},
		[]string{"reason"},
	)
)

func RecordConnectionOpened() {
	OpenConnections.Inc()
}

func RecordConnectionClosed() {
	OpenConnections.Dec()
}

func RecordPublished(event string) {
	PublishedEvents.WithLabelValues(event).Inc()
}
