// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts successfully persisted job postings.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created.",
	},
)

// ApplicationsTotal counts job application attempts.
// Label:
//   - result: "ok", "not_found" or "error"
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of job application attempts, by result.",
	},
	[]string{"result"},
)

// ── Broadcast metrics ─────────────────────────────────────────────────────────

// BroadcastSubscribers tracks the current number of live real-time subscribers.
var BroadcastSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "broadcast_subscribers",
		Help:      "Current number of connected real-time subscribers.",
	},
)

// BroadcastMessagesTotal counts messages enqueued for delivery to subscribers.
var BroadcastMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_messages_total",
		Help:      "Total number of messages enqueued to subscriber connections.",
	},
)

// BroadcastSendFailuresTotal counts subscribers dropped because delivery to
// them failed or their send buffer overflowed.
var BroadcastSendFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_send_failures_total",
		Help:      "Total number of subscribers dropped due to failed delivery.",
	},
)
