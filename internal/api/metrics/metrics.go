// Package metrics defines and registers all custom Prometheus metrics for
// the grievance backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "grievance"

// GrievancesFiledTotal counts newly filed grievances.
// Label:
//   - department: the parsed department category (e.g. "Hostel")
var GrievancesFiledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filed_total",
		Help:      "Total number of grievances filed, by department category.",
	},
	[]string{"department"},
)

// GrievancesResolvedTotal counts grievances moved to the Resolved status.
var GrievancesResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolved_total",
		Help:      "Total number of grievances marked resolved.",
	},
)

// NotificationsSentTotal counts status-change emails delivered successfully.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of status notifications delivered.",
	},
)

// NotificationsFailedTotal counts status-change emails that failed to send.
// Failures are terminal: there is no retry.
var NotificationsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of status notifications that failed delivery.",
	},
)

// NotificationsQueueDepth tracks notifications waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// LoginsTotal counts successful logins by effective role.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)
