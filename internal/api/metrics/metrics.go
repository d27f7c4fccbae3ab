// Package metrics defines and registers all custom Prometheus metrics for the
// hospital system. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the access guard.
// Label:
//   - reason: "missing_token", "invalid_or_expired", or "role_not_permitted"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by the auth or role gate.",
	},
	[]string{"reason"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts outbound message attempts.
// Label:
//   - status: delivery outcome ("sent", "failed", "simulated")
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of outbound notification attempts, by delivery status.",
	},
	[]string{"status"},
)

// AppointmentsBookedTotal counts successfully stored appointments.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked.",
	},
)

// ReminderQueueDepth tracks the number of reminders waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ReminderQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminder_queue_depth",
		Help:      "Current number of reminders pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
