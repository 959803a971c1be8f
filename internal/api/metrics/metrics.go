// Package metrics defines and registers all custom Prometheus metrics for the
// user management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package init; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermgmt"

// ── Admin action metrics ─────────────────────────────────────────────────────

// AdminActionsTotal counts admin operations on manager accounts.
// Labels:
//   - action: "ban", "unban", or "delete"
//   - outcome: "success", "not_found", or "error"
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of admin actions on manager accounts.",
	},
	[]string{"action", "outcome"},
)

// ── Listing metrics ──────────────────────────────────────────────────────────

// ManagerListRequestsTotal counts manager listing queries.
var ManagerListRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manager_list_requests_total",
		Help:      "Total number of paginated manager listing requests served.",
	},
)

// ── Audit pipeline metrics ───────────────────────────────────────────────────

// AuditQueueDepth tracks the current number of audit entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEntriesWrittenTotal counts audit entries successfully persisted.
// Label:
//   - action: the admin action recorded ("ban", "unban", "delete")
var AuditEntriesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_written_total",
		Help:      "Total number of admin audit entries written to the store.",
	},
	[]string{"action"},
)
