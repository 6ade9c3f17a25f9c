// Package metrics defines the custom Prometheus metrics of the rental API.
// Metrics are registered with the default registry on package init through
// promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Tenancy metrics ───────────────────────────────────────────────────────────

// ContractsCreatedTotal counts contracts created, replays excluded.
var ContractsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contracts_created_total",
		Help:      "Total number of rental contracts created.",
	},
)

// ContractsTerminatedTotal counts contracts moved from active to inactive.
var ContractsTerminatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contracts_terminated_total",
		Help:      "Total number of rental contracts terminated.",
	},
)

// DeletesBlockedTotal counts deletes rejected because of occupancy.
// Label:
//   - entity: "house" or "room"
var DeletesBlockedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deletes_blocked_total",
		Help:      "Total number of house or room deletes rejected because of occupancy.",
	},
	[]string{"entity"},
)

// ── Billing metrics ───────────────────────────────────────────────────────────

var InvoicesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_created_total",
		Help:      "Total number of invoices created.",
	},
)

var InvoicesPaidTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_paid_total",
		Help:      "Total number of mark-paid requests served.",
	},
)

// AIReportsTotal counts revenue report requests.
// Label:
//   - result: "ok" or "degraded" (generator failed, error text returned)
var AIReportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_reports_total",
		Help:      "Total number of AI revenue reports, labelled by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks events waiting in each dispatcher worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "written", "failed" or "dropped" (queue full)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, labelled by outcome.",
	},
	[]string{"result"},
)

// AuditWriteDuration measures one audit insert.
var AuditWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_write_duration_seconds",
		Help:      "Duration of a single audit event insert.",
		Buckets:   prometheus.DefBuckets,
	},
)
