// Package metrics defines and registers the custom Prometheus metrics of the
// advise-clothes API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "advise"

// Result label values shared by the counters below.
const (
	ResultOK        = "ok"
	ResultInvalid   = "invalid"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UserLifecycleTotal counts user lifecycle requests.
// Labels:
//   - action: "create", "update", "delete" or "restore"
//   - result: one of the Result* constants
var UserLifecycleTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_lifecycle_total",
		Help:      "Total number of user lifecycle requests, by action and result.",
	},
	[]string{"action", "result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsTotal counts session requests.
// Labels:
//   - action: "create", "lookup" or "delete"
//   - result: one of the Result* constants
var SessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_total",
		Help:      "Total number of session requests, by action and result.",
	},
	[]string{"action", "result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogItemsCreatedTotal counts newly registered catalog entries.
// Label:
//   - kind: "company" or "clothes"
var CatalogItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_items_created_total",
		Help:      "Total number of companies and clothes created.",
	},
	[]string{"kind"},
)
