// Package metrics defines and registers all custom Prometheus metrics for the
// roster API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roster"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// AuthRejectionsTotal counts requests turned away by the gate or the
// role filter.
// Label:
//   - reason: "missing_credential", "invalid_token", "blocked", "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Roster metrics ────────────────────────────────────────────────────────────

// DeletesBlockedTotal counts deletes refused because dependent rows exist.
// Label:
//   - entity: "role", "team", "player", "training"
var DeletesBlockedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deletes_blocked_total",
		Help:      "Total number of deletes refused due to dependent records.",
	},
	[]string{"entity"},
)
