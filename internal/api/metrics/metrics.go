// Package metrics defines and registers all custom Prometheus metrics
// for the farm-management API. It is the single source of truth for
// metric names, labels, and help strings; registration happens at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farm"

// LoginsTotal counts login attempts that reached the auth service.
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

// AuthDenialsTotal counts requests rejected by the role gate.
// Label:
//   - reason: "missing_header", "invalid_token", or "role_denied"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// LoginRateLimitedTotal counts login attempts rejected by the fixed-window limiter.
var LoginRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_rate_limited_total",
		Help:      "Total number of login attempts rejected with 429.",
	},
)

// ReadingsProcessedTotal counts monitoring readings persisted by the pipeline.
var ReadingsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_processed_total",
		Help:      "Total number of monitoring readings successfully ingested.",
	},
)

// ReadingsDedupTotal counts deduplication decisions in the reading pipeline.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new reading, processed)
var ReadingsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_dedup_total",
		Help:      "Total number of reading deduplication checks, by result (hit/miss).",
	},
	[]string{"result"},
)

// PurchasesCreatedTotal counts newly created purchase orders.
var PurchasesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_created_total",
		Help:      "Total number of purchases created.",
	},
)
