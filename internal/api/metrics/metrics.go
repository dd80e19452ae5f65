// Package metrics defines the custom Prometheus metrics of the campus API.
// All metrics register with the default registry through promauto and are
// served at /metrics next to the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unilink"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login calls.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "invalid", "duplicate", "throttled" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// GuardDecisionsTotal counts admin gate outcomes.
// Label:
//   - decision: "allowed", "unauthenticated", "forbidden" or "error"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of admin route authorization decisions.",
	},
	[]string{"decision"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ContentMutationsTotal counts successful writes to the feeds.
// Labels:
//   - kind: "post", "internship" or "news"
//   - op: "create", "update" or "delete"
var ContentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_mutations_total",
		Help:      "Total number of content items created, updated or deleted.",
	},
	[]string{"kind", "op"},
)

// ── Location metrics ──────────────────────────────────────────────────────────

// LocationQueriesTotal counts map queries.
// Labels:
//   - view: "all" or "nearby"
//   - origin: "device" when coordinates were supplied, "default" otherwise
var LocationQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_queries_total",
		Help:      "Total number of location directory queries.",
	},
	[]string{"view", "origin"},
)
