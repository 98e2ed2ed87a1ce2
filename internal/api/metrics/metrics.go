// Package metrics defines and registers all custom Prometheus metrics for the
// board API. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time and
// are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "board"

// SignupsTotal counts successfully registered users.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of users registered.",
	},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected at the auth middleware.
// Label:
//   - reason: "missing_header", "invalid_header", or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// CardsCreatedTotal counts newly created cards (idempotent replays excluded).
var CardsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_created_total",
		Help:      "Total number of cards created.",
	},
)
