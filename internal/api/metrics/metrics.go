// Package metrics defines all custom Prometheus metrics for the tours API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tours"

// LoginsTotal counts login attempts.
// Labels:
//   - outcome: "success" or "failure"
//   - kind: "store" (credential store lookup) or "demo" (allowlist match)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome and credential kind.",
	},
	[]string{"outcome", "kind"},
)

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// ToursCreatedTotal counts newly created catalog entries.
var ToursCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tours_created_total",
		Help:      "Total number of tours created.",
	},
)

// CartOpsTotal counts cart mutations.
// Label:
//   - op: "add" or "remove"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart operations, by operation.",
	},
	[]string{"op"},
)

// ImagesUploadedTotal counts stored image uploads.
var ImagesUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_uploaded_total",
		Help:      "Total number of images uploaded and stored.",
	},
)

// PurchasesTotal counts recorded checkouts.
var PurchasesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchases recorded.",
	},
)

// PurchaseRevenue accumulates the total value of recorded purchases.
var PurchaseRevenue = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchase_revenue_total",
		Help:      "Cumulative value of recorded purchases.",
	},
)
