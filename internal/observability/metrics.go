package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techfest_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code", "method"},
	)

	GatewayOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techfest_gateway_orders_total",
			Help: "Gateway create-order calls by outcome",
		},
		[]string{"outcome"},
	)

	PaymentsVerifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techfest_payments_verified_total",
			Help: "Payments promoted to paid, by kind",
		},
		[]string{"kind"},
	)

	SignatureFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "techfest_signature_failures_total",
			Help: "Verify callbacks rejected for a bad signature",
		},
	)

	MintRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "techfest_mint_retries_total",
			Help: "Identifier mint attempts that hit an existing id",
		},
	)
)
