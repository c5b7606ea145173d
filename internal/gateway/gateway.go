// Package gateway is the port over the external payment gateway. The only
// server-side gateway call is order creation; settlement happens between the
// browser and the gateway, and reconciliation is purely cryptographic.
package gateway

import "context"

// Order is the gateway's view of an intent to collect. Amount is in minor
// currency units, as the gateway reports it.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type Gateway interface {
	// CreateOrder registers an intent to collect amountMajor (major
	// currency units) and returns the gateway's order.
	CreateOrder(ctx context.Context, amountMajor int64, currency, receipt string) (*Order, error)
}
