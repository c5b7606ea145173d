package gateway

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/observability"
)

// Razorpay backs the Gateway port with the Razorpay Orders API.
type Razorpay struct {
	client *razorpay.Client
	logger observability.Logger
}

func NewRazorpay(keyID, keySecret string, logger observability.Logger) *Razorpay {
	return &Razorpay{
		client: razorpay.NewClient(keyID, keySecret),
		logger: logger,
	}
}

// CreateOrder converts the major-unit amount to paise before the API call.
// The SDK carries no context; ctx is accepted for the port contract only.
func (r *Razorpay) CreateOrder(_ context.Context, amountMajor int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountMajor * 100,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		observability.GatewayOrdersTotal.WithLabelValues("error").Inc()
		r.logger.WithError(err).Error("razorpay order create failed")
		return nil, errors.Mark(errors.Wrap(err, "razorpay order create"), domain.ErrOrderCreation)
	}

	order := &Order{
		ID:       asString(body["id"]),
		Amount:   asInt64(body["amount"]),
		Currency: asString(body["currency"]),
		Status:   asString(body["status"]),
	}
	if order.ID == "" {
		observability.GatewayOrdersTotal.WithLabelValues("error").Inc()
		return nil, errors.Mark(errors.New("razorpay response missing order id"), domain.ErrOrderCreation)
	}
	observability.GatewayOrdersTotal.WithLabelValues("ok").Inc()
	return order, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// The SDK decodes the response into map[string]interface{}, so numeric
// fields arrive as float64 or json.Number depending on the decoder.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}
