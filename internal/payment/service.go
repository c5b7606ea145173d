// Package payment implements the payment record state machine: create a
// gateway order and a pending record, then promote the record to paid on a
// signature-authenticated callback.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/gateway"
	"github.com/vishwasri/techfest-backend/internal/mint"
	"github.com/vishwasri/techfest-backend/internal/observability"
	"github.com/vishwasri/techfest-backend/internal/signature"
)

// maxInsertAttempts bounds re-minting when a concurrent create claims the
// same ticketId between the existence check and the insert.
const maxInsertAttempts = 3

// Store is the slice of the persistence adapter the payment core needs.
type Store interface {
	InsertTicketPayment(ctx context.Context, tp *domain.TicketPayment) error
	InsertRegistrationPayment(ctx context.Context, rp *domain.RegistrationPayment) error
	DeletePendingTicket(ctx context.Context, contact string) (int64, error)
	TicketIDExists(ctx context.Context, id string) (bool, error)
	PromoteTicketPayment(ctx context.Context, orderID string, u domain.PaymentUpdate) (*domain.TicketPayment, error)
	PromoteRegistrationPayment(ctx context.Context, orderID string, u domain.PaymentUpdate) (*domain.RegistrationPayment, error)
	FindTicket(ctx context.Context, input string) (*domain.TicketPayment, error)
}

// Auditor records lifecycle events. Audit failures never abort a payment.
type Auditor interface {
	OrderCreated(ctx context.Context, kind, orderID string, data map[string]interface{}) error
	PaymentVerified(ctx context.Context, kind, orderID, paymentID string) error
}

type Service struct {
	gw     gateway.Gateway
	store  Store
	audit  Auditor
	logger observability.Logger
	secret string
	now    func() time.Time
}

func NewService(gw gateway.Gateway, store Store, audit Auditor, logger observability.Logger, secret string) *Service {
	return &Service{
		gw:     gw,
		store:  store,
		audit:  audit,
		logger: logger,
		secret: secret,
		now:    time.Now,
	}
}

type CreateOrderRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Competition string `json:"competition"`
	EventName   string `json:"eventName"`
	Type        string `json:"type"`
	PaymentFor  string `json:"paymentFor"`
	Contact     string `json:"contact"`
}

type VerifyRequest struct {
	OrderID    string `json:"razorpay_order_id"`
	PaymentID  string `json:"razorpay_payment_id"`
	Signature  string `json:"razorpay_signature"`
	PaymentFor string `json:"paymentFor"`
}

// VerifyResult reports the promoted record. TicketID is set for tickets
// only; this is where the pre-minted id is finally revealed.
type VerifyResult struct {
	Kind     string
	TicketID string
}

// CreateOrder calls the gateway, then writes the pending record under the
// gateway's orderId. For tickets a stale "created" record for the same
// contact is swept first and a fresh ticketId minted. The gateway order is
// returned verbatim for the browser to hand to the checkout widget.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*gateway.Order, error) {
	if req.Amount <= 0 {
		return nil, domain.Invalid("Amount must be a positive number")
	}
	switch req.PaymentFor {
	case domain.PaymentForTicket:
		if req.Contact == "" {
			return nil, domain.Invalid("Contact is required for ticket payments")
		}
	case domain.PaymentForRegistration:
	default:
		return nil, domain.Invalid("paymentFor must be 'ticket' or 'registration'")
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	receipt := fmt.Sprintf("receipt_%d", s.now().UnixMilli())

	order, err := s.gw.CreateOrder(ctx, req.Amount, currency, receipt)
	if err != nil {
		return nil, err
	}

	switch req.PaymentFor {
	case domain.PaymentForTicket:
		// Sweep before insert: one pending ticket per contact. A failed
		// sweep is logged and the order proceeds.
		if _, err := s.store.DeletePendingTicket(ctx, req.Contact); err != nil {
			s.logger.WithError(err).WithField("contact", req.Contact).Warn("pending ticket sweep failed")
		}

		// The existence check in Mint and the insert below race against
		// concurrent creates; the unique ticketId index is the arbiter. A
		// conflicting insert is retried with a freshly minted id.
		var insertErr error
		for attempt := 0; attempt < maxInsertAttempts; attempt++ {
			ticketID, err := mint.Mint(ctx, mint.Ticket, s.store.TicketIDExists)
			if err != nil {
				return nil, errors.Mark(err, domain.ErrOrderCreation)
			}

			tp := &domain.TicketPayment{
				TicketID:  ticketID,
				Name:      req.Name,
				Type:      req.Type,
				EventName: req.EventName,
				Contact:   req.Contact,
				Amount:    req.Amount,
				Currency:  currency,
				OrderID:   order.ID,
				Status:    order.Status,
			}
			insertErr = s.store.InsertTicketPayment(ctx, tp)
			if insertErr == nil {
				break
			}
			if !errors.Is(insertErr, domain.ErrConflict) {
				return nil, errors.Mark(insertErr, domain.ErrOrderCreation)
			}
			observability.MintRetriesTotal.Inc()
			s.logger.WithField("ticketId", ticketID).Warn("ticket id taken at insert, re-minting")
		}
		if insertErr != nil {
			return nil, errors.Mark(insertErr, domain.ErrOrderCreation)
		}

	case domain.PaymentForRegistration:
		rp := &domain.RegistrationPayment{
			Name:        req.Name,
			Category:    req.Category,
			Competition: req.Competition,
			EventName:   req.EventName,
			Amount:      req.Amount,
			Currency:    currency,
			FeePaid:     req.Amount,
			OrderID:     order.ID,
			Status:      order.Status,
		}
		if err := s.store.InsertRegistrationPayment(ctx, rp); err != nil {
			return nil, errors.Mark(err, domain.ErrOrderCreation)
		}
	}

	_ = s.audit.OrderCreated(ctx, req.PaymentFor, order.ID, map[string]interface{}{
		"amount":   order.Amount,
		"currency": order.Currency,
		"receipt":  receipt,
	})

	s.logger.WithField("orderId", order.ID).WithField("paymentFor", req.PaymentFor).Info("gateway order created")
	return order, nil
}

// VerifyPayment authenticates the callback triple and promotes the matching
// record. Replaying a valid verify rewrites identical fields and succeeds.
func (s *Service) VerifyPayment(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	if !signature.Verify(req.OrderID, req.PaymentID, req.Signature, s.secret) {
		observability.SignatureFailuresTotal.Inc()
		s.logger.WithField("orderId", req.OrderID).Warn("payment signature mismatch")
		return nil, domain.ErrInvalidSignature
	}

	update := domain.PaymentUpdate{
		PaymentID:   req.PaymentID,
		Signature:   req.Signature,
		PaymentTime: s.now(),
	}

	result := &VerifyResult{Kind: req.PaymentFor}
	switch req.PaymentFor {
	case domain.PaymentForTicket:
		tp, err := s.store.PromoteTicketPayment(ctx, req.OrderID, update)
		if err != nil {
			return nil, err
		}
		result.TicketID = tp.TicketID

	case domain.PaymentForRegistration:
		if _, err := s.store.PromoteRegistrationPayment(ctx, req.OrderID, update); err != nil {
			return nil, err
		}

	default:
		return nil, domain.Invalid("paymentFor must be 'ticket' or 'registration'")
	}

	observability.PaymentsVerifiedTotal.WithLabelValues(req.PaymentFor).Inc()
	_ = s.audit.PaymentVerified(ctx, req.PaymentFor, req.OrderID, req.PaymentID)

	s.logger.WithField("orderId", req.OrderID).WithField("paymentFor", req.PaymentFor).Info("payment verified")
	return result, nil
}

// FindTicket serves the ticket lookup endpoint (exact contact or name).
func (s *Service) FindTicket(ctx context.Context, input string) (*domain.TicketPayment, error) {
	return s.store.FindTicket(ctx, input)
}
