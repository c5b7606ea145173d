package mongo

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository owns the two payment collections. Records enter in
// status "created" and are promoted to "paid" by a find-and-update keyed on
// the gateway orderId.
type PaymentRepository struct {
	registrations *mongo.Collection
	tickets       *mongo.Collection
	logger        observability.Logger
}

func (r *PaymentRepository) InsertTicketPayment(ctx context.Context, tp *domain.TicketPayment) error {
	_, err := r.tickets.InsertOne(ctx, tp)
	if mongo.IsDuplicateKeyError(err) {
		// A racing create claimed the same ticketId between the existence
		// check and this insert. Callers re-mint and try again.
		return errors.Mark(err, domain.ErrConflict)
	}
	if err != nil {
		r.logger.WithError(err).Error("failed to insert ticket payment")
		return err
	}
	return nil
}

func (r *PaymentRepository) InsertRegistrationPayment(ctx context.Context, rp *domain.RegistrationPayment) error {
	_, err := r.registrations.InsertOne(ctx, rp)
	if err != nil {
		r.logger.WithError(err).Error("failed to insert registration payment")
		return err
	}
	return nil
}

// DeletePendingTicket removes every stale "created" ticket payment for the
// contact. Concurrent creates can leave more than one pending row, so the
// sweep has to clear all of them, not just the newest.
func (r *PaymentRepository) DeletePendingTicket(ctx context.Context, contact string) (int64, error) {
	res, err := r.tickets.DeleteMany(ctx, bson.M{
		"contact": contact,
		"status":  domain.StatusCreated,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PaymentRepository) TicketIDExists(ctx context.Context, id string) (bool, error) {
	n, err := r.tickets.CountDocuments(ctx, bson.M{"ticketId": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func paidUpdate(u domain.PaymentUpdate) bson.M {
	return bson.M{"$set": bson.M{
		"paymentId":   u.PaymentID,
		"signature":   u.Signature,
		"status":      domain.StatusPaid,
		"paymentTime": u.PaymentTime,
	}}
}

// PromoteTicketPayment marks the ticket payment for orderID as paid and
// returns the updated record. A replay writes identical fields, so it is
// idempotent by construction.
func (r *PaymentRepository) PromoteTicketPayment(ctx context.Context, orderID string, u domain.PaymentUpdate) (*domain.TicketPayment, error) {
	var tp domain.TicketPayment
	err := r.tickets.FindOneAndUpdate(
		ctx,
		bson.M{"orderId": orderID},
		paidUpdate(u),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		r.logger.WithError(err).Error("failed to promote ticket payment")
		return nil, err
	}
	return &tp, nil
}

func (r *PaymentRepository) PromoteRegistrationPayment(ctx context.Context, orderID string, u domain.PaymentUpdate) (*domain.RegistrationPayment, error) {
	var rp domain.RegistrationPayment
	err := r.registrations.FindOneAndUpdate(
		ctx,
		bson.M{"orderId": orderID},
		paidUpdate(u),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		r.logger.WithError(err).Error("failed to promote registration payment")
		return nil, err
	}
	return &rp, nil
}

// FindTicket looks a ticket payment up by exact contact or holder name.
func (r *PaymentRepository) FindTicket(ctx context.Context, input string) (*domain.TicketPayment, error) {
	var tp domain.TicketPayment
	err := r.tickets.FindOne(ctx, bson.M{"$or": []bson.M{
		{"contact": input},
		{"name": input},
	}}).Decode(&tp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tp, nil
}
