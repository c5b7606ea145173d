// Package mongo holds the document-store adapters for the seven techfest
// collections.
package mongo

import (
	"context"

	"github.com/vishwasri/techfest-backend/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// Collection names. Competition registrations live in "competitions",
// matching the layout the front-end was built against.
const (
	collRegistrations        = "competitions"
	collStalls               = "stalls"
	collSponsorships         = "sponsorships"
	collContacts             = "contacts"
	collRegistrationPayments = "registrationpayments"
	collTicketPayments       = "ticketpayments"
	collPaymentAudits        = "paymentaudits"
)

type Store struct {
	db     *mongo.Database
	logger observability.Logger
}

func NewStore(db *mongo.Database, logger observability.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{
		registrations: s.db.Collection(collRegistrationPayments),
		tickets:       s.db.Collection(collTicketPayments),
		logger:        s.logger,
	}
}

func (s *Store) Forms() *FormRepository {
	return &FormRepository{
		registrations: s.db.Collection(collRegistrations),
		stalls:        s.db.Collection(collStalls),
		sponsorships:  s.db.Collection(collSponsorships),
		contacts:      s.db.Collection(collContacts),
		logger:        s.logger,
	}
}

func (s *Store) Audit() *AuditRepository {
	return &AuditRepository{
		coll:   s.db.Collection(collPaymentAudits),
		logger: s.logger,
	}
}

// EnsureIndexes creates the unique indexes the record invariants rely on:
// orderId per payment collection, ticketId across ticket payments, and the
// minted form ids. Index builds are independent, so they run concurrently.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := func(coll, key string) func() error {
		return func() error {
			_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: key, Value: 1}},
				Options: options.Index().SetUnique(true),
			})
			return err
		}
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(unique(collRegistrationPayments, "orderId"))
	g.Go(unique(collTicketPayments, "orderId"))
	g.Go(unique(collTicketPayments, "ticketId"))
	g.Go(unique(collRegistrations, "registrationId"))
	g.Go(unique(collStalls, "stallId"))
	return g.Wait()
}
