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

// FormRepository owns the four form-ingest collections. All lists come back
// newest first.
type FormRepository struct {
	registrations *mongo.Collection
	stalls        *mongo.Collection
	sponsorships  *mongo.Collection
	contacts      *mongo.Collection
	logger        observability.Logger
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *FormRepository) InsertRegistration(ctx context.Context, reg *domain.Registration) error {
	_, err := r.registrations.InsertOne(ctx, reg)
	if err != nil {
		r.logger.WithError(err).Error("failed to insert registration")
	}
	return err
}

func (r *FormRepository) RegistrationIDExists(ctx context.Context, id string) (bool, error) {
	n, err := r.registrations.CountDocuments(ctx, bson.M{"registrationId": id}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *FormRepository) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	cur, err := r.registrations.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	out := []domain.Registration{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FormRepository) FindRegistration(ctx context.Context, input string) (*domain.Registration, error) {
	var reg domain.Registration
	err := r.registrations.FindOne(ctx, emailOrMobile(input)).Decode(&reg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *FormRepository) InsertStall(ctx context.Context, st *domain.Stall) error {
	_, err := r.stalls.InsertOne(ctx, st)
	if err != nil {
		r.logger.WithError(err).Error("failed to insert stall")
	}
	return err
}

func (r *FormRepository) StallIDExists(ctx context.Context, id string) (bool, error) {
	n, err := r.stalls.CountDocuments(ctx, bson.M{"stallId": id}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *FormRepository) ListStalls(ctx context.Context) ([]domain.Stall, error) {
	cur, err := r.stalls.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	out := []domain.Stall{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FormRepository) FindStall(ctx context.Context, input string) (*domain.Stall, error) {
	var st domain.Stall
	err := r.stalls.FindOne(ctx, emailOrMobile(input)).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *FormRepository) InsertSponsorship(ctx context.Context, sp *domain.Sponsorship) error {
	_, err := r.sponsorships.InsertOne(ctx, sp)
	if err != nil {
		r.logger.WithError(err).Error("failed to insert sponsorship")
	}
	return err
}

func (r *FormRepository) ListSponsorships(ctx context.Context) ([]domain.Sponsorship, error) {
	cur, err := r.sponsorships.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	out := []domain.Sponsorship{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FormRepository) InsertContact(ctx context.Context, c *domain.Contact) error {
	_, err := r.contacts.InsertOne(ctx, c)
	if err != nil {
		r.logger.WithError(err).Error("failed to insert contact")
	}
	return err
}

func (r *FormRepository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	cur, err := r.contacts.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	out := []domain.Contact{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func emailOrMobile(input string) bson.M {
	return bson.M{"$or": []bson.M{
		{"email": input},
		{"mobile": input},
	}}
}
