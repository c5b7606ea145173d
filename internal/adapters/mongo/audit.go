package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vishwasri/techfest-backend/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository appends payment lifecycle events to the paymentaudits
// collection. Writes are best-effort; callers log and continue on failure.
type AuditRepository struct {
	coll   *mongo.Collection
	logger observability.Logger
}

type auditRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Action    string    `bson:"action"`
	Kind      string    `bson:"kind"`
	OrderID   string    `bson:"orderId"`
	PaymentID string    `bson:"paymentId,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
	Data      bson.M    `bson:"data,omitempty"`
}

func (a *AuditRepository) OrderCreated(ctx context.Context, kind, orderID string, data map[string]interface{}) error {
	return a.insert(ctx, auditRecord{
		ID:        uuid.New(),
		Action:    "order.created",
		Kind:      kind,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Data:      bson.M(data),
	})
}

func (a *AuditRepository) PaymentVerified(ctx context.Context, kind, orderID, paymentID string) error {
	return a.insert(ctx, auditRecord{
		ID:        uuid.New(),
		Action:    "payment.verified",
		Kind:      kind,
		OrderID:   orderID,
		PaymentID: paymentID,
		Timestamp: time.Now(),
	})
}

func (a *AuditRepository) insert(ctx context.Context, rec auditRecord) error {
	_, err := a.coll.InsertOne(ctx, rec)
	if err != nil {
		a.logger.WithError(err).Error("failed to insert payment audit record")
		return err
	}
	return nil
}
