// Package domain defines the persisted record types and the payment
// lifecycle constants shared by the service and adapter layers.
package domain

import "time"

// Payment record lifecycle. Records are inserted in StatusCreated by
// create-order and move to StatusPaid exactly once on a verified callback.
const (
	StatusCreated = "created"
	StatusPaid    = "paid"
)

// Discriminator values for the two payment record kinds.
const (
	PaymentForTicket       = "ticket"
	PaymentForRegistration = "registration"
)

// RegistrationPayment is one competition-fee order.
type RegistrationPayment struct {
	Name        string     `bson:"name" json:"name"`
	Category    string     `bson:"category,omitempty" json:"category,omitempty"`
	Competition string     `bson:"competition,omitempty" json:"competition,omitempty"`
	EventName   string     `bson:"eventName" json:"eventName"`
	Amount      int64      `bson:"amount" json:"amount"`
	Currency    string     `bson:"currency" json:"currency"`
	FeePaid     int64      `bson:"feePaid" json:"feePaid"`
	OrderID     string     `bson:"orderId" json:"orderId"`
	PaymentID   string     `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Signature   string     `bson:"signature,omitempty" json:"signature,omitempty"`
	Status      string     `bson:"status" json:"status"`
	PaymentTime *time.Time `bson:"paymentTime,omitempty" json:"paymentTime,omitempty"`
}

// TicketPayment is one ticket order. TicketID is minted at order creation
// and unique across the collection; it is revealed to the buyer only after
// the signature check promotes the record.
type TicketPayment struct {
	TicketID    string     `bson:"ticketId" json:"ticketId"`
	Name        string     `bson:"name" json:"name"`
	Type        string     `bson:"type,omitempty" json:"type,omitempty"`
	EventName   string     `bson:"eventName" json:"eventName"`
	Contact     string     `bson:"contact" json:"contact"`
	Amount      int64      `bson:"amount" json:"amount"`
	Currency    string     `bson:"currency" json:"currency"`
	OrderID     string     `bson:"orderId" json:"orderId"`
	PaymentID   string     `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Signature   string     `bson:"signature,omitempty" json:"signature,omitempty"`
	Status      string     `bson:"status" json:"status"`
	PaymentTime *time.Time `bson:"paymentTime,omitempty" json:"paymentTime,omitempty"`
}

// PaymentUpdate is the field set written when a record is promoted to paid.
type PaymentUpdate struct {
	PaymentID   string
	Signature   string
	PaymentTime time.Time
}
