package domain

import "time"

// Registration is a competition registration form submission. The
// registrationId (REG + 6 digits) is minted server-side on create.
type Registration struct {
	RegistrationID string    `bson:"registrationId" json:"registrationId"`
	Name           string    `bson:"name" json:"name"`
	Competition    string    `bson:"competition" json:"competition"`
	Email          string    `bson:"email" json:"email"`
	Mobile         string    `bson:"mobile" json:"mobile"`
	Category       string    `bson:"category" json:"category"`
	Fee            float64   `bson:"fee" json:"fee"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// Stall is a stall booking form submission. The fee is carried as the
// free-form string the booking form sends.
type Stall struct {
	StallID     string    `bson:"stallId" json:"stallId"`
	Name        string    `bson:"name" json:"name"`
	Competition string    `bson:"competition" json:"competition"`
	Email       string    `bson:"email" json:"email"`
	Mobile      string    `bson:"mobile" json:"mobile"`
	Fee         string    `bson:"fee" json:"fee"`
	Category    string    `bson:"category" json:"category"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Sponsorship is a sponsorship lead. ContactName and Terms are only
// required by the stricter registration variant of the form.
type Sponsorship struct {
	Name        string    `bson:"name" json:"name"`
	Competition string    `bson:"competition" json:"competition"`
	ContactName string    `bson:"contactName,omitempty" json:"contactName,omitempty"`
	Email       string    `bson:"email" json:"email"`
	Mobile      string    `bson:"mobile" json:"mobile"`
	Terms       bool      `bson:"terms" json:"terms"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Contact is a contact-page enquiry.
type Contact struct {
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Mobile    string    `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
