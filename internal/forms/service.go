// Package forms handles the four form-ingest flows: competition
// registrations, stall bookings, sponsorship leads, and contact enquiries.
package forms

import (
	"context"
	"time"

	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/mint"
	"github.com/vishwasri/techfest-backend/internal/observability"
)

// Store is the slice of the persistence adapter the form flows need.
type Store interface {
	InsertRegistration(ctx context.Context, reg *domain.Registration) error
	RegistrationIDExists(ctx context.Context, id string) (bool, error)
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)
	FindRegistration(ctx context.Context, input string) (*domain.Registration, error)
	InsertStall(ctx context.Context, st *domain.Stall) error
	StallIDExists(ctx context.Context, id string) (bool, error)
	ListStalls(ctx context.Context) ([]domain.Stall, error)
	FindStall(ctx context.Context, input string) (*domain.Stall, error)
	InsertSponsorship(ctx context.Context, sp *domain.Sponsorship) error
	ListSponsorships(ctx context.Context) ([]domain.Sponsorship, error)
	InsertContact(ctx context.Context, c *domain.Contact) error
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

type Service struct {
	store  Store
	logger observability.Logger
	now    func() time.Time
}

func NewService(store Store, logger observability.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

type RegistrationRequest struct {
	Name        string  `json:"name"`
	Competition string  `json:"competition"`
	Email       string  `json:"email"`
	Mobile      string  `json:"mobile"`
	Category    string  `json:"category"`
	Fee         float64 `json:"fee"`
}

// CreateRegistration validates the submission, mints the REG###### id and
// persists the record.
func (s *Service) CreateRegistration(ctx context.Context, req RegistrationRequest) (*domain.Registration, error) {
	if req.Name == "" || req.Competition == "" || req.Email == "" || req.Mobile == "" || req.Fee == 0 {
		return nil, domain.Invalid(msgAllFieldsRequired)
	}
	if err := validateCommon(req.Name, req.Email, req.Mobile); err != nil {
		return nil, err
	}

	id, err := mint.Mint(ctx, mint.Registration, s.store.RegistrationIDExists)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "Competition"
	}
	reg := &domain.Registration{
		RegistrationID: id,
		Name:           req.Name,
		Competition:    req.Competition,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Category:       category,
		Fee:            req.Fee,
		CreatedAt:      s.now(),
	}
	if err := s.store.InsertRegistration(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	return s.store.ListRegistrations(ctx)
}

func (s *Service) FindRegistration(ctx context.Context, input string) (*domain.Registration, error) {
	return s.store.FindRegistration(ctx, input)
}

type StallRequest struct {
	Name        string `json:"name"`
	Competition string `json:"competition"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Fee         string `json:"fee"`
	Category    string `json:"category"`
}

func (s *Service) CreateStall(ctx context.Context, req StallRequest) (*domain.Stall, error) {
	if req.Name == "" || req.Competition == "" || req.Email == "" || req.Mobile == "" || req.Fee == "" {
		return nil, domain.Invalid(msgAllFieldsRequired)
	}
	if err := validateCommon(req.Name, req.Email, req.Mobile); err != nil {
		return nil, err
	}

	id, err := mint.Mint(ctx, mint.Stall, s.store.StallIDExists)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "Stall"
	}
	st := &domain.Stall{
		StallID:     id,
		Name:        req.Name,
		Competition: req.Competition,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Fee:         req.Fee,
		Category:    category,
		CreatedAt:   s.now(),
	}
	if err := s.store.InsertStall(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) ListStalls(ctx context.Context) ([]domain.Stall, error) {
	return s.store.ListStalls(ctx)
}

func (s *Service) FindStall(ctx context.Context, input string) (*domain.Stall, error) {
	return s.store.FindStall(ctx, input)
}

type SponsorshipRequest struct {
	Name        string `json:"name"`
	Competition string `json:"competition"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Terms       bool   `json:"terms"`
}

// CreateSponsorship is the basic lead form: no terms checkbox, no contact
// person. Both sponsorship shapes are kept for the two live front-ends.
func (s *Service) CreateSponsorship(ctx context.Context, req SponsorshipRequest) error {
	if req.Name == "" || req.Competition == "" || req.Email == "" || req.Mobile == "" {
		return domain.Invalid(msgAllFieldsRequired)
	}
	if err := validateCommon(req.Name, req.Email, req.Mobile); err != nil {
		return err
	}
	return s.store.InsertSponsorship(ctx, &domain.Sponsorship{
		Name:        req.Name,
		Competition: req.Competition,
		ContactName: req.ContactName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Terms:       req.Terms,
		CreatedAt:   s.now(),
	})
}

// RegisterSponsorship is the stricter variant: contact person required and
// terms must be accepted.
func (s *Service) RegisterSponsorship(ctx context.Context, req SponsorshipRequest) error {
	if req.Name == "" || req.Competition == "" || req.ContactName == "" || req.Email == "" || req.Mobile == "" || !req.Terms {
		return domain.Invalid(msgSponsorshipTerms)
	}
	if err := validateCommon(req.Name, req.Email, req.Mobile); err != nil {
		return err
	}
	return s.store.InsertSponsorship(ctx, &domain.Sponsorship{
		Name:        req.Name,
		Competition: req.Competition,
		ContactName: req.ContactName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Terms:       req.Terms,
		CreatedAt:   s.now(),
	})
}

func (s *Service) ListSponsorships(ctx context.Context) ([]domain.Sponsorship, error) {
	return s.store.ListSponsorships(ctx)
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}

func (s *Service) CreateContact(ctx context.Context, req ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return domain.Invalid(msgAllFieldsRequired)
	}
	if !nameRe.MatchString(req.Name) {
		return domain.Invalid(msgNameAlphabets)
	}
	if !emailRe.MatchString(req.Email) {
		return domain.Invalid(msgInvalidEmail)
	}
	if req.Mobile != "" && !mobileRe.MatchString(req.Mobile) {
		return domain.Invalid(msgMobileTenDigits)
	}
	return s.store.InsertContact(ctx, &domain.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Message:   req.Message,
		CreatedAt: s.now(),
	})
}

func (s *Service) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return s.store.ListContacts(ctx)
}
