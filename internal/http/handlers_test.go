package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/forms"
	"github.com/vishwasri/techfest-backend/internal/gateway"
	httphandler "github.com/vishwasri/techfest-backend/internal/http"
	"github.com/vishwasri/techfest-backend/internal/observability"
	"github.com/vishwasri/techfest-backend/internal/payment"
	"github.com/vishwasri/techfest-backend/internal/signature"
)

const testSecret = "test_key_secret"

// memStore implements payment.Store, payment.Auditor, and forms.Store in
// memory, enough to drive the full router in tests.
type memStore struct {
	tickets       map[string]*domain.TicketPayment
	regPayments   map[string]*domain.RegistrationPayment
	registrations []domain.Registration
	stalls        []domain.Stall
	sponsorships  []domain.Sponsorship
	contacts      []domain.Contact
}

func newMemStore() *memStore {
	return &memStore{
		tickets:     map[string]*domain.TicketPayment{},
		regPayments: map[string]*domain.RegistrationPayment{},
	}
}

func (s *memStore) InsertTicketPayment(_ context.Context, tp *domain.TicketPayment) error {
	cp := *tp
	s.tickets[tp.OrderID] = &cp
	return nil
}

func (s *memStore) InsertRegistrationPayment(_ context.Context, rp *domain.RegistrationPayment) error {
	cp := *rp
	s.regPayments[rp.OrderID] = &cp
	return nil
}

func (s *memStore) DeletePendingTicket(_ context.Context, contact string) (int64, error) {
	var deleted int64
	for orderID, tp := range s.tickets {
		if tp.Contact == contact && tp.Status == domain.StatusCreated {
			delete(s.tickets, orderID)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memStore) TicketIDExists(_ context.Context, id string) (bool, error) {
	for _, tp := range s.tickets {
		if tp.TicketID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) PromoteTicketPayment(_ context.Context, orderID string, u domain.PaymentUpdate) (*domain.TicketPayment, error) {
	tp, ok := s.tickets[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	tp.PaymentID = u.PaymentID
	tp.Signature = u.Signature
	tp.Status = domain.StatusPaid
	t := u.PaymentTime
	tp.PaymentTime = &t
	cp := *tp
	return &cp, nil
}

func (s *memStore) PromoteRegistrationPayment(_ context.Context, orderID string, u domain.PaymentUpdate) (*domain.RegistrationPayment, error) {
	rp, ok := s.regPayments[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rp.PaymentID = u.PaymentID
	rp.Signature = u.Signature
	rp.Status = domain.StatusPaid
	t := u.PaymentTime
	rp.PaymentTime = &t
	cp := *rp
	return &cp, nil
}

func (s *memStore) FindTicket(_ context.Context, input string) (*domain.TicketPayment, error) {
	for _, tp := range s.tickets {
		if tp.Contact == input || tp.Name == input {
			cp := *tp
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) OrderCreated(context.Context, string, string, map[string]interface{}) error {
	return nil
}

func (s *memStore) PaymentVerified(context.Context, string, string, string) error {
	return nil
}

func (s *memStore) InsertRegistration(_ context.Context, reg *domain.Registration) error {
	s.registrations = append(s.registrations, *reg)
	return nil
}

func (s *memStore) RegistrationIDExists(_ context.Context, id string) (bool, error) {
	for _, r := range s.registrations {
		if r.RegistrationID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListRegistrations(context.Context) ([]domain.Registration, error) {
	return s.registrations, nil
}

func (s *memStore) FindRegistration(_ context.Context, input string) (*domain.Registration, error) {
	for _, r := range s.registrations {
		if r.Email == input || r.Mobile == input {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) InsertStall(_ context.Context, st *domain.Stall) error {
	s.stalls = append(s.stalls, *st)
	return nil
}

func (s *memStore) StallIDExists(_ context.Context, id string) (bool, error) {
	for _, st := range s.stalls {
		if st.StallID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListStalls(context.Context) ([]domain.Stall, error) {
	return s.stalls, nil
}

func (s *memStore) FindStall(_ context.Context, input string) (*domain.Stall, error) {
	for _, st := range s.stalls {
		if st.Email == input || st.Mobile == input {
			return &st, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) InsertSponsorship(_ context.Context, sp *domain.Sponsorship) error {
	s.sponsorships = append(s.sponsorships, *sp)
	return nil
}

func (s *memStore) ListSponsorships(context.Context) ([]domain.Sponsorship, error) {
	return s.sponsorships, nil
}

func (s *memStore) InsertContact(_ context.Context, c *domain.Contact) error {
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *memStore) ListContacts(context.Context) ([]domain.Contact, error) {
	return s.contacts, nil
}

type stubGateway struct {
	orders int
}

func (g *stubGateway) CreateOrder(_ context.Context, amountMajor int64, currency, receipt string) (*gateway.Order, error) {
	g.orders++
	return &gateway.Order{
		ID:       fmt.Sprintf("order_%d", g.orders),
		Amount:   amountMajor * 100,
		Currency: currency,
		Status:   domain.StatusCreated,
	}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()
	store := newMemStore()
	logger := observability.NewLogger()
	paymentSvc := payment.NewService(&stubGateway{}, store, store, logger, testSecret)
	formsSvc := forms.NewService(store, logger)
	router := httphandler.SetupRouter(httphandler.NewHandlers(paymentSvc, formsSvc, logger), logger)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestHealthRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTicketPaymentEndToEnd(t *testing.T) {
	srv, store := newTestServer(t)

	resp, order := postJSON(t, srv.URL+"/api/create-order", map[string]interface{}{
		"paymentFor": "ticket",
		"amount":     499,
		"name":       "A",
		"type":       "VIP",
		"eventName":  "Fest",
		"contact":    "a@x.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "order_1", order["id"])
	assert.Equal(t, float64(49900), order["amount"])
	assert.Equal(t, "INR", order["currency"])
	assert.Equal(t, "created", order["status"])

	tp := store.tickets["order_1"]
	require.NotNil(t, tp)
	assert.Regexp(t, `^TICK[0-9]{5}$`, tp.TicketID)

	sig := signature.Sign("order_1", "pay_Y", testSecret)
	resp, verify := postJSON(t, srv.URL+"/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_Y",
		"razorpay_signature":  sig,
		"paymentFor":          "ticket",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, verify["success"])
	assert.Equal(t, "Ticket payment verified successfully", verify["message"])
	assert.Equal(t, tp.TicketID, verify["ticketId"])
	assert.Equal(t, "paid", store.tickets["order_1"].Status)
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	srv, store := newTestServer(t)

	resp, _ := postJSON(t, srv.URL+"/api/create-order", map[string]interface{}{
		"paymentFor": "ticket",
		"amount":     499,
		"name":       "A",
		"eventName":  "Fest",
		"contact":    "a@x.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, verify := postJSON(t, srv.URL+"/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_Y",
		"razorpay_signature":  "deadbeef",
		"paymentFor":          "ticket",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, verify["success"])
	assert.Equal(t, "Invalid signature", verify["message"])
	assert.Equal(t, "created", store.tickets["order_1"].Status)
}

func TestVerifyPaymentUnknownOrderIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, kind := range []string{"ticket", "registration"} {
		sig := signature.Sign("order_missing", "pay_Y", testSecret)
		resp, verify := postJSON(t, srv.URL+"/api/verify-payment", map[string]interface{}{
			"razorpay_order_id":   "order_missing",
			"razorpay_payment_id": "pay_Y",
			"razorpay_signature":  sig,
			"paymentFor":          kind,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "kind=%s", kind)
		assert.Equal(t, "Order not found", verify["message"])
	}
}

func TestRegisterHappyPath(t *testing.T) {
	srv, store := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/register", map[string]interface{}{
		"name":        "Asha Rao",
		"competition": "Hackathon",
		"email":       "asha@example.com",
		"mobile":      "9876543210",
		"fee":         250,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	regID, _ := body["registrationId"].(string)
	assert.Regexp(t, `^REG[0-9]{6}$`, regID)
	require.Contains(t, body, "data")
	require.Len(t, store.registrations, 1)
	assert.Equal(t, regID, store.registrations[0].RegistrationID)
}

func TestRegisterValidationRejection(t *testing.T) {
	srv, store := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/register", map[string]interface{}{
		"name":        "A1",
		"competition": "Hackathon",
		"email":       "asha@example.com",
		"mobile":      "9876543210",
		"fee":         250,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name should contain only alphabets and spaces", body["message"])
	assert.Empty(t, store.registrations)
}

func TestTicketLookup(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := postJSON(t, srv.URL+"/api/create-order", map[string]interface{}{
		"paymentFor": "ticket",
		"amount":     499,
		"name":       "A",
		"eventName":  "Fest",
		"contact":    "a@x.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, ticket := getJSON(t, srv.URL+"/api/ticket/a@x.com")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com", ticket["contact"])

	resp, _ = getJSON(t, srv.URL+"/api/ticket/unknown@x.com")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSponsorshipRoutes(t *testing.T) {
	srv, store := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/sponsorship/register", map[string]interface{}{
		"name":        "Acme Corp",
		"competition": "Main Stage",
		"contactName": "Priya",
		"email":       "priya@acme.com",
		"mobile":      "9876543212",
		"terms":       false,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required and Terms must be accepted.", body["message"])

	resp, _ = postJSON(t, srv.URL+"/api/sponsorship", map[string]interface{}{
		"name":        "Acme Corp",
		"competition": "Main Stage",
		"email":       "lead@acme.com",
		"mobile":      "9876543213",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, store.sponsorships, 1)
}

func TestStallCreateAndLookup(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/stalls", map[string]interface{}{
		"name":        "Ravi Kumar",
		"competition": "Food Fest",
		"email":       "ravi@example.com",
		"mobile":      "9876543211",
		"fee":         "1500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stallID, _ := body["stallId"].(string)
	assert.Regexp(t, `^STALL[0-9]{6}$`, stallID)

	resp, stall := getJSON(t, srv.URL+"/api/stalls/ravi@example.com")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, stallID, stall["stallId"])
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}
