package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/forms"
	"github.com/vishwasri/techfest-backend/internal/observability"
	"github.com/vishwasri/techfest-backend/internal/payment"
)

const welcomeMessage = "Welcome to Vishwasri Technologies Competition API"

type Handlers struct {
	payments *payment.Service
	forms    *forms.Service
	logger   observability.Logger
}

func NewHandlers(payments *payment.Service, formsSvc *forms.Service, logger observability.Logger) *Handlers {
	return &Handlers{
		payments: payments,
		forms:    formsSvc,
		logger:   logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// serverError hides the cause from the client and logs it server-side.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	requestLogger(r, h.logger).WithError(err).WithField("path", r.URL.Path).Error("request failed")
	writeMessage(w, http.StatusInternalServerError, "Server error. Please try again later.")
}

func decode(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(welcomeMessage))
}

// ─── Payment core ───

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req payment.CreateOrderRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.payments.CreateOrder(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		requestLogger(r, h.logger).WithError(err).Error("order creation failed")
		writeMessage(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handlers) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req payment.VerifyRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.payments.VerifyPayment(r.Context(), req)
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid signature",
		})
		return
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Order not found",
		})
		return
	case errors.Is(err, domain.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.serverError(w, r, err)
		return
	}

	if result.Kind == domain.PaymentForTicket {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"message":  "Ticket payment verified successfully",
			"ticketId": result.TicketID,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Registration payment verified successfully",
	})
}

func (h *Handlers) TicketLookup(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "input")
	ticket, err := h.payments.FindTicket(r.Context(), input)
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Ticket not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// ─── Form ingest ───

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req forms.RegistrationRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reg, err := h.forms.CreateRegistration(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        "Registration successful!",
		"registrationId": reg.RegistrationID,
		"data":           reg,
	})
}

func (h *Handlers) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.forms.ListRegistrations(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error fetching registrations")
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

func (h *Handlers) RegistrationLookup(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "input")
	reg, err := h.forms.FindRegistration(r.Context(), input)
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Registration not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *Handlers) CreateStall(w http.ResponseWriter, r *http.Request) {
	var req forms.StallRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stall, err := h.forms.CreateStall(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Stall registered successfully",
		"stallId": stall.StallID,
		"data":    stall,
	})
}

func (h *Handlers) ListStalls(w http.ResponseWriter, r *http.Request) {
	stalls, err := h.forms.ListStalls(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error fetching stalls")
		return
	}
	writeJSON(w, http.StatusOK, stalls)
}

func (h *Handlers) StallLookup(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "input")
	stall, err := h.forms.FindStall(r.Context(), input)
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Stall not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stall)
}

func (h *Handlers) CreateSponsorship(w http.ResponseWriter, r *http.Request) {
	var req forms.SponsorshipRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.forms.CreateSponsorship(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Sponsorship submitted successfully!")
}

func (h *Handlers) RegisterSponsorship(w http.ResponseWriter, r *http.Request) {
	var req forms.SponsorshipRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.forms.RegisterSponsorship(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Sponsorship registration successful!")
}

func (h *Handlers) ListSponsorships(w http.ResponseWriter, r *http.Request) {
	sponsorships, err := h.forms.ListSponsorships(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error while fetching sponsorships.")
		return
	}
	writeJSON(w, http.StatusOK, sponsorships)
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req forms.ContactRequest
	if err := decode(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.forms.CreateContact(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Message received!")
}

func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.forms.ListContacts(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}
