package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Ebe-N/shopfront/internal/checkout"
	"github.com/Ebe-N/shopfront/internal/domain"
)

// PurchaseService drives one checkout attempt for a session.
type PurchaseService interface {
	PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.OrderConfirmation, error)
}

// ReferenceData serves the checkout form's country and state lists.
type ReferenceData interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	States(ctx context.Context, countryCode string) ([]domain.State, error)
}

type CheckoutHandler struct {
	service PurchaseService
	refdata ReferenceData
	timeout time.Duration
	now     func() time.Time
}

func NewCheckoutHandler(service PurchaseService, refdata ReferenceData, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		refdata: refdata,
		timeout: timeout,
		now:     time.Now,
	}
}

type PurchaseRequestDTO struct {
	Customer        domain.Customer   `json:"customer"`
	ShippingAddress domain.Address    `json:"shippingAddress"`
	BillingAddress  domain.Address    `json:"billingAddress"`
	CreditCard      domain.CreditCard `json:"creditCard"`

	// BillingSameAsShipping mirrors the checkout form checkbox; when set the
	// billing address is copied from shipping before validation.
	BillingSameAsShipping bool `json:"billingSameAsShipping"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// Purchase submits the order for the caller's session.
func (h *CheckoutHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "no shopping session")
		return
	}

	var req PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	form := domain.CheckoutForm{
		Customer:        req.Customer,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		CreditCard:      req.CreditCard,
	}
	if req.BillingSameAsShipping {
		checkout.CopyShippingToBilling(&form)
	}

	confirmation, err := h.service.PlaceOrder(ctx, sessionID, form)
	if err != nil {
		var verr checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			respondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:  verr.Error(),
				Fields: verr,
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusUnprocessableEntity, "empty_cart", checkout.ErrEmptyCart.Error())
		default:
			respondError(w, http.StatusBadGateway, "submission_failed", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, confirmation)
}

// Countries serves the country dropdown.
func (h *CheckoutHandler) Countries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	countries, err := h.refdata.Countries(ctx)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string][]domain.Country{"countries": countries})
}

// States serves the state dropdown for the selected country.
func (h *CheckoutHandler) States(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	countryCode := r.URL.Query().Get("country")
	if countryCode == "" {
		respondError(w, http.StatusBadRequest, "missing_country", "country is required")
		return
	}

	states, err := h.refdata.States(ctx, countryCode)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string][]domain.State{"states": states})
}

// CreditCardMonths serves the month dropdown for the selected expiration year.
func (h *CheckoutHandler) CreditCardMonths(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	year := now.Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_year", "year must be an integer")
			return
		}
		year = parsed
	}

	respondJSON(w, http.StatusOK, map[string][]int{"months": checkout.CreditCardMonths(year, now)})
}

// CreditCardYears serves the expiration year dropdown.
func (h *CheckoutHandler) CreditCardYears(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]int{"years": checkout.CreditCardYears(h.now())})
}
