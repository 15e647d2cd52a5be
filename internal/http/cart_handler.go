package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ebe-N/shopfront/internal/cart"
	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CartHandler exposes the shopping cart over HTTP. Each request is routed to
// the cart of the caller's shopping session.
type CartHandler struct {
	sessions *cart.Sessions
}

func NewCartHandler(sessions *cart.Sessions) *CartHandler {
	return &CartHandler{sessions: sessions}
}

type AddItemRequestDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	UnitPrice float64 `json:"unit_price"`
}

type CartResponse struct {
	Items         []domain.CartItem `json:"items"`
	TotalPrice    float64           `json:"total_price"`
	TotalQuantity int               `json:"total_quantity"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionCart, ok := h.sessionCart(w, r)
	if !ok {
		return
	}
	respondCart(w, http.StatusOK, sessionCart)
}

// AddItem adds a product to the cart, or increments its quantity when it is
// already there.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionCart, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.UnitPrice < 0 {
		respondError(w, http.StatusBadRequest, "invalid_unit_price", "unit_price must not be negative")
		return
	}

	sessionCart.AddItem(domain.CartItem{
		ID:        req.ProductID,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		UnitPrice: req.UnitPrice,
	})

	respondCart(w, http.StatusCreated, sessionCart)
}

// DecrementItem lowers an item's quantity by one, dropping the line at zero.
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	sessionCart, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "product_id")
	if err := sessionCart.DecrementQuantity(productID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "item is not in the cart")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondCart(w, http.StatusOK, sessionCart)
}

// RemoveItem drops an item entirely. Removing an absent item succeeds.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionCart, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	sessionCart.RemoveItem(chi.URLParam(r, "product_id"))
	respondCart(w, http.StatusOK, sessionCart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionCart, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	sessionCart.Clear()
	respondCart(w, http.StatusOK, sessionCart)
}

func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Cart, bool) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "no shopping session")
		return nil, false
	}
	return h.sessions.Get(sessionID), true
}

func respondCart(w http.ResponseWriter, status int, sessionCart *cart.Cart) {
	totals := sessionCart.Totals()
	respondJSON(w, status, CartResponse{
		Items:         sessionCart.Items(),
		TotalPrice:    totals.Price,
		TotalQuantity: totals.Quantity,
	})
}
