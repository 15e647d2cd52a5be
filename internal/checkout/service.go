package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Ebe-N/shopfront/internal/cart"
	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/Ebe-N/shopfront/internal/events"
)

// OrderPlacer is the external submission port: one network call, no retry
// policy. Failures are surfaced once to the caller.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, purchase *domain.Purchase) (*domain.OrderConfirmation, error)
}

// Service drives one checkout attempt end to end: validate the form, snapshot
// the session cart, assemble the purchase, submit it.
type Service struct {
	sessions *cart.Sessions
	orders   OrderPlacer
	events   events.Publisher // optional, may be nil
}

func NewService(sessions *cart.Sessions, orders OrderPlacer, events events.Publisher) *Service {
	return &Service{
		sessions: sessions,
		orders:   orders,
		events:   events,
	}
}

// PlaceOrder submits an order for the given session. On success the session
// cart is cleared and the tracking number returned; on failure the cart is
// left untouched so the shopper can retry. A ValidationError or ErrEmptyCart
// means no request was built at all.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.OrderConfirmation, error) {
	if errs := ValidateForm(form); len(errs) > 0 {
		return nil, errs
	}

	sessionCart := s.sessions.Get(sessionID)

	purchase, err := BuildPurchase(form, sessionCart.Items(), sessionCart.Totals())
	if err != nil {
		return nil, err
	}

	confirmation, err := s.orders.PlaceOrder(ctx, purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	sessionCart.Clear()
	s.publishOrderPlaced(sessionID, purchase, confirmation)

	return confirmation, nil
}

// publishOrderPlaced emits the order-placed event. Publish failures are
// logged, never surfaced to the shopper.
func (s *Service) publishOrderPlaced(sessionID string, purchase *domain.Purchase, confirmation *domain.OrderConfirmation) {
	if s.events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := events.NewOrderPlacedEvent(sessionID, purchase, confirmation.OrderTrackingNumber)
	if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
		log.Printf("failed to publish order placed event for %s: %v", confirmation.OrderTrackingNumber, err)
	}
}
