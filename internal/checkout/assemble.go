package checkout

import "github.com/Ebe-N/shopfront/internal/domain"

// BuildPurchase assembles a submission-ready purchase from validated form data
// and the current cart snapshot. The totals are copied and every cart item is
// mapped to an independent order-item snapshot, so later cart mutations cannot
// alter the result. Pure transformation; the caller is responsible for
// validating the form first.
func BuildPurchase(form domain.CheckoutForm, items []domain.CartItem, totals domain.Totals) (*domain.Purchase, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = domain.NewOrderItem(item)
	}

	return &domain.Purchase{
		Customer:        form.Customer,
		ShippingAddress: form.ShippingAddress,
		BillingAddress:  form.BillingAddress,
		Order: domain.Order{
			TotalPrice:    totals.Price,
			TotalQuantity: totals.Quantity,
		},
		OrderItems: orderItems,
	}, nil
}
