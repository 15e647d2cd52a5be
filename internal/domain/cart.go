package domain

// CartItem is a single line in the shopping cart. The cart package owns the
// collection these live in; everything handed out is a copy.
type CartItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line contribution to the cart total.
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Totals is the derived (price, quantity) pair recomputed after every cart
// mutation and published to subscribers.
type Totals struct {
	Price    float64 `json:"total_price"`
	Quantity int     `json:"total_quantity"`
}
