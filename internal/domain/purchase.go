package domain

// Customer, Address and CreditCard mirror the checkout form groups. JSON tags
// match the backend's purchase payload.

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

type CreditCard struct {
	CardType        string `json:"cardType"`
	NameOnCard      string `json:"nameOnCard"`
	CardNumber      string `json:"cardNumber"`
	SecurityCode    string `json:"securityCode"`
	ExpirationMonth int    `json:"expirationMonth"`
	ExpirationYear  int    `json:"expirationYear"`
}

// CheckoutForm is the full set of values collected by the checkout form. It
// must pass validation before an order is assembled from it.
type CheckoutForm struct {
	Customer        Customer   `json:"customer"`
	ShippingAddress Address    `json:"shippingAddress"`
	BillingAddress  Address    `json:"billingAddress"`
	CreditCard      CreditCard `json:"creditCard"`
}

// OrderItem is a snapshot of a CartItem taken at order-assembly time.
// It is deliberately decoupled from the live cart so later mutations cannot
// alter an in-flight order.
type OrderItem struct {
	ImageURL  string  `json:"imageUrl"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ProductID string  `json:"productId"`
}

// NewOrderItem copies the order-relevant fields out of a cart item.
func NewOrderItem(item CartItem) OrderItem {
	return OrderItem{
		ImageURL:  item.ImageURL,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
		ProductID: item.ID,
	}
}

// Order carries the cart totals copied at submission time.
type Order struct {
	TotalPrice    float64 `json:"totalPrice"`
	TotalQuantity int     `json:"totalQuantity"`
}

// Purchase is the submission payload for one checkout attempt. Constructed
// once, never mutated afterwards, discarded once submission resolves.
type Purchase struct {
	Customer        Customer    `json:"customer"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	Order           Order       `json:"order"`
	OrderItems      []OrderItem `json:"orderItems"`
}

// OrderConfirmation is the backend's response to a placed order.
type OrderConfirmation struct {
	OrderTrackingNumber string `json:"orderTrackingNumber"`
}
