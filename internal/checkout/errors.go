package checkout

import "errors"

// ErrEmptyCart rejects order assembly when the session cart has no items.
var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// ValidationError carries the field-level failures that blocked a submission,
// keyed by form field path (e.g. "customer.email").
type ValidationError map[string]string

func (v ValidationError) Error() string {
	return "checkout form validation failed"
}
