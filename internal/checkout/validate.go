package checkout

import (
	"regexp"
	"strings"

	"github.com/Ebe-N/shopfront/internal/domain"
)

var (
	emailPattern        = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)
	cardNumberPattern   = regexp.MustCompile(`^[0-9]{16}$`)
	securityCodePattern = regexp.MustCompile(`^[0-9]{3}$`)
)

// ValidateForm runs the field-level checks the checkout form enforces before
// any order is assembled: required, minimum length 2, not-only-whitespace and
// the email/card patterns. The result maps field paths to messages; an empty
// map means the form passed.
func ValidateForm(form domain.CheckoutForm) ValidationError {
	errs := ValidationError{}

	validateName(errs, "customer.firstName", form.Customer.FirstName)
	validateName(errs, "customer.lastName", form.Customer.LastName)
	validateEmail(errs, "customer.email", form.Customer.Email)

	validateAddress(errs, "shippingAddress", form.ShippingAddress)
	validateAddress(errs, "billingAddress", form.BillingAddress)

	validateRequired(errs, "creditCard.cardType", form.CreditCard.CardType)
	validateName(errs, "creditCard.nameOnCard", form.CreditCard.NameOnCard)
	if !cardNumberPattern.MatchString(form.CreditCard.CardNumber) {
		errs["creditCard.cardNumber"] = "card number must be 16 digits"
	}
	if !securityCodePattern.MatchString(form.CreditCard.SecurityCode) {
		errs["creditCard.securityCode"] = "security code must be 3 digits"
	}
	if form.CreditCard.ExpirationMonth < 1 || form.CreditCard.ExpirationMonth > 12 {
		errs["creditCard.expirationMonth"] = "expiration month is required"
	}
	if form.CreditCard.ExpirationYear == 0 {
		errs["creditCard.expirationYear"] = "expiration year is required"
	}

	return errs
}

// CopyShippingToBilling mirrors the "billing address same as shipping"
// checkbox on the checkout form.
func CopyShippingToBilling(form *domain.CheckoutForm) {
	form.BillingAddress = form.ShippingAddress
}

func validateAddress(errs ValidationError, prefix string, addr domain.Address) {
	validateName(errs, prefix+".street", addr.Street)
	validateName(errs, prefix+".city", addr.City)
	validateRequired(errs, prefix+".state", addr.State)
	validateRequired(errs, prefix+".country", addr.Country)
	validateName(errs, prefix+".zipCode", addr.ZipCode)
}

// validateName enforces required + minimum length 2 + not-only-whitespace.
func validateName(errs ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "this field is required"
		return
	}
	if len(value) < 2 {
		errs[field] = "must be at least 2 characters long"
	}
}

func validateRequired(errs ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "this field is required"
	}
}

func validateEmail(errs ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "this field is required"
		return
	}
	if !emailPattern.MatchString(value) {
		errs[field] = "must be a valid email address"
	}
}
