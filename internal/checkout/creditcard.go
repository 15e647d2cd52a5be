package checkout

import "time"

// yearsAhead is how far into the future the expiration-year list runs.
const yearsAhead = 10

// CreditCardMonths returns the valid expiration months for the given year.
// When the selected year is the current year the list starts at the current
// month, otherwise at January; it always ends at December.
func CreditCardMonths(expirationYear int, now time.Time) []int {
	start := 1
	if expirationYear == now.Year() {
		start = int(now.Month())
	}

	months := make([]int, 0, 12-start+1)
	for m := start; m <= 12; m++ {
		months = append(months, m)
	}
	return months
}

// CreditCardYears returns the current year and the ten years after it.
func CreditCardYears(now time.Time) []int {
	start := now.Year()
	years := make([]int, 0, yearsAhead+1)
	for y := start; y <= start+yearsAhead; y++ {
		years = append(years, y)
	}
	return years
}
