package domain

// Country is a reference-data record for the checkout address forms.
type Country struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// State belongs to exactly one country; states are always fetched by country
// code.
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
