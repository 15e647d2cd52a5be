package domain

// Product is a catalog record fetched from the backend.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductCategory groups products for the category menu.
type ProductCategory struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
}
