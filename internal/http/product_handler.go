package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CatalogProvider is what the product handler needs from the backend catalog.
// Consumers define this interface, not the client implementation.
type CatalogProvider interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	GetProductCategories(ctx context.Context) ([]domain.ProductCategory, error)
}

type ProductHandler struct {
	catalog CatalogProvider
	timeout time.Duration
}

func NewProductHandler(catalog CatalogProvider, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type CategoriesResponse struct {
	Categories []domain.ProductCategory `json:"categories"`
}

// List serves the product list for one category. The default category is 1,
// matching the storefront landing page.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categoryID := int64(1)
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_category", "category must be a positive integer")
			return
		}
		categoryID = parsed
	}

	products, err := h.catalog.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_error", err.Error())
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

// Search serves keyword search over product names.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if keyword == "" {
		respondError(w, http.StatusBadRequest, "missing_keyword", "keyword is required")
		return
	}

	products, err := h.catalog.SearchProducts(ctx, keyword)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_error", err.Error())
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

// GetByID serves one product's details.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Categories serves the category menu.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.GetProductCategories(ctx)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_error", err.Error())
		return
	}
	if categories == nil {
		categories = []domain.ProductCategory{}
	}

	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
