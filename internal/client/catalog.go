package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Ebe-N/shopfront/internal/domain"
)

// CatalogClient fetches product records from the backend catalog API.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogClient(baseURL string, httpClient *http.Client) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type productsEnvelope struct {
	Embedded struct {
		Products []domain.Product `json:"products"`
	} `json:"_embedded"`
}

type categoriesEnvelope struct {
	Embedded struct {
		ProductCategory []domain.ProductCategory `json:"productCategory"`
	} `json:"_embedded"`
}

// GetProduct fetches a single product by id.
func (c *CatalogClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	productURL := fmt.Sprintf("%s/api/products/%d", c.baseURL, id)
	if err := getJSON(ctx, c.httpClient, productURL, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByCategory lists the products in one category.
func (c *CatalogClient) GetProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	searchURL := fmt.Sprintf("%s/api/products/search/findByCategoryId?id=%d", c.baseURL, categoryID)
	return c.getProducts(ctx, searchURL)
}

// SearchProducts lists products whose name contains the keyword.
func (c *CatalogClient) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	searchURL := fmt.Sprintf("%s/api/products/search/findByNameContaining?name=%s", c.baseURL, url.QueryEscape(keyword))
	return c.getProducts(ctx, searchURL)
}

// GetProductCategories lists all categories for the storefront menu.
func (c *CatalogClient) GetProductCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	var envelope categoriesEnvelope
	if err := getJSON(ctx, c.httpClient, c.baseURL+"/api/product-category", &envelope); err != nil {
		return nil, err
	}
	return envelope.Embedded.ProductCategory, nil
}

func (c *CatalogClient) getProducts(ctx context.Context, searchURL string) ([]domain.Product, error) {
	var envelope productsEnvelope
	if err := getJSON(ctx, c.httpClient, searchURL, &envelope); err != nil {
		return nil, err
	}
	return envelope.Embedded.Products, nil
}
