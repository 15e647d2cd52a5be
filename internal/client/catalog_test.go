package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestGetProductsByCategory(t *testing.T) {
	server := newBackend(t, map[string]string{
		"/api/products/search/findByCategoryId": `{
			"_embedded": {
				"products": [
					{"id": 1, "name": "Laptop", "unitPrice": 1299.99, "imageUrl": "img/laptop.png"},
					{"id": 2, "name": "Mouse", "unitPrice": 29.99, "imageUrl": "img/mouse.png"}
				]
			}
		}`,
	})
	defer server.Close()

	sut := NewCatalogClient(server.URL, server.Client())
	products, err := sut.GetProductsByCategory(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, 1299.99, products[0].UnitPrice)
}

func TestSearchProducts_EscapesKeyword(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_embedded": {"products": []}}`))
	}))
	defer server.Close()

	sut := NewCatalogClient(server.URL, server.Client())
	products, err := sut.SearchProducts(context.Background(), "blue mouse")
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, "blue mouse", gotQuery)
}

func TestGetProduct(t *testing.T) {
	server := newBackend(t, map[string]string{
		"/api/products/7": `{"id": 7, "name": "Keyboard", "unitPrice": 59.99}`,
	})
	defer server.Close()

	sut := NewCatalogClient(server.URL, server.Client())
	product, err := sut.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "Keyboard", product.Name)
}

func TestGetProduct_BackendError(t *testing.T) {
	server := newBackend(t, map[string]string{})
	defer server.Close()

	sut := NewCatalogClient(server.URL, server.Client())
	_, err := sut.GetProduct(context.Background(), 7)
	require.ErrorContains(t, err, "404")
}

func TestGetProductCategories(t *testing.T) {
	server := newBackend(t, map[string]string{
		"/api/product-category": `{
			"_embedded": {
				"productCategory": [
					{"id": 1, "categoryName": "Books"},
					{"id": 2, "categoryName": "Coffee Mugs"}
				]
			}
		}`,
	})
	defer server.Close()

	sut := NewCatalogClient(server.URL, server.Client())
	categories, err := sut.GetProductCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Books", categories[0].CategoryName)
}
