package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Ebe-N/shopfront/internal/domain"
)

// OrderClient submits purchases to the backend checkout endpoint. One network
// call per attempt; failures are surfaced verbatim, never retried here.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderClient(baseURL string, httpClient *http.Client) *OrderClient {
	return &OrderClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// PlaceOrder POSTs the purchase and returns the order tracking number the
// backend assigned.
func (c *OrderClient) PlaceOrder(ctx context.Context, purchase *domain.Purchase) (*domain.OrderConfirmation, error) {
	payload, err := json.Marshal(purchase)
	if err != nil {
		return nil, fmt.Errorf("marshal purchase failed: %w", err)
	}

	purchaseURL := c.baseURL + "/api/checkout/purchase"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, purchaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("purchase request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend rejected purchase with %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var confirmation domain.OrderConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode order confirmation: %w", err)
	}
	if confirmation.OrderTrackingNumber == "" {
		return nil, fmt.Errorf("backend returned no order tracking number")
	}

	return &confirmation, nil
}
