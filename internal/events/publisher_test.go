package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderPlacedEvent(t *testing.T) {
	purchase := &domain.Purchase{
		Order: domain.Order{TotalPrice: 20.00, TotalQuantity: 2},
		OrderItems: []domain.OrderItem{
			{ImageURL: "img/laptop.png", UnitPrice: 10.00, Quantity: 2, ProductID: "P1"},
		},
	}

	event := NewOrderPlacedEvent("s1", purchase, "TRACK-123")

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "TRACK-123", event.OrderTrackingNumber)
	assert.Equal(t, "s1", event.SessionID)
	assert.Equal(t, 20.00, event.TotalPrice)
	assert.Equal(t, 2, event.TotalQuantity)
	require.Len(t, event.Items, 1)
	assert.WithinDuration(t, time.Now(), event.PlacedAt, time.Second)
}

func TestOrderPlacedEvent_JSONShape(t *testing.T) {
	event := &OrderPlacedEvent{
		EventID:             "e1",
		OrderTrackingNumber: "TRACK-123",
		SessionID:           "s1",
		TotalPrice:          20.00,
		TotalQuantity:       2,
		Items: []domain.OrderItem{
			{ImageURL: "img/laptop.png", UnitPrice: 10.00, Quantity: 2, ProductID: "P1"},
		},
		PlacedAt: time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "TRACK-123", payload["order_tracking_number"])
	assert.Equal(t, "s1", payload["session_id"])

	items, ok := payload["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "P1", item["productId"])
}
