package cart

import (
	"sync"
	"testing"

	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laptop() domain.CartItem {
	return domain.CartItem{
		ID:        "P1",
		Name:      "Laptop",
		ImageURL:  "https://example.com/laptop.jpg",
		UnitPrice: 10.00,
	}
}

func mouse() domain.CartItem {
	return domain.CartItem{
		ID:        "P2",
		Name:      "Mouse",
		ImageURL:  "https://example.com/mouse.jpg",
		UnitPrice: 29.99,
	}
}

func TestAddItem_NewProduct(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "P1", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, sut.Totals())
}

func TestAddItem_ExistingProductIncrementsQuantity(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())

	// Re-adding the same product must not create a duplicate entry.
	again := laptop()
	again.Name = "some other display name"
	sut.AddItem(again)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].Name, "candidate fields are ignored on merge")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, domain.Totals{Price: 20.00, Quantity: 2}, sut.Totals())
}

func TestAddDecrementScenario(t *testing.T) {
	sut := New()

	sut.AddItem(laptop())
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, sut.Totals())

	sut.AddItem(laptop())
	assert.Equal(t, domain.Totals{Price: 20.00, Quantity: 2}, sut.Totals())

	require.NoError(t, sut.DecrementQuantity("P1"))
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, sut.Totals())

	require.NoError(t, sut.DecrementQuantity("P1"))
	assert.Empty(t, sut.Items())
	assert.Equal(t, domain.Totals{}, sut.Totals())
}

func TestDecrementQuantity_MissingItem(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())

	err := sut.DecrementQuantity("nope")
	require.ErrorIs(t, err, ErrItemNotFound)

	// Failed decrement must not disturb state or totals.
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, sut.Totals())
}

func TestRemoveItem(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())
	sut.AddItem(mouse())
	sut.AddItem(mouse())

	sut.RemoveItem("P2")

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "P1", items[0].ID)
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, sut.Totals())

	// Removing an absent product is idempotent.
	sut.RemoveItem("P2")
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, sut.Totals())
}

func TestClear(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())
	sut.AddItem(mouse())

	sut.Clear()

	assert.Empty(t, sut.Items())
	assert.Equal(t, domain.Totals{}, sut.Totals())
}

func TestTotals_MixedItems(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())
	sut.AddItem(mouse())
	sut.AddItem(mouse())

	totals := sut.Totals()
	assert.InDelta(t, 10.00+2*29.99, totals.Price, 1e-9)
	assert.Equal(t, 3, totals.Quantity)
}

func TestItems_ReturnsCopy(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())

	items := sut.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, sut.Items()[0].Quantity, "mutating the returned slice must not touch the cart")
}

func TestSubscribe_ReceivesCurrentTotalsImmediately(t *testing.T) {
	sut := New()
	sut.AddItem(laptop())

	var mu sync.Mutex
	var got []domain.Totals
	unsubscribe := sut.Subscribe(func(totals domain.Totals) {
		mu.Lock()
		got = append(got, totals)
		mu.Unlock()
	})
	defer unsubscribe()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1, "late subscriber receives the last known value")
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, got[0])
}

func TestSubscribe_OneNotificationPerMutation(t *testing.T) {
	sut := New()

	var mu sync.Mutex
	var got []domain.Totals
	unsubscribe := sut.Subscribe(func(totals domain.Totals) {
		mu.Lock()
		got = append(got, totals)
		mu.Unlock()
	})
	defer unsubscribe()

	sut.AddItem(laptop())
	sut.AddItem(laptop())
	require.NoError(t, sut.DecrementQuantity("P1"))
	sut.Clear()

	mu.Lock()
	defer mu.Unlock()
	// Initial replay plus one batch notification per mutation.
	require.Len(t, got, 5)
	assert.Equal(t, domain.Totals{}, got[0])
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, got[1])
	assert.Equal(t, domain.Totals{Price: 20.00, Quantity: 2}, got[2])
	assert.Equal(t, domain.Totals{Price: 10.00, Quantity: 1}, got[3])
	assert.Equal(t, domain.Totals{}, got[4])
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	sut := New()

	calls := 0
	unsubscribe := sut.Subscribe(func(domain.Totals) { calls++ })
	unsubscribe()

	sut.AddItem(laptop())
	assert.Equal(t, 1, calls, "only the initial replay was delivered")
}
