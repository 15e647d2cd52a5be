package cart

import (
	"errors"
	"sync"

	"github.com/Ebe-N/shopfront/internal/domain"
)

// ErrItemNotFound is returned when a quantity change targets a product that is
// not in the cart.
var ErrItemNotFound = errors.New("item not found in cart")

// Observer receives the new totals after every cart mutation.
type Observer func(domain.Totals)

// Cart owns the line-item collection for one shopping session and keeps the
// derived totals consistent with it. Totals are recomputed synchronously as
// the last step of every mutation and published to all subscribers in one
// batch. Observers only ever see copies; the live slice never leaves the cart.
type Cart struct {
	mu        sync.RWMutex
	items     []domain.CartItem
	totals    domain.Totals
	subs      map[int]Observer
	nextSubID int
}

func New() *Cart {
	return &Cart{
		subs: make(map[int]Observer),
	}
}

// AddItem adds a product to the cart. If the product is already present its
// quantity is incremented by one and the candidate's other fields are ignored;
// otherwise the item is appended with quantity 1. AddItem always succeeds, so
// it doubles as the increment operation.
func (c *Cart) AddItem(item domain.CartItem) {
	c.mu.Lock()

	found := false
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		c.items = append(c.items, item)
	}

	c.recomputeAndPublishLocked()
}

// DecrementQuantity lowers the quantity of the matching item by one, removing
// the item entirely when it reaches zero.
func (c *Cart) DecrementQuantity(productID string) error {
	c.mu.Lock()

	idx := -1
	for i := range c.items {
		if c.items[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.mu.Unlock()
		return ErrItemNotFound
	}

	c.items[idx].Quantity--
	if c.items[idx].Quantity == 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}

	c.recomputeAndPublishLocked()
	return nil
}

// RemoveItem drops the matching item regardless of quantity. Removing an
// absent product is a no-op, so the operation is idempotent.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()

	idx := -1
	for i := range c.items {
		if c.items[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.mu.Unlock()
		return
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.recomputeAndPublishLocked()
}

// Clear empties the cart and republishes zero totals.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.recomputeAndPublishLocked()
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Totals returns the current derived totals.
func (c *Cart) Totals() domain.Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totals
}

// Subscribe registers an observer for totals updates and returns its
// unsubscribe function. The observer immediately receives the current totals,
// so late subscribers are never stale. Observers must not call back into the
// cart from the callback.
func (c *Cart) Subscribe(obs Observer) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = obs
	totals := c.totals
	c.mu.Unlock()

	obs(totals)

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// recomputeAndPublishLocked folds the items into fresh totals and fans them
// out to every subscriber. It must be entered with the write lock held; the
// lock is released before observers run.
func (c *Cart) recomputeAndPublishLocked() {
	var totals domain.Totals
	for _, item := range c.items {
		totals.Price += item.Subtotal()
		totals.Quantity += item.Quantity
	}
	c.totals = totals

	observers := make([]Observer, 0, len(c.subs))
	for _, obs := range c.subs {
		observers = append(observers, obs)
	}
	c.mu.Unlock()

	for _, obs := range observers {
		obs(totals)
	}
}
