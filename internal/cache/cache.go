package cache

import (
	"context"
	"errors"

	"github.com/Ebe-N/shopfront/internal/domain"
)

// ErrCacheMiss is returned when a key is not in the cache.
var ErrCacheMiss = errors.New("cache miss")

// FormsCache caches the checkout reference data. Misses return ErrCacheMiss;
// any other error is a cache failure the caller may log and ignore.
type FormsCache interface {
	GetCountries(ctx context.Context) ([]domain.Country, error)
	SetCountries(ctx context.Context, countries []domain.Country) error
	GetStates(ctx context.Context, countryCode string) ([]domain.State, error)
	SetStates(ctx context.Context, countryCode string, states []domain.State) error
}
