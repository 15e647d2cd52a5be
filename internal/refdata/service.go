// Package refdata serves the checkout form's reference data, putting a
// cache-aside layer in front of the backend so the country and state lists are
// not refetched on every page load.
package refdata

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Ebe-N/shopfront/internal/cache"
	"github.com/Ebe-N/shopfront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Provider is the backend reference-data contract.
type Provider interface {
	GetCountries(ctx context.Context) ([]domain.Country, error)
	GetStates(ctx context.Context, countryCode string) ([]domain.State, error)
}

// Service answers reference-data reads from cache when it can. Cache failures
// are logged and ignored; the backend remains the source of truth.
type Service struct {
	provider Provider
	cache    cache.FormsCache // optional, may be nil
	sfg      singleflight.Group
}

func NewService(provider Provider, formsCache cache.FormsCache) *Service {
	return &Service{
		provider: provider,
		cache:    formsCache,
	}
}

// Countries returns the country list, fetching it through singleflight so a
// cold cache does not multiply backend calls.
func (s *Service) Countries(ctx context.Context) ([]domain.Country, error) {
	v, err, _ := s.sfg.Do("countries", func() (interface{}, error) {
		if s.cache != nil {
			countries, errGet := s.cache.GetCountries(ctx)
			if errGet == nil {
				return countries, nil
			}
			if !errors.Is(errGet, cache.ErrCacheMiss) {
				log.Printf("cache get countries error: %v", errGet)
			}
		}

		countries, errFetch := s.provider.GetCountries(ctx)
		if errFetch != nil {
			return nil, fmt.Errorf("failed to fetch countries: %w", errFetch)
		}

		if s.cache != nil {
			go func() {
				if errSet := s.cache.SetCountries(context.Background(), countries); errSet != nil {
					log.Printf("cache set countries error: %v", errSet)
				}
			}()
		}

		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Country), nil
}

// States returns the states of one country, cached per country code.
func (s *Service) States(ctx context.Context, countryCode string) ([]domain.State, error) {
	v, err, _ := s.sfg.Do("states:"+countryCode, func() (interface{}, error) {
		if s.cache != nil {
			states, errGet := s.cache.GetStates(ctx, countryCode)
			if errGet == nil {
				return states, nil
			}
			if !errors.Is(errGet, cache.ErrCacheMiss) {
				log.Printf("cache get states error: %v", errGet)
			}
		}

		states, errFetch := s.provider.GetStates(ctx, countryCode)
		if errFetch != nil {
			return nil, fmt.Errorf("failed to fetch states for %s: %w", countryCode, errFetch)
		}

		if s.cache != nil {
			go func() {
				if errSet := s.cache.SetStates(context.Background(), countryCode, states); errSet != nil {
					log.Printf("cache set states error: %v", errSet)
				}
			}()
		}

		return states, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.State), nil
}
