package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps reference data in Redis with a jittered TTL so entries for
// different keys do not all expire in the same instant.
type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: time.Hour,
	}
}

func (r *RedisCache) GetCountries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	if err := r.get(ctx, countriesKey(), &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *RedisCache) SetCountries(ctx context.Context, countries []domain.Country) error {
	return r.set(ctx, countriesKey(), countries)
}

func (r *RedisCache) GetStates(ctx context.Context, countryCode string) ([]domain.State, error) {
	var states []domain.State
	if err := r.get(ctx, statesKey(countryCode), &states); err != nil {
		return nil, err
	}
	return states, nil
}

func (r *RedisCache) SetStates(ctx context.Context, countryCode string, states []domain.State) error {
	return r.set(ctx, statesKey(countryCode), states)
}

func (r *RedisCache) get(ctx context.Context, key string, out interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal cached value failed: %w", err)
	}
	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(10)) * time.Minute
	if err := r.client.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func countriesKey() string {
	return "refdata:countries"
}

func statesKey(countryCode string) string {
	return fmt.Sprintf("refdata:states:%s", countryCode)
}
