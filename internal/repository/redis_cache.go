package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tripxplo/booking-api/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	quoteKeyPrefix = "quote:"
	packageListKey = "packages:all"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = fmt.Errorf("cache miss")

// RedisCacheRepository caches computed quotes and package reads with TTLs.
// Quotes are pure functions of their inputs, so the cache key carries the full
// input tuple and entries never need explicit invalidation.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

// QuoteKey builds the cache key for one quote computation input tuple.
func QuoteKey(packageID string, travelDate time.Time, party domain.Party) string {
	day := ""
	if !travelDate.IsZero() {
		day = travelDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%s%s:%s:a%d:e%d:c%d:r%d",
		quoteKeyPrefix, packageID, day,
		party.Adults, party.ExtraAdult, party.Children, party.RoomCount)
}

// GetQuote retrieves a cached quote. Returns nil on cache miss.
func (r *RedisCacheRepository) GetQuote(ctx context.Context, key string) (*domain.Quote, error) {
	var quote domain.Quote
	if err := r.Get(ctx, key, &quote); err != nil {
		if err == ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

// SetQuote caches a computed quote with TTL
func (r *RedisCacheRepository) SetQuote(ctx context.Context, key string, quote *domain.Quote, ttl time.Duration) error {
	return r.Set(ctx, key, quote, ttl)
}

// Get retrieves a value from cache by key with OTel tracing
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return ErrCacheMiss
		}
		span.RecordError(err)
		return fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Set stores a value in cache with TTL and OTel tracing
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Delete removes keys from cache with OTel tracing
func (r *RedisCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}

// SetPackageList caches the full package list
func (r *RedisCacheRepository) SetPackageList(ctx context.Context, packages []*domain.Package, ttl time.Duration) error {
	return r.Set(ctx, packageListKey, packages, ttl)
}

// GetPackageList retrieves the cached package list. Returns nil on miss.
func (r *RedisCacheRepository) GetPackageList(ctx context.Context) ([]*domain.Package, error) {
	var packages []*domain.Package
	if err := r.Get(ctx, packageListKey, &packages); err != nil {
		if err == ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}
	return packages, nil
}
