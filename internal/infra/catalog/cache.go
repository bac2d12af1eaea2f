package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"repair-storefront/internal/domain/quote"

	"github.com/go-redis/redis/v8"
)

// Source is what the cache wraps; *Client satisfies it.
type Source interface {
	Brands(ctx context.Context) ([]Brand, error)
	Devices(ctx context.Context, brandID string) ([]Device, error)
	Services(ctx context.Context, deviceID string) ([]quote.ServiceItem, error)
}

// CachedGateway fronts the catalog client with a Redis TTL cache. The cache
// is best-effort: any Redis failure falls through to the upstream, and a nil
// client disables caching entirely. Staleness up to the TTL is acceptable
// because catalog snapshots are eventually consistent anyway.
type CachedGateway struct {
	source Source
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGateway(source Source, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedGateway {
	return &CachedGateway{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (g *CachedGateway) Brands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if g.lookup(ctx, "catalog:brands", &brands) {
		return brands, nil
	}

	brands, err := g.source.Brands(ctx)
	if err != nil {
		return nil, err
	}
	g.store(ctx, "catalog:brands", brands)
	return brands, nil
}

func (g *CachedGateway) Devices(ctx context.Context, brandID string) ([]Device, error) {
	key := "catalog:devices:" + brandID

	var devices []Device
	if g.lookup(ctx, key, &devices) {
		return devices, nil
	}

	devices, err := g.source.Devices(ctx, brandID)
	if err != nil {
		return nil, err
	}
	g.store(ctx, key, devices)
	return devices, nil
}

func (g *CachedGateway) Services(ctx context.Context, deviceID string) ([]quote.ServiceItem, error) {
	key := "catalog:services:" + deviceID

	var items []quote.ServiceItem
	if g.lookup(ctx, key, &items) {
		return items, nil
	}

	items, err := g.source.Services(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	g.store(ctx, key, items)
	return items, nil
}

func (g *CachedGateway) lookup(ctx context.Context, key string, out any) bool {
	if g.rdb == nil {
		return false
	}

	raw, err := g.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			g.logger.Debug("catalog cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		g.logger.Debug("catalog cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (g *CachedGateway) store(ctx context.Context, key string, value any) {
	if g.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := g.rdb.Set(ctx, key, raw, g.ttl).Err(); err != nil {
		g.logger.Debug("catalog cache write failed", "key", key, "error", err)
	}
}
