// internal/cache/dashboard.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"opsdash/internal/config"
	"opsdash/internal/domain"
)

const (
	dashboardKeyPrefix  = "dashboard:snapshot"
	scanBatchSize       = 100
	defaultDashboardTTL = time.Minute
)

// DashboardCache is a short-lived cache for assembled dashboard
// payloads, keyed by timeframe. Kernel results are always recomputed
// from a fresh snapshot; the cache only amortizes refresh bursts from
// many dashboard clients.
type DashboardCache interface {
	Get(ctx context.Context, timeframe domain.Timeframe) (*domain.DashboardSnapshot, bool, error)
	Set(ctx context.Context, timeframe domain.Timeframe, snapshot *domain.DashboardSnapshot) error
	InvalidateAll(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) Get(ctx context.Context, timeframe domain.Timeframe) (*domain.DashboardSnapshot, bool, error) {
	key := buildDashboardKey(timeframe)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot domain.DashboardSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode dashboard cache: %w", err)
	}

	return &snapshot, true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, timeframe domain.Timeframe, snapshot *domain.DashboardSnapshot) error {
	key := buildDashboardKey(timeframe)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisDashboardCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, dashboardKeyPrefix, scanBatchSize)
}

func (n *noopDashboardCache) Get(ctx context.Context, timeframe domain.Timeframe) (*domain.DashboardSnapshot, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) Set(ctx context.Context, timeframe domain.Timeframe, snapshot *domain.DashboardSnapshot) error {
	return nil
}

func (n *noopDashboardCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildDashboardKey(timeframe domain.Timeframe) string {
	return fmt.Sprintf("%s:%s", dashboardKeyPrefix, timeframe)
}
