package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"RiskScope/pkg/cache"
	"RiskScope/pkg/config"
)

// ReportCache stores serialized analysis reports keyed by report kind
// and ticker. It implements domain/repository.ReportCache over a
// pkg/cache Service, memory-only or layered with Redis depending on
// configuration.
type ReportCache struct {
	svc cache.Service
}

// New builds the report cache from config. With Redis enabled it uses
// a layered memory+Redis cache, otherwise memory only.
func New(cfg *config.Config) (*ReportCache, error) {
	if !cfg.MarketData.Redis.Enabled {
		return &ReportCache{svc: cache.NewMemoryCache()}, nil
	}

	host, port := splitAddr(cfg.MarketData.Redis.Addr)
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(host),
		cache.WithRedisPort(port),
		cache.WithRedisPassword(cfg.MarketData.Redis.Password),
		cache.WithRedisDB(cfg.MarketData.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("report cache: %w", err)
	}
	return &ReportCache{svc: cache.NewLayeredCache(rc)}, nil
}

// NewWithService wraps an existing cache service. Used by tests.
func NewWithService(svc cache.Service) *ReportCache {
	return &ReportCache{svc: svc}
}

// GetJSON loads the value under key into dest. The bool reports
// whether the key was present.
func (r *ReportCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	err := r.svc.Get(ctx, key, dest)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key for ttl.
func (r *ReportCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.svc.Set(ctx, key, value, ttl)
}

// Close releases the underlying cache.
func (r *ReportCache) Close() error {
	return r.svc.Close()
}

func splitAddr(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		if addr != "" {
			return addr, 6379
		}
		return "localhost", 6379
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 6379
	}
	return host, port
}
