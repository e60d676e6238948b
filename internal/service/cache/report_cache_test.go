package cache

import (
	"context"
	"testing"
	"time"

	pkgcache "RiskScope/pkg/cache"
)

type sample struct {
	Ticker string  `json:"ticker"`
	Score  float64 `json:"score"`
}

func TestReportCacheRoundTrip(t *testing.T) {
	rc := NewWithService(pkgcache.NewMemoryCache())
	defer rc.Close()

	ctx := context.Background()
	if err := rc.SetJSON(ctx, "risk:ACME", &sample{Ticker: "ACME", Score: 4.2}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got sample
	ok, err := rc.GetJSON(ctx, "risk:ACME", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected hit")
	}
	if got.Ticker != "ACME" || got.Score != 4.2 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestReportCacheMiss(t *testing.T) {
	rc := NewWithService(pkgcache.NewMemoryCache())
	defer rc.Close()

	var got sample
	ok, err := rc.GetJSON(context.Background(), "risk:NOPE", &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestSplitAddr(t *testing.T) {
	host, port := splitAddr("redis.internal:6380")
	if host != "redis.internal" || port != 6380 {
		t.Fatalf("unexpected %s:%d", host, port)
	}
	host, port = splitAddr("")
	if host != "localhost" || port != 6379 {
		t.Fatalf("unexpected default %s:%d", host, port)
	}
	host, port = splitAddr("redis.internal")
	if host != "redis.internal" || port != 6379 {
		t.Fatalf("unexpected bare host %s:%d", host, port)
	}
}
