package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
environment: test
server:
  port: 8080
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
metrics:
  enabled: true
  path: /metrics
logging:
  level: debug
  pretty: false
market_data:
  base_url: http://localhost:9100
  timeout: 3s
  retries: 2
  cache_ttl:
    risk: 10m
    scenario: 10m
    review: 5m
  redis:
    enabled: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "test" {
		t.Fatalf("unexpected environment %s", cfg.Environment)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.MarketData.CacheTTL.Risk != 10*time.Minute {
		t.Fatalf("unexpected risk ttl %v", cfg.MarketData.CacheTTL.Risk)
	}
	if cfg.MarketData.Retries != 2 {
		t.Fatalf("unexpected retries %d", cfg.MarketData.Retries)
	}
}

func TestLoadMissingBaseURL(t *testing.T) {
	yaml := `
environment: test
server:
  port: 8080
market_data:
  base_url: ""
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("MARKET_DATA_URL", "http://override:9200")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MarketData.BaseURL != "http://override:9200" {
		t.Fatalf("expected env override, got %s", cfg.MarketData.BaseURL)
	}
	if !cfg.MarketData.Redis.Enabled || cfg.MarketData.Redis.Addr != "redis.internal:6379" {
		t.Fatalf("expected redis enabled via env")
	}
}
