package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"RiskScope/pkg/config"
	"RiskScope/pkg/logger"
)

func testConfig(baseURL string, retries int) *config.Config {
	cfg := &config.Config{}
	cfg.MarketData.BaseURL = baseURL
	cfg.MarketData.APIKey = "test-key"
	cfg.MarketData.Timeout = 2 * time.Second
	cfg.MarketData.Retries = retries
	return cfg
}

func testLogger() *logger.Logger {
	l, _ := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stdout"})
	return l
}

func TestFundamentalsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/fundamentals" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("ticker"); got != "ACME" {
			t.Fatalf("unexpected ticker %s", got)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Fatalf("missing api key header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"raw_financials": {"ticker": "ACME", "revenue": 1000, "net_income": 150},
			"kpis": {"net_profit_margin": 15.0, "debt_to_equity": 0.5},
			"data_quality_notes": ["fcf estimated"]
		}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, 1), testLogger())
	f, err := c.Fundamentals(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Raw.Revenue == nil || *f.Raw.Revenue != 1000 {
		t.Fatalf("unexpected revenue %v", f.Raw.Revenue)
	}
	if f.KPIs.DebtToEquity == nil || *f.KPIs.DebtToEquity != 0.5 {
		t.Fatalf("unexpected d/e %v", f.KPIs.DebtToEquity)
	}
	if f.Raw.MarketCap != nil {
		t.Fatalf("expected absent field to stay nil")
	}
	if len(f.DataQualityNotes) != 1 {
		t.Fatalf("unexpected notes %v", f.DataQualityNotes)
	}
}

func TestEarningsHistoryNullYears(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker": "ACME", "net_income_history": [100, null, 121]}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, 1), testLogger())
	series, err := c.EarningsHistory(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(series))
	}
	if series[1] != nil {
		t.Fatalf("expected nil for null year")
	}
	if series[2] == nil || *series[2] != 121 {
		t.Fatalf("unexpected value %v", series[2])
	}
}

func TestRetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"expected_movement": 3.5, "confidence": 0.7, "supported": true}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, 3), testLogger())
	f, err := c.Forecast(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
	if !f.Supported || f.ExpectedMovement == nil || *f.ExpectedMovement != 3.5 {
		t.Fatalf("unexpected forecast %+v", f)
	}
}

func TestUpstreamFailureExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, 2), testLogger())
	if _, err := c.Peers(context.Background(), "ACME"); err == nil {
		t.Fatalf("expected error after retries")
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, 1), testLogger())
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
