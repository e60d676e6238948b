package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"RiskScope/internal/domain/models"
	"RiskScope/internal/usecase"
	applogger "RiskScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubProvider struct{}

func fp(v float64) *float64 { return &v }

func (stubProvider) Fundamentals(_ context.Context, _ string) (*models.Fundamentals, error) {
	return &models.Fundamentals{
		KPIs: models.KPIs{
			NetProfitMargin:  fp(15),
			DebtToEquity:     fp(0.4),
			DebtToAssets:     fp(0.2),
			CurrentRatio:     fp(1.8),
			RevenueGrowthYoY: fp(6),
		},
		Raw: models.Financials{
			Ticker:             "ACME",
			Revenue:            fp(1000),
			NetIncome:          fp(150),
			OperatingIncome:    fp(200),
			TotalAssets:        fp(2000),
			TotalDebt:          fp(300),
			ShareholderEquity:  fp(900),
			CurrentAssets:      fp(540),
			CurrentLiabilities: fp(300),
			FreeCashFlow:       fp(180),
			MarketCap:          fp(5000),
		},
	}, nil
}

func (stubProvider) EarningsHistory(_ context.Context, _ string) ([]*float64, error) {
	return []*float64{fp(100), fp(110), fp(121)}, nil
}

func (stubProvider) Health(_ context.Context) error { return nil }

func (stubProvider) Forecast(_ context.Context, _ string) (*models.Forecast, error) {
	return &models.Forecast{ExpectedMovement: fp(4), Confidence: fp(0.7), Supported: true}, nil
}

func (stubProvider) Peers(_ context.Context, _ string) (*models.PeerComparison, error) {
	return &models.PeerComparison{PeerGroup: []string{"WIDG"}}, nil
}

func (stubProvider) Insights(_ context.Context, _ string) (*models.Insights, error) {
	return &models.Insights{Outlook: "neutral"}, nil
}

type stubCache struct{ data map[string][]byte }

func (c *stubCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *stubCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

type stubMetrics struct{}

func (stubMetrics) RecordReport(_, _ string)        {}
func (stubMetrics) RecordDegradation(_ string)      {}
func (stubMetrics) RecordRiskScore(_ string, _ float64) {}
func (stubMetrics) RecordLatency(_ string, _ float64)   {}

func newTestHandler() *AnalysisHandler {
	log, _ := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stdout"})
	provider := stubProvider{}
	newCache := func() *stubCache { return &stubCache{data: map[string][]byte{}} }
	metrics := stubMetrics{}

	risk := usecase.NewRiskReportUseCase(provider, newCache(), metrics, log, time.Minute)
	scenarios := usecase.NewScenarioUseCase(provider, provider, newCache(), metrics, log, time.Minute)
	reviews := usecase.NewMetaReviewUseCase(provider, provider, provider, risk, scenarios, newCache(), metrics, log, time.Minute)
	return NewAnalysisHandler(log, risk, scenarios, reviews, provider)
}

func doRequest(t *testing.T, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	newTestHandler().RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v: %s", err, rec.Body.String())
	}
	return rec, body
}

func TestRiskEndpoint(t *testing.T) {
	rec, body := doRequest(t, "/api/risk?ticker=acme")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected code %d", rec.Code)
	}
	if body["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected envelope status %v", body["status"])
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data: %s", rec.Body.String())
	}
	if data["ticker"] != "ACME" {
		t.Fatalf("unexpected ticker %v", data["ticker"])
	}
	if _, ok := data["overall_risk"]; !ok {
		t.Fatalf("missing overall_risk: %v", data)
	}
	if data["analysis_status"] != "complete" {
		t.Fatalf("unexpected status %v", data["analysis_status"])
	}
}

func TestRiskEndpointMissingTicker(t *testing.T) {
	_, body := doRequest(t, "/api/risk")
	if body["status"] != float64(http.StatusBadRequest) {
		t.Fatalf("expected 400 envelope, got %v", body["status"])
	}
}

func TestScenarioEndpointDefaultsToRecession(t *testing.T) {
	_, body := doRequest(t, "/api/scenario?ticker=ACME")
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data: %v", body)
	}
	if data["scenario"] != "recession" {
		t.Fatalf("expected recession default, got %v", data["scenario"])
	}
}

func TestScenarioEndpointUnknownType(t *testing.T) {
	_, body := doRequest(t, "/api/scenario?ticker=ACME&type=zombie_apocalypse")
	if body["status"] != float64(http.StatusBadRequest) {
		t.Fatalf("expected 400 envelope, got %v", body["status"])
	}
	raw, _ := json.Marshal(body["data"])
	if !strings.Contains(string(raw), "Supported scenarios") {
		t.Fatalf("expected supported scenario list in error, got %s", raw)
	}
}

func TestScenariosListEndpoint(t *testing.T) {
	_, body := doRequest(t, "/api/scenarios")
	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("expected list, got %v", body["data"])
	}
	if len(data) != 4 {
		t.Fatalf("expected 4 scenarios, got %d", len(data))
	}
}

func TestReviewEndpoint(t *testing.T) {
	_, body := doRequest(t, "/api/review?ticker=ACME")
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data: %v", body)
	}
	if _, ok := data["confidence"]; !ok {
		t.Fatalf("missing confidence: %v", data)
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := echo.New()
	newTestHandler().RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected code %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
