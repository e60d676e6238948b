package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"RiskScope/internal/domain/models"
	applogger "RiskScope/pkg/logger"
)

type fakeProvider struct {
	fundamentals *models.Fundamentals
	fundErr      error
	earnings     []*float64
	earnErr      error
	forecast     *models.Forecast
	forecastErr  error
	peers        *models.PeerComparison
	peersErr     error
	insights     *models.Insights
	insightsErr  error

	fundCalls int
}

func (p *fakeProvider) Fundamentals(_ context.Context, _ string) (*models.Fundamentals, error) {
	p.fundCalls++
	return p.fundamentals, p.fundErr
}

func (p *fakeProvider) EarningsHistory(_ context.Context, _ string) ([]*float64, error) {
	return p.earnings, p.earnErr
}

func (p *fakeProvider) Health(_ context.Context) error { return nil }

func (p *fakeProvider) Forecast(_ context.Context, _ string) (*models.Forecast, error) {
	return p.forecast, p.forecastErr
}

func (p *fakeProvider) Peers(_ context.Context, _ string) (*models.PeerComparison, error) {
	return p.peers, p.peersErr
}

func (p *fakeProvider) Insights(_ context.Context, _ string) (*models.Insights, error) {
	return p.insights, p.insightsErr
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

type fakeMetrics struct {
	reports      map[string]int
	degradations map[string]int
	lastScore    float64
	scoreSet     bool
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{reports: map[string]int{}, degradations: map[string]int{}}
}

func (m *fakeMetrics) RecordReport(kind, _ string)    { m.reports[kind]++ }
func (m *fakeMetrics) RecordDegradation(comp string)  { m.degradations[comp]++ }
func (m *fakeMetrics) RecordRiskScore(_ string, s float64) {
	m.lastScore = s
	m.scoreSet = true
}
func (m *fakeMetrics) RecordLatency(_ string, _ float64) {}

func testLogger() *applogger.Logger {
	l, _ := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stdout"})
	return l
}

func fptr(v float64) *float64 { return &v }

func healthyFundamentals() *models.Fundamentals {
	return &models.Fundamentals{
		Raw: models.Financials{
			Ticker:             "ACME",
			Revenue:            fptr(1000),
			NetIncome:          fptr(150),
			OperatingIncome:    fptr(200),
			TotalAssets:        fptr(2000),
			TotalDebt:          fptr(300),
			ShareholderEquity:  fptr(900),
			CurrentAssets:      fptr(600),
			CurrentLiabilities: fptr(300),
			FreeCashFlow:       fptr(180),
			MarketCap:          fptr(5000),
		},
		KPIs: models.KPIs{
			NetProfitMargin:  fptr(15),
			OperatingMargin:  fptr(20),
			DebtToEquity:     fptr(0.33),
			DebtToAssets:     fptr(0.15),
			CurrentRatio:     fptr(2.0),
			PERatio:          fptr(22),
			RevenueGrowthYoY: fptr(8),
		},
	}
}
