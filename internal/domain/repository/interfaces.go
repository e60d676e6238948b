package repository

import (
	"context"
	"time"

	"RiskScope/internal/domain/models"
)

// FundamentalsProvider serves company financial statements and derived KPIs.
type FundamentalsProvider interface {
	Fundamentals(ctx context.Context, ticker string) (*models.Fundamentals, error)
	EarningsHistory(ctx context.Context, ticker string) ([]*float64, error)
	Health(ctx context.Context) error
}

// ForecastProvider serves model-based price outlooks for a ticker.
type ForecastProvider interface {
	Forecast(ctx context.Context, ticker string) (*models.Forecast, error)
}

// PeerProvider serves peer-group comparisons and qualitative insights.
type PeerProvider interface {
	Peers(ctx context.Context, ticker string) (*models.PeerComparison, error)
	Insights(ctx context.Context, ticker string) (*models.Insights, error)
}

type ReportCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Metrics interface {
	RecordReport(kind, ticker string)
	RecordDegradation(component string)
	RecordRiskScore(ticker string, score float64)
	RecordLatency(op string, seconds float64)
}
