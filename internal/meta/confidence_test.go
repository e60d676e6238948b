package meta

import (
	"testing"

	"RiskScope/internal/domain/models"
)

func fullFinancials() models.Financials {
	return models.Financials{
		Revenue:            fptr(1000),
		NetIncome:          fptr(200),
		OperatingIncome:    fptr(250),
		TotalAssets:        fptr(2000),
		TotalDebt:          fptr(300),
		ShareholderEquity:  fptr(900),
		CurrentAssets:      fptr(600),
		CurrentLiabilities: fptr(300),
		FreeCashFlow:       fptr(180),
		MarketCap:          fptr(5000),
	}
}

func TestCalculateConfidenceEmptyBundle(t *testing.T) {
	got := CalculateConfidence(&models.AnalysisBundle{})
	// 0.55 - 0.05 (insufficient earnings) - 0.08 (no data) = 0.42
	if got.Score != 0.42 {
		t.Fatalf("expected 0.42, got %v", got.Score)
	}
	if got.Baseline != BaselineConfidence {
		t.Fatalf("unexpected baseline %v", got.Baseline)
	}
	if len(got.Factors) != 7 {
		t.Fatalf("expected 7 factors, got %d", len(got.Factors))
	}
}

func TestCalculateConfidenceStrongCompany(t *testing.T) {
	b := &models.AnalysisBundle{
		Fundamentals: &models.Fundamentals{
			Raw:  fullFinancials(),
			KPIs: models.KPIs{DebtToEquity: fptr(0.3)},
		},
		Forecast: &models.Forecast{
			Supported: true,
			ProbUp:    fptr(0.72),
			Models: []models.ModelSignal{
				{Name: "tft", Direction: "up"},
				{Name: "xgb", Direction: "up"},
			},
		},
		Risk: &models.OverallRiskReport{
			OverallRisk: models.RiskLow,
			Earnings: models.EarningsStability{
				Classification:     models.EarningsStable,
				TotalYearsAnalyzed: 4,
			},
		},
	}
	got := CalculateConfidence(b)
	// 0.55 + 0.12 + 0.08 + 0.06 + 0.04 + 0.05 + 0 + 0.18 = 1.08, clipped to 0.95
	if got.Score != MaxConfidence {
		t.Fatalf("expected ceiling %v, got %v", MaxConfidence, got.Score)
	}
	if got.Interpretation != "High confidence: strong data quality and model agreement." {
		t.Fatalf("unexpected interpretation %q", got.Interpretation)
	}
}

func TestCalculateConfidenceHighRiskVolatile(t *testing.T) {
	b := &models.AnalysisBundle{
		Fundamentals: &models.Fundamentals{
			Raw:  fullFinancials(),
			KPIs: models.KPIs{DebtToEquity: fptr(3.2)},
		},
		Risk: &models.OverallRiskReport{
			OverallRisk: models.RiskHigh,
			Earnings: models.EarningsStability{
				Classification:     models.EarningsHighlyVolatile,
				TotalYearsAnalyzed: 4,
			},
		},
		Scenario: &models.ScenarioReport{
			ForecastAdjustment: models.ForecastAdjustment{AdjustedConfidence: fptr(0.6)},
		},
	}
	got := CalculateConfidence(b)
	// 0.55 + 0 - 0.10 - 0.10 - 0.06 + 0.05 - 0.06 + 0.18 = 0.46
	if got.Score != 0.46 {
		t.Fatalf("expected 0.46, got %v", got.Score)
	}
}

func TestCalculateConfidenceFloor(t *testing.T) {
	b := &models.AnalysisBundle{
		Fundamentals: &models.Fundamentals{
			KPIs: models.KPIs{DebtToEquity: fptr(4.0)},
		},
		Risk: &models.OverallRiskReport{
			OverallRisk: models.RiskHigh,
			Earnings:    models.EarningsStability{Classification: models.EarningsHighlyVolatile},
		},
		Forecast: &models.Forecast{
			Supported: true,
			Models: []models.ModelSignal{
				{Name: "tft", Direction: "up"},
				{Name: "xgb", Direction: "down"},
			},
		},
		Scenario: &models.ScenarioReport{
			ForecastAdjustment: models.ForecastAdjustment{AdjustedConfidence: fptr(0.5)},
		},
	}
	got := CalculateConfidence(b)
	// 0.55 - 0.10 - 0.10 - 0.10 - 0.06 - 0.08 - 0.06 + 0 = 0.05, floored to 0.15
	if got.Score != MinConfidence {
		t.Fatalf("expected floor %v, got %v", MinConfidence, got.Score)
	}
	if got.Interpretation != "Very low confidence: treat all outputs with caution." {
		t.Fatalf("unexpected interpretation %q", got.Interpretation)
	}
}
