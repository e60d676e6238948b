package meta

import (
	"testing"

	"RiskScope/internal/domain/models"
)

func findContradiction(list []models.Contradiction, typ string) *models.Contradiction {
	for i := range list {
		if list[i].Type == typ {
			return &list[i]
		}
	}
	return nil
}

func TestDetectContradictionsEmptyBundle(t *testing.T) {
	got := DetectContradictions(&models.AnalysisBundle{})
	if got == nil {
		t.Fatalf("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no contradictions, got %v", got)
	}
}

func TestBullishForecastWeakFundamentals(t *testing.T) {
	b := &models.AnalysisBundle{
		Forecast: &models.Forecast{ProbUp: fptr(0.65)},
		Fundamentals: &models.Fundamentals{
			KPIs: models.KPIs{NetProfitMargin: fptr(3.0)},
		},
	}
	got := DetectContradictions(b)
	c := findContradiction(got, "forecast_vs_fundamentals")
	if c == nil {
		t.Fatalf("expected forecast_vs_fundamentals, got %v", got)
	}
	if c.Severity != models.SeverityWarning {
		t.Fatalf("expected warning, got %s", c.Severity)
	}
}

func TestProfitableNegativeCashflowIsCritical(t *testing.T) {
	b := &models.AnalysisBundle{
		Fundamentals: &models.Fundamentals{
			Raw:  models.Financials{FreeCashFlow: fptr(-500)},
			KPIs: models.KPIs{NetProfitMargin: fptr(22.0)},
		},
	}
	got := DetectContradictions(b)
	c := findContradiction(got, "profitability_vs_cashflow")
	if c == nil {
		t.Fatalf("expected profitability_vs_cashflow, got %v", got)
	}
	if c.Severity != models.SeverityCritical {
		t.Fatalf("expected critical, got %s", c.Severity)
	}
}

func TestOutlookVsRiskOnlyFiresOnHigh(t *testing.T) {
	b := &models.AnalysisBundle{
		Insights: &models.Insights{Outlook: "positive"},
		Risk:     &models.OverallRiskReport{OverallRisk: models.RiskModerate},
	}
	if c := findContradiction(DetectContradictions(b), "outlook_vs_risk"); c != nil {
		t.Fatalf("should not fire on moderate risk")
	}

	b.Risk.OverallRisk = models.RiskHigh
	c := findContradiction(DetectContradictions(b), "outlook_vs_risk")
	if c == nil {
		t.Fatalf("expected outlook_vs_risk on high risk")
	}
	if c.Severity != models.SeverityCritical {
		t.Fatalf("expected critical, got %s", c.Severity)
	}
}

func TestForecastVsScenario(t *testing.T) {
	b := &models.AnalysisBundle{
		Forecast: &models.Forecast{Direction: "up"},
		Scenario: &models.ScenarioReport{
			Scenario:           "recession",
			ForecastAdjustment: models.ForecastAdjustment{Direction: models.DirectionBearish},
		},
	}
	if c := findContradiction(DetectContradictions(b), "forecast_vs_scenario"); c == nil {
		t.Fatalf("expected forecast_vs_scenario")
	}
}

func TestValuationVsGrowth(t *testing.T) {
	b := &models.AnalysisBundle{
		Fundamentals: &models.Fundamentals{
			KPIs: models.KPIs{
				PERatio:          fptr(42.0),
				RevenueGrowthYoY: fptr(2.5),
			},
		},
	}
	if c := findContradiction(DetectContradictions(b), "valuation_vs_growth"); c == nil {
		t.Fatalf("expected valuation_vs_growth")
	}
}

func TestMissingInputsSkipChecks(t *testing.T) {
	// High PE without growth data must not fire.
	b := &models.AnalysisBundle{
		Fundamentals: &models.Fundamentals{
			KPIs: models.KPIs{PERatio: fptr(42.0)},
		},
	}
	if got := DetectContradictions(b); len(got) != 0 {
		t.Fatalf("expected no contradictions, got %v", got)
	}
}

func TestStrongForecastVolatileEarnings(t *testing.T) {
	b := &models.AnalysisBundle{
		Forecast: &models.Forecast{Confidence: fptr(0.85)},
		Risk: &models.OverallRiskReport{
			Earnings: models.EarningsStability{Classification: models.EarningsHighlyVolatile},
		},
	}
	c := findContradiction(DetectContradictions(b), "forecast_vs_earnings_stability")
	if c == nil {
		t.Fatalf("expected forecast_vs_earnings_stability")
	}
	if c.Severity != models.SeverityWarning {
		t.Fatalf("expected warning, got %s", c.Severity)
	}
}
