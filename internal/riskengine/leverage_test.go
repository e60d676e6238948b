package riskengine

import (
	"strings"
	"testing"

	"RiskScope/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

func TestAnalyzeLeverageCritical(t *testing.T) {
	f := &models.Fundamentals{
		Raw: models.Financials{
			TotalDebt:         fptr(900),
			ShareholderEquity: fptr(200),
			OperatingIncome:   fptr(10),
		},
		KPIs: models.KPIs{
			DebtToEquity: fptr(4.5),
			DebtToAssets: fptr(0.7),
		},
	}
	got := AnalyzeLeverage(f)
	// 4 + 2 + 2 + 2 = 10 of 11 points
	if got.Level != models.RiskCritical {
		t.Fatalf("expected critical, got %s", got.Level)
	}
	if got.Score != 9 {
		t.Fatalf("expected score 9, got %v", got.Score)
	}
	if got.DebtToEquity == nil || *got.DebtToEquity != 4.5 {
		t.Fatalf("expected D/E passthrough")
	}
}

func TestAnalyzeLeverageConservative(t *testing.T) {
	f := &models.Fundamentals{
		Raw: models.Financials{
			TotalDebt:         fptr(100),
			ShareholderEquity: fptr(500),
			OperatingIncome:   fptr(80),
		},
		KPIs: models.KPIs{
			DebtToEquity: fptr(0.2),
			DebtToAssets: fptr(0.1),
		},
	}
	got := AnalyzeLeverage(f)
	if got.Level != models.RiskLow {
		t.Fatalf("expected low, got %s", got.Level)
	}
	if got.Score != 0 {
		t.Fatalf("expected score 0, got %v", got.Score)
	}
	if !strings.Contains(got.Flags[0], "well-managed leverage") {
		t.Fatalf("expected strength flag, got %q", got.Flags[0])
	}
}

func TestAnalyzeLeverageMissingDE(t *testing.T) {
	got := AnalyzeLeverage(&models.Fundamentals{})
	if got.Level != models.RiskLow {
		t.Fatalf("expected low for single unknown point, got %s", got.Level)
	}
	if len(got.Flags) == 0 || !strings.Contains(got.Flags[0], "unavailable") {
		t.Fatalf("expected unavailable flag, got %v", got.Flags)
	}
	if !strings.HasPrefix(got.Details, "Partial leverage data available.") {
		t.Fatalf("unexpected details %q", got.Details)
	}
}

func TestAnalyzeLeverageNegativeEquity(t *testing.T) {
	f := &models.Fundamentals{
		Raw: models.Financials{
			TotalDebt:         fptr(400),
			ShareholderEquity: fptr(-50),
		},
		KPIs: models.KPIs{DebtToEquity: fptr(3.0)},
	}
	got := AnalyzeLeverage(f)
	// 2 + 3 = 5 of 11 -> high
	if got.Level != models.RiskHigh {
		t.Fatalf("expected high, got %s", got.Level)
	}
	found := false
	for _, fl := range got.Flags {
		if strings.Contains(fl, "negative or zero shareholder equity") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected equity flag, got %v", got.Flags)
	}
}
