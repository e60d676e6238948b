package riskengine

import (
	"testing"

	"RiskScope/internal/domain/models"
)

func lev(l models.RiskLevel) *models.LeverageAssessment {
	return &models.LeverageAssessment{RiskAssessment: models.RiskAssessment{Level: l}}
}

func liq(l models.RiskLevel) *models.LiquidityAssessment {
	return &models.LiquidityAssessment{RiskAssessment: models.RiskAssessment{Level: l}}
}

func earn(l models.RiskLevel) *models.EarningsStability {
	return &models.EarningsStability{Level: l}
}

func cash(l models.RiskLevel) *models.CashflowAssessment {
	return &models.CashflowAssessment{RiskAssessment: models.RiskAssessment{Level: l}}
}

func TestAggregateAllLow(t *testing.T) {
	level, score := Aggregate(lev(models.RiskLow), liq(models.RiskLow), earn(models.RiskLow), cash(models.RiskLow), nil)
	if level != models.RiskLow {
		t.Fatalf("expected low, got %s", level)
	}
	if score == nil || *score != 2 {
		t.Fatalf("expected score 2, got %v", score)
	}
}

func TestAggregateMixed(t *testing.T) {
	// 8*.30 + 5*.25 + 5*.25 + 2*.20 = 5.3
	level, score := Aggregate(lev(models.RiskHigh), liq(models.RiskModerate), earn(models.RiskModerate), cash(models.RiskLow), nil)
	if level != models.RiskModerate {
		t.Fatalf("expected moderate, got %s", level)
	}
	if score == nil || *score != 5.3 {
		t.Fatalf("expected score 5.3, got %v", score)
	}
}

func TestAggregateUnknownLevelExcluded(t *testing.T) {
	// Unknown earnings level drops its weight: (8*.30 + 8*.25 + 8*.20) / .75 = 8
	level, score := Aggregate(lev(models.RiskHigh), liq(models.RiskHigh), earn(models.RiskUnknown), cash(models.RiskHigh), nil)
	if level != models.RiskHigh {
		t.Fatalf("expected high, got %s", level)
	}
	if score == nil || *score != 8 {
		t.Fatalf("expected score 8, got %v", score)
	}
}

func TestAggregateAllUnknown(t *testing.T) {
	level, score := Aggregate(lev(models.RiskUnknown), liq(models.RiskUnknown), earn(models.RiskUnknown), cash(models.RiskUnknown), nil)
	if level != models.RiskModerate {
		t.Fatalf("expected moderate fallback, got %s", level)
	}
	if score != nil {
		t.Fatalf("expected nil score, got %v", score)
	}
}

func TestAggregateHiddenRiskBump(t *testing.T) {
	hidden := []string{"a", "b", "c"}
	level, _ := Aggregate(lev(models.RiskLow), liq(models.RiskLow), earn(models.RiskLow), cash(models.RiskLow), hidden)
	if level != models.RiskModerate {
		t.Fatalf("expected bump to moderate, got %s", level)
	}

	level, _ = Aggregate(lev(models.RiskHigh), liq(models.RiskHigh), earn(models.RiskHigh), cash(models.RiskHigh), hidden)
	if level != models.RiskHigh {
		t.Fatalf("expected high ceiling, got %s", level)
	}
}

func TestErrorAssessmentStub(t *testing.T) {
	stub := ErrorAssessment("leverage risk assessment failed")
	if stub.Level != models.RiskModerate || stub.Score != 5 {
		t.Fatalf("unexpected stub %+v", stub)
	}
	if len(stub.Flags) != 1 || stub.Flags[0] != stub.Details {
		t.Fatalf("expected flag mirroring details")
	}
}
