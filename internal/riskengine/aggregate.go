package riskengine

import (
	"RiskScope/internal/domain/models"
)

// ErrorAssessment is the stub result substituted for a failed analyzer so
// that the report keeps its full shape.
func ErrorAssessment(msg string) models.RiskAssessment {
	return models.RiskAssessment{
		Level:   models.RiskModerate,
		Score:   5,
		Details: msg,
		Flags:   []string{msg},
	}
}

// levelScore maps an analyzer level to its contribution, or nil when the
// level is unknown so that its weight drops out of the average entirely.
func levelScore(level models.RiskLevel) *float64 {
	if s, ok := LevelScore[level]; ok {
		return &s
	}
	return nil
}

// Aggregate computes the overall risk grade as a weighted average of the
// four analyzer levels, renormalized over the weights that produced a
// score. Three or more hidden risks bump the grade one level, capped at
// high.
func Aggregate(
	leverage *models.LeverageAssessment,
	liquidity *models.LiquidityAssessment,
	earnings *models.EarningsStability,
	cashflow *models.CashflowAssessment,
	hiddenRisks []string,
) (models.RiskLevel, *float64) {
	type weighted struct {
		weight float64
		score  *float64
	}
	parts := []weighted{
		{WeightLeverage, levelScore(leverage.Level)},
		{WeightLiquidity, levelScore(liquidity.Level)},
		{WeightEarnings, levelScore(earnings.Level)},
		{WeightCashflow, levelScore(cashflow.Level)},
	}

	var totalWeight, weightedSum float64
	for _, p := range parts {
		if p.score != nil {
			weightedSum += *p.score * p.weight
			totalWeight += p.weight
		}
	}

	var overallScore *float64
	overall := models.RiskModerate
	if totalWeight > 0 {
		score := weightedSum / totalWeight
		overallScore = models.Float64(round2(score))
		switch {
		case score >= 7:
			overall = models.RiskHigh
		case score >= 4:
			overall = models.RiskModerate
		default:
			overall = models.RiskLow
		}
	}

	if len(hiddenRisks) >= HiddenRiskEscalationCount {
		overall = bumpLevel(overall)
	}
	return overall, overallScore
}

func bumpLevel(level models.RiskLevel) models.RiskLevel {
	switch level {
	case models.RiskLow:
		return models.RiskModerate
	case models.RiskModerate:
		return models.RiskHigh
	}
	return level
}
