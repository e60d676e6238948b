package scenario

import (
	"fmt"
	"math"

	"RiskScope/internal/domain/models"
)

// D/E thresholds, aligned with the leverage risk analyzer.
const (
	lowDE      = 0.5
	moderateDE = 2.0
	highDE     = 4.0
)

// StressLeverage applies the scenario risk amplifier to the D/E-based base
// risk score and re-classifies the level, capping the stressed score at 10.
func StressLeverage(deRatio *float64, s models.ScenarioAssumptions) *models.LeverageStress {
	interestPP := round2(s.InterestCostImpactAdd * 100)

	if deRatio == nil {
		return &models.LeverageStress{
			Scenario:               s.Key,
			RiskAmplifier:          s.RiskAmplifier,
			InterestCostIncreasePP: interestPP,
			BaseRiskLevel:          models.RiskUnknown,
			StressedRiskLevel:      models.RiskUnknown,
			Notes: fmt.Sprintf(
				"D/E ratio unavailable, cannot compute stressed leverage risk. Scenario '%s' applies a %.2fx risk amplifier.",
				s.Key, s.RiskAmplifier),
		}
	}

	baseScore, baseLevel := deToRisk(*deRatio)
	stressedScore := math.Min(10, round2(baseScore*s.RiskAmplifier))
	stressedLevel := scoreToRisk(stressedScore)
	atRisk := stressedLevel == models.RiskHigh || stressedLevel == models.RiskCritical

	notes := fmt.Sprintf(
		"D/E of %.2fx (base risk: %s) amplified by %.2fx under '%s' scenario, stressed risk: %s (score: %.1f/10). ",
		*deRatio, baseLevel, s.RiskAmplifier, s.Key, stressedLevel, stressedScore)
	if s.InterestCostImpactAdd > 0 {
		notes += fmt.Sprintf("Interest cost burden increases by approximately %.1fpp. ", s.InterestCostImpactAdd*100)
	}
	if atRisk {
		notes += "Company faces elevated debt servicing pressure under this scenario."
	}

	return &models.LeverageStress{
		BaseDERatio:            deRatio,
		Scenario:               s.Key,
		RiskAmplifier:          s.RiskAmplifier,
		InterestCostIncreasePP: interestPP,
		BaseRiskLevel:          baseLevel,
		StressedRiskLevel:      stressedLevel,
		StressedRiskScore:      &stressedScore,
		AtRisk:                 atRisk,
		Notes:                  notes,
	}
}

func deToRisk(de float64) (float64, models.RiskLevel) {
	switch {
	case de > highDE:
		return 8.0, models.RiskCritical
	case de > moderateDE:
		return 6.0, models.RiskHigh
	case de > lowDE:
		return 3.5, models.RiskModerate
	}
	return 1.5, models.RiskLow
}

func scoreToRisk(score float64) models.RiskLevel {
	switch {
	case score >= 8:
		return models.RiskCritical
	case score >= 6:
		return models.RiskHigh
	case score >= 3:
		return models.RiskModerate
	}
	return models.RiskLow
}
