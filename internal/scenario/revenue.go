package scenario

import (
	"fmt"

	"RiskScope/internal/domain/models"
)

// StressRevenue applies the scenario growth factor to a trailing YoY revenue
// growth rate. The factor is a fraction, converted to percentage points and
// added because base growth is already expressed in percent.
func StressRevenue(baseGrowth *float64, s models.ScenarioAssumptions) *models.RevenueStress {
	adjustmentPP := round2(s.RevenueGrowthImpact * 100)

	if baseGrowth == nil {
		return &models.RevenueStress{
			AdjustmentPP: adjustmentPP,
			Direction:    models.GrowthUnknown,
			Notes: fmt.Sprintf(
				"Scenario '%s' applies a %+.1fpp revenue growth adjustment. Base growth was unavailable, so the absolute adjusted value cannot be computed.",
				s.Key, adjustmentPP),
		}
	}

	adjusted := round2(*baseGrowth + adjustmentPP)

	var direction string
	switch {
	case adjusted > 2.0:
		direction = models.GrowthGrowing
	case adjusted < -1.0:
		direction = models.GrowthDeclining
	default:
		direction = models.GrowthFlat
	}

	return &models.RevenueStress{
		BaseGrowth:     baseGrowth,
		AdjustmentPP:   adjustmentPP,
		AdjustedGrowth: &adjusted,
		Direction:      direction,
		Notes: fmt.Sprintf(
			"Base revenue growth of %.2f%% adjusted by %+.1fpp under '%s' scenario, stressed growth: %.2f%%.",
			*baseGrowth, adjustmentPP, s.Key, adjusted),
	}
}
