package scenario

import (
	"fmt"
	"math"

	"RiskScope/internal/domain/models"
)

// StressMargin compresses the trailing net profit margin by the scenario
// factor, applied additively in percentage points.
func StressMargin(currentMargin *float64, s models.ScenarioAssumptions) *models.MarginStress {
	adjustmentPP := round2(s.MarginImpact * 100)

	if currentMargin == nil {
		return &models.MarginStress{
			AdjustmentPP: adjustmentPP,
			State:        models.MarginUnknown,
			Notes: fmt.Sprintf(
				"Scenario '%s' applies a %+.1fpp margin compression. Current margin was unavailable, so the adjusted value cannot be computed.",
				s.Key, adjustmentPP),
		}
	}

	adjusted := round2(*currentMargin + adjustmentPP)

	var state models.MarginState
	switch {
	case adjusted > 15:
		state = models.MarginHealthy
	case adjusted > 5:
		state = models.MarginThin
	case adjusted >= 0:
		state = models.MarginVeryThin
	default:
		state = models.MarginLossMaking
	}

	notes := fmt.Sprintf(
		"Net margin of %.1f%% compressed by %+.1fpp under '%s' scenario, stressed margin: %.1f%%.",
		*currentMargin, adjustmentPP, s.Key, adjusted)
	switch state {
	case models.MarginLossMaking:
		notes += " Company would operate at a loss under this scenario."
	case models.MarginVeryThin:
		notes += " Margin would be critically thin and any further pressure creates losses."
	}

	return &models.MarginStress{
		BaseMargin:     currentMargin,
		AdjustmentPP:   adjustmentPP,
		AdjustedMargin: &adjusted,
		State:          state,
		Notes:          notes,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
