package scenario

import (
	"fmt"
	"math"
	"strings"

	"RiskScope/internal/domain/models"
)

// StressForecast rescales a baseline forecast under a scenario: the movement
// impact is applied additively in percentage points and confidence is scaled
// by the scenario factor, clamped to [0, 1].
func StressForecast(baseMovement, baseConfidence *float64, s models.ScenarioAssumptions) *models.ForecastAdjustment {
	movementAdjPP := s.MovementImpact * 100

	var adjustedMovement *float64
	if baseMovement != nil {
		v := round2(*baseMovement + movementAdjPP)
		adjustedMovement = &v
	}

	var adjustedConfidence *float64
	if baseConfidence != nil {
		v := round4(math.Max(0, math.Min(1, *baseConfidence*s.ConfidenceFactor)))
		adjustedConfidence = &v
	}

	var direction string
	switch {
	case adjustedMovement == nil:
		direction = models.DirectionUnknown
	case *adjustedMovement > 1.0:
		direction = models.DirectionBullish
	case *adjustedMovement < -1.0:
		direction = models.DirectionBearish
	default:
		direction = models.DirectionNeutral
	}

	return &models.ForecastAdjustment{
		BaseExpectedMovement:     baseMovement,
		AdjustedExpectedMovement: adjustedMovement,
		BaseConfidence:           baseConfidence,
		AdjustedConfidence:       adjustedConfidence,
		Scenario:                 s.Key,
		MovementAdjustmentPP:     round2(movementAdjPP),
		ConfidenceFactor:         s.ConfidenceFactor,
		Direction:                direction,
		Notes:                    forecastNotes(s, baseMovement, adjustedMovement, baseConfidence, adjustedConfidence),
	}
}

// SynthesizeForecast builds a directional stub when no baseline forecast
// exists, carrying only the scenario's movement bias.
func SynthesizeForecast(s models.ScenarioAssumptions) *models.ForecastAdjustment {
	movementHint := s.MovementImpact * 100
	adjusted := round2(movementHint)
	direction := models.DirectionBullish
	if movementHint < 0 {
		direction = models.DirectionBearish
	}
	return &models.ForecastAdjustment{
		AdjustedExpectedMovement: &adjusted,
		Scenario:                 s.Key,
		MovementAdjustmentPP:     round2(movementHint),
		ConfidenceFactor:         s.ConfidenceFactor,
		Direction:                direction,
		Synthesized:              true,
		Notes: fmt.Sprintf("No baseline forecast available. Under '%s', directional bias is %+.1f%%.",
			s.Key, movementHint),
	}
}

func forecastNotes(s models.ScenarioAssumptions, baseMv, adjMv, baseCf, adjCf *float64) string {
	parts := []string{fmt.Sprintf("Under the '%s' scenario:", s.Key)}
	if baseMv != nil && adjMv != nil {
		parts = append(parts, fmt.Sprintf("expected price movement revised from %+.1f%% to %+.1f%%", *baseMv, *adjMv))
	}
	if baseCf != nil && adjCf != nil {
		pctChange := round2((s.ConfidenceFactor - 1) * 100)
		parts = append(parts, fmt.Sprintf("forecast confidence reduced by %.0f%% (%.2f to %.2f)",
			math.Abs(pctChange), *baseCf, *adjCf))
	}
	return strings.Join(parts, "; ") + "."
}
