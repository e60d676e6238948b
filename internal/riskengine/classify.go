// Package riskengine scores company fundamentals across leverage, liquidity,
// earnings stability and cash-flow quality, and aggregates the four into an
// overall risk grade. All analyzers are pure and deterministic.
package riskengine

import (
	"math"

	"RiskScope/internal/domain/models"
)

// Component weights for the overall weighted score.
const (
	WeightLeverage  = 0.30
	WeightLiquidity = 0.25
	WeightEarnings  = 0.25
	WeightCashflow  = 0.20
)

// HiddenRiskEscalationCount is the number of hidden risk findings at which
// the overall grade is bumped one level.
const HiddenRiskEscalationCount = 3

// LevelScore maps a risk level to its numeric contribution on the 0-10 scale.
var LevelScore = map[models.RiskLevel]float64{
	models.RiskLow:      2,
	models.RiskModerate: 5,
	models.RiskHigh:     8,
	models.RiskCritical: 10,
}

// classify converts accumulated points into a level and a 0-10 score.
func classify(points, maxPoints float64) (models.RiskLevel, float64) {
	ratio := 0.0
	if maxPoints > 0 {
		ratio = points / maxPoints
	}
	score := math.Round(ratio * 10)
	if score > 10 {
		score = 10
	}
	var level models.RiskLevel
	switch {
	case ratio >= 0.70:
		level = models.RiskCritical
	case ratio >= 0.45:
		level = models.RiskHigh
	case ratio >= 0.20:
		level = models.RiskModerate
	default:
		level = models.RiskLow
	}
	return level, score
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
