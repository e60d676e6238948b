package riskengine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"RiskScope/internal/domain/models"
)

// Volatility and classification cutoffs for the composite stability score.
const (
	cvHighVolatility     = 0.5
	cvModerateVolatility = 0.25

	stableCutoff             = 0.75
	moderatelyStableCutoff   = 0.50
	moderatelyVolatileCutoff = 0.25
)

// AnalyzeEarningsStability evaluates up to several years of annual net income
// (most-recent first) and computes a composite 0-1 stability score from the
// coefficient of variation, trend direction and growth consistency. Fewer
// than two valid years yields a nil score and an insufficient_data result.
func AnalyzeEarningsStability(series []*float64) *models.EarningsStability {
	valid := make([]float64, 0, len(series))
	for _, e := range series {
		if e != nil {
			valid = append(valid, *e)
		}
	}
	totalYears := len(valid)

	if totalYears < 2 {
		return &models.EarningsStability{
			Classification:     models.EarningsInsufficientData,
			EarningsSeries:     valid,
			YoYChanges:         []float64{},
			TotalYearsAnalyzed: totalYears,
			Trend:              models.TrendInsufficientData,
			Flags:              []string{"Fewer than 2 years of earnings data available"},
			Level:              models.RiskModerate,
		}
	}

	yoy := make([]float64, 0, totalYears-1)
	for i := 0; i < totalYears-1; i++ {
		curr, prev := valid[i], valid[i+1]
		if prev != 0 {
			yoy = append(yoy, round2((curr-prev)/math.Abs(prev)*100))
		}
	}

	positiveGrowthYears := 0
	for _, g := range yoy {
		if g > 0 {
			positiveGrowthYears++
		}
	}

	mean := stat.Mean(valid, nil)
	std := stat.PopStdDev(valid, nil)
	var volatilityCV *float64
	if mean != 0 {
		volatilityCV = models.Float64(round4(math.Abs(std / mean)))
	}

	// Trend looks at the most-recent half of the YoY changes.
	var trend string
	switch {
	case len(yoy) >= 2:
		recent := yoy[:len(yoy)/2+1]
		improving := 0
		for _, g := range recent {
			if g > 0 {
				improving++
			}
		}
		switch improving {
		case len(recent):
			trend = models.TrendImproving
		case 0:
			trend = models.TrendDeclining
		default:
			trend = models.TrendMixed
		}
	case len(yoy) == 1:
		if yoy[0] > 0 {
			trend = models.TrendImproving
		} else {
			trend = models.TrendDeclining
		}
	default:
		trend = models.TrendInsufficientData
	}

	var flags []string
	if volatilityCV != nil {
		if *volatilityCV > cvHighVolatility {
			flags = append(flags, fmt.Sprintf("high earnings volatility (CV=%.2f)", *volatilityCV))
		} else if *volatilityCV > cvModerateVolatility {
			flags = append(flags, fmt.Sprintf("moderate earnings volatility (CV=%.2f)", *volatilityCV))
		}
	}
	if trend == models.TrendDeclining {
		flags = append(flags, "earnings have been declining")
	}
	if mean < 0 {
		flags = append(flags, "average earnings are negative, ongoing losses")
	}
	negativeYears := 0
	for _, e := range valid {
		if e < 0 {
			negativeYears++
		}
	}
	if negativeYears >= 2 {
		flags = append(flags, fmt.Sprintf("%d of %d years showed negative earnings", negativeYears, totalYears))
	}

	score := 1.0
	if volatilityCV != nil {
		score -= math.Min(*volatilityCV*0.4, 0.4)
	}
	if trend == models.TrendDeclining {
		score -= 0.2
	} else if trend == models.TrendMixed {
		score -= 0.1
	}
	if len(yoy) > 0 {
		growthRatio := float64(positiveGrowthYears) / float64(len(yoy))
		score -= (1 - growthRatio) * 0.2
	}
	if mean < 0 {
		score -= 0.2
	}
	stabilityScore := round4(math.Max(0, math.Min(1, score)))

	var classification string
	var level models.RiskLevel
	switch {
	case stabilityScore >= stableCutoff:
		classification = models.EarningsStable
		level = models.RiskLow
	case stabilityScore >= moderatelyStableCutoff:
		classification = models.EarningsModeratelyStable
		level = models.RiskModerate
	case stabilityScore >= moderatelyVolatileCutoff:
		classification = models.EarningsModeratelyVolatile
		level = models.RiskModerate
	default:
		classification = models.EarningsHighlyVolatile
		level = models.RiskHigh
	}

	return &models.EarningsStability{
		StabilityScore:      &stabilityScore,
		Classification:      classification,
		EarningsSeries:      valid,
		YoYChanges:          yoy,
		PositiveGrowthYears: positiveGrowthYears,
		TotalYearsAnalyzed:  totalYears,
		VolatilityCV:        volatilityCV,
		Trend:               trend,
		Flags:               flags,
		Level:               level,
	}
}
