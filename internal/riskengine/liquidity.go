package riskengine

import (
	"fmt"

	"RiskScope/internal/domain/models"
)

// Current ratio thresholds.
const (
	criticalCR = 0.75
	lowCR      = 1.0
	moderateCR = 1.5
)

const liquidityMaxPoints = 9

// AnalyzeLiquidity assesses short-term solvency from the current ratio,
// working capital and the sign of free cash flow.
func AnalyzeLiquidity(f *models.Fundamentals) *models.LiquidityAssessment {
	var flags []string
	var points float64

	currentRatio := f.KPIs.CurrentRatio
	currentAssets := f.Raw.CurrentAssets
	currentLiabilities := f.Raw.CurrentLiabilities
	fcf := f.Raw.FreeCashFlow

	var workingCapital *float64
	if currentAssets != nil && currentLiabilities != nil {
		workingCapital = models.Float64(*currentAssets - *currentLiabilities)
	}

	if currentRatio != nil {
		switch {
		case *currentRatio < criticalCR:
			flags = append(flags, fmt.Sprintf("critical current ratio of %.2fx, current assets cover less than 75%% of current liabilities", *currentRatio))
			points += 4
		case *currentRatio < lowCR:
			flags = append(flags, fmt.Sprintf("weak current ratio of %.2fx, current liabilities exceed current assets", *currentRatio))
			points += 3
		case *currentRatio < moderateCR:
			flags = append(flags, fmt.Sprintf("below-average current ratio of %.2fx, liquidity is adequate but thin", *currentRatio))
			points += 1
		default:
			flags = append(flags, fmt.Sprintf("healthy current ratio of %.2fx", *currentRatio))
		}
	} else {
		flags = append(flags, "current ratio unavailable, liquidity assessment is limited")
		points += 1
	}

	if workingCapital != nil && *workingCapital < 0 {
		flags = append(flags, fmt.Sprintf("negative working capital ($%.0f), operating cycle cannot be self-funded from current assets", *workingCapital))
		points += 2
	}

	if fcf != nil {
		if *fcf < 0 {
			flags = append(flags, fmt.Sprintf("negative free cash flow ($%.0f), company is consuming more cash than it generates", *fcf))
			points += 2
		} else {
			flags = append(flags, fmt.Sprintf("positive free cash flow ($%.0f) supports liquidity", *fcf))
		}
	} else {
		flags = append(flags, "free cash flow data unavailable")
	}

	level, score := classify(points, liquidityMaxPoints)

	details := ""
	if currentRatio != nil {
		details += fmt.Sprintf("Current ratio: %.2fx. ", *currentRatio)
	}
	if workingCapital != nil {
		details += fmt.Sprintf("Working capital: $%.0f. ", *workingCapital)
	}
	details += fmt.Sprintf("Liquidity risk: %s.", level)

	return &models.LiquidityAssessment{
		RiskAssessment: models.RiskAssessment{
			Level:   level,
			Score:   score,
			Details: details,
			Flags:   flags,
		},
		CurrentRatio:   currentRatio,
		WorkingCapital: workingCapital,
	}
}
