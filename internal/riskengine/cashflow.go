package riskengine

import (
	"fmt"

	"RiskScope/internal/domain/models"
)

// Earnings conversion thresholds.
const (
	fcfEarningsRatioLow    = 0.5
	fcfEarningsRatioStrong = 1.0
)

const cashflowMaxPoints = 9

// AnalyzeCashflow assesses cash generation quality: free cash flow sign,
// conversion of net income into cash, and operating income vs FCF mismatches
// that point at capex burden or accrual-heavy earnings.
func AnalyzeCashflow(f *models.Fundamentals) *models.CashflowAssessment {
	var flags []string
	var points float64

	fcf := f.Raw.FreeCashFlow
	netIncome := f.Raw.NetIncome
	opIncome := f.Raw.OperatingIncome

	if fcf != nil {
		switch {
		case *fcf < 0:
			flags = append(flags, fmt.Sprintf("negative free cash flow ($%.0f), company is burning more cash than it generates", *fcf))
			points += 3
		case *fcf == 0:
			flags = append(flags, "zero free cash flow, no cash surplus generated")
			points += 1
		default:
			flags = append(flags, fmt.Sprintf("positive free cash flow ($%.0f), healthy cash generation", *fcf))
		}
	} else {
		flags = append(flags, "free cash flow data unavailable")
		points += 1
	}

	var fcfToNI *float64
	if fcf != nil && netIncome != nil && *netIncome != 0 {
		ratio := round4(*fcf / *netIncome)
		fcfToNI = &ratio
		switch {
		case ratio < 0:
			flags = append(flags, fmt.Sprintf("negative FCF-to-earnings ratio (%.2f), profits are not translating to real cash", ratio))
			points += 3
		case ratio < fcfEarningsRatioLow:
			flags = append(flags, fmt.Sprintf("low FCF-to-earnings ratio (%.2f), only %.0f%% of reported earnings converted to free cash flow", ratio, ratio*100))
			points += 2
		case ratio >= fcfEarningsRatioStrong:
			flags = append(flags, fmt.Sprintf("strong cash conversion, FCF exceeds net income (ratio: %.2f)", ratio))
		}
	} else if netIncome != nil && *netIncome <= 0 {
		flags = append(flags, "net income is non-positive, earnings quality ratio not meaningful")
		if fcf == nil || *fcf <= 0 {
			points += 2
		}
	}

	if opIncome != nil && fcf != nil {
		if *opIncome > 0 && *fcf < 0 {
			flags = append(flags, "operating income is positive but FCF is negative, possible large capex burden or working capital drain")
			points += 2
		} else if *opIncome > 0 && *fcf < *opIncome*0.3 {
			flags = append(flags, fmt.Sprintf("FCF ($%.0f) is significantly below operating income ($%.0f), high capex or accruals consuming earnings", *fcf, *opIncome))
			points += 1
		}
	}

	level, score := classify(points, cashflowMaxPoints)

	details := "FCF unavailable. "
	if fcf != nil {
		details = fmt.Sprintf("FCF: $%.0f. ", *fcf)
	}
	if fcfToNI != nil {
		details += fmt.Sprintf("FCF/Net Income: %.2f. ", *fcfToNI)
	}
	details += fmt.Sprintf("Cash flow risk: %s.", level)

	return &models.CashflowAssessment{
		RiskAssessment: models.RiskAssessment{
			Level:   level,
			Score:   score,
			Details: details,
			Flags:   flags,
		},
		FCFToNetIncome: fcfToNI,
		FreeCashFlow:   fcf,
	}
}
