package riskengine

import (
	"fmt"
	"strings"

	"RiskScope/internal/domain/models"
)

// Compound risk detection thresholds.
const (
	hiddenHighDE      = 2.0
	hiddenHighPE      = 40.0
	hiddenLowCR       = 1.25
	hiddenLowFCFYield = 0.01
	hiddenHighBeta    = 1.5
	hiddenWeakMargin  = 5.0
	hiddenAccrualNI   = 0.3
)

// DetectHiddenRisks surfaces compound risks that single-metric analysis
// misses: leverage paired with weak liquidity, accrual-heavy profits, thin
// margins under debt load, stretched valuations and high market sensitivity.
// The result is always non-nil.
func DetectHiddenRisks(f *models.Fundamentals) []string {
	risks := []string{}

	de := f.KPIs.DebtToEquity
	cr := f.KPIs.CurrentRatio
	netMargin := f.KPIs.NetProfitMargin
	opMargin := f.KPIs.OperatingMargin
	fcf := f.Raw.FreeCashFlow
	netIncome := f.Raw.NetIncome
	totalDebt := f.Raw.TotalDebt
	marketCap := f.Raw.MarketCap
	pe := f.KPIs.PERatio
	beta := f.KPIs.Beta

	if de != nil && *de > hiddenHighDE && cr != nil && *cr < hiddenLowCR {
		risks = append(risks, fmt.Sprintf(
			"combined leverage and liquidity stress: high D/E (%.2fx) alongside weak current ratio (%.2fx), company may struggle to service short-term obligations",
			*de, *cr))
	}

	if netIncome != nil && *netIncome > 0 && fcf != nil {
		if *fcf < 0 {
			risks = append(risks, fmt.Sprintf(
				"earnings quality risk: company reports positive net income ($%.0f) but generates negative free cash flow ($%.0f), profits may be non-cash or accrual-driven",
				*netIncome, *fcf))
		} else if *fcf < *netIncome*hiddenAccrualNI {
			ratio := *fcf / *netIncome
			risks = append(risks, fmt.Sprintf(
				"low cash conversion: FCF is only %.0f%% of net income, reported profits are significantly ahead of actual cash generated",
				ratio*100))
		}
	}

	if opMargin != nil && *opMargin >= 0 && *opMargin < hiddenWeakMargin {
		risks = append(risks, fmt.Sprintf(
			"thin operating margin (%.1f%%), small revenue decline or cost increase could push the company into operating losses",
			*opMargin))
	}

	if totalDebt != nil && *totalDebt > 0 && netMargin != nil && *netMargin < 5.0 {
		risks = append(risks, fmt.Sprintf(
			"debt serviceability risk: total debt of $%.0f with a net margin of only %.1f%%, limited earnings buffer to cover debt obligations",
			*totalDebt, *netMargin))
	}

	if pe != nil && *pe > hiddenHighPE {
		if marketCap != nil && fcf != nil && *marketCap > 0 {
			fcfYield := *fcf / *marketCap
			if fcfYield < hiddenLowFCFYield {
				risks = append(risks, fmt.Sprintf(
					"valuation risk: PE of %.1fx with FCF yield of %.2f%%, stock is priced for flawless execution and any earnings miss could trigger sharp repricing",
					*pe, fcfYield*100))
			}
		} else {
			risks = append(risks, fmt.Sprintf(
				"valuation risk: high PE ratio (%.1fx), elevated expectations leave little margin for earnings disappointment",
				*pe))
		}
	}

	if netMargin != nil && opMargin != nil && *netMargin < 3.0 && *opMargin < 5.0 &&
		!strings.Contains(strings.Join(risks, " "), "thin operating margin") {
		risks = append(risks, fmt.Sprintf(
			"margin compression risk: both net margin (%.1f%%) and operating margin (%.1f%%) are critically thin, vulnerable to cost shocks or pricing pressure",
			*netMargin, *opMargin))
	}

	if beta != nil && *beta > hiddenHighBeta {
		risks = append(risks, fmt.Sprintf(
			"high market sensitivity: beta of %.2f, stock is susceptible to amplified losses during broad market downturns",
			*beta))
	}

	return risks
}
