package meta

import (
	"fmt"

	"RiskScope/internal/domain/models"
)

// Contradiction thresholds.
const (
	bullishProbThreshold = 0.60
	weakMarginThreshold  = 5.0
	highDEThreshold      = 2.0
	highGrowthThreshold  = 15.0
	highMarginThreshold  = 15.0
	highPEThreshold      = 30.0
	lowGrowthThreshold   = 5.0
	highForecastConf     = 0.70
)

// DetectContradictions runs every cross-signal consistency check against the
// combined analysis output. Checks with missing inputs are skipped; the
// result is always non-nil.
func DetectContradictions(b *models.AnalysisBundle) []models.Contradiction {
	out := []models.Contradiction{}

	checkBullishForecastWeakFundamentals(&out, b)
	checkHighGrowthRisingLeverage(&out, b)
	checkProfitableNegativeCashflow(&out, b)
	checkBullishOutlookHighRisk(&out, b)
	checkBullishTrendScenarioSensitivity(&out, b)
	checkPositiveOutlookMarginStress(&out, b)
	checkStrongForecastVolatileEarnings(&out, b)
	checkHighPEWeakGrowth(&out, b)

	return out
}

// Strong bullish forecast but fundamentals show weak profitability.
func checkBullishForecastWeakFundamentals(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Forecast == nil || b.Fundamentals == nil {
		return
	}
	probUp := b.Forecast.ProbUp
	nm := b.Fundamentals.KPIs.NetProfitMargin
	if probUp == nil || nm == nil {
		return
	}
	if *probUp >= bullishProbThreshold && *nm < weakMarginThreshold {
		*out = append(*out, models.Contradiction{
			Type:     "forecast_vs_fundamentals",
			Severity: models.SeverityWarning,
			SignalA:  fmt.Sprintf("forecast prob_up=%.0f%% (bullish)", *probUp*100),
			SignalB:  fmt.Sprintf("net margin=%.1f%% (weak)", *nm),
			Message: fmt.Sprintf(
				"Model forecasts bullish price move (%.0f%% probability up) but net profit margin is only %.1f%%, which may not be fundamentally justified.",
				*probUp*100, *nm),
		})
	}
}

// High revenue growth paired with high debt, possibly debt-funded growth.
func checkHighGrowthRisingLeverage(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Fundamentals == nil {
		return
	}
	growth := b.Fundamentals.KPIs.RevenueGrowthYoY
	de := b.Fundamentals.KPIs.DebtToEquity
	if growth == nil || de == nil {
		return
	}
	if *growth > highGrowthThreshold && *de > highDEThreshold {
		*out = append(*out, models.Contradiction{
			Type:     "growth_vs_leverage",
			Severity: models.SeverityWarning,
			SignalA:  fmt.Sprintf("revenue growth=%.1f%% (high)", *growth),
			SignalB:  fmt.Sprintf("D/E ratio=%.2f (elevated)", *de),
			Message: fmt.Sprintf(
				"High revenue growth (%.1f%%) appears to be partially debt-funded (D/E=%.2f). Leverage amplifies downside risk.",
				*growth, *de),
		})
	}
}

// Profitable on the income statement but FCF is negative.
func checkProfitableNegativeCashflow(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Fundamentals == nil {
		return
	}
	nm := b.Fundamentals.KPIs.NetProfitMargin
	fcf := b.Fundamentals.Raw.FreeCashFlow
	if nm == nil || fcf == nil {
		return
	}
	if *nm > highMarginThreshold && *fcf < 0 {
		*out = append(*out, models.Contradiction{
			Type:     "profitability_vs_cashflow",
			Severity: models.SeverityCritical,
			SignalA:  fmt.Sprintf("net margin=%.1f%% (strong profitability)", *nm),
			SignalB:  fmt.Sprintf("free cash flow=%.0f (negative)", *fcf),
			Message: fmt.Sprintf(
				"Reports strong net margin (%.1f%%) but free cash flow is negative (%.0f). This suggests potential earnings quality issues where accruals exceed cash generation.",
				*nm, *fcf),
		})
	}
}

// Positive outlook but overall risk is high.
func checkBullishOutlookHighRisk(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Insights == nil || b.Risk == nil {
		return
	}
	outlook := b.Insights.Outlook
	if (outlook == "positive" || outlook == "moderately_positive") && b.Risk.OverallRisk == models.RiskHigh {
		*out = append(*out, models.Contradiction{
			Type:     "outlook_vs_risk",
			Severity: models.SeverityCritical,
			SignalA:  fmt.Sprintf("outlook=%s", outlook),
			SignalB:  "overall risk=HIGH",
			Message: fmt.Sprintf(
				"Outlook is '%s' but overall risk rating is HIGH. Multiple risk indicators are elevated and the positive outlook may not be sustainable.",
				outlook),
		})
	}
}

// Bullish base forecast turns bearish under the stress scenario.
func checkBullishTrendScenarioSensitivity(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Forecast == nil || b.Scenario == nil {
		return
	}
	baseDir := normalizeDirection(b.Forecast.Direction)
	scenDir := b.Scenario.ForecastAdjustment.Direction
	if baseDir == "up" && scenDir == models.DirectionBearish {
		*out = append(*out, models.Contradiction{
			Type:     "forecast_vs_scenario",
			Severity: models.SeverityWarning,
			SignalA:  "base forecast direction: bullish",
			SignalB:  fmt.Sprintf("%s scenario: bearish directional bias", b.Scenario.Scenario),
			Message: "Forecast is bullish under base conditions but turns bearish under the stress scenario, showing significant macro sensitivity. " +
				"The bull case is conditional on a benign macro environment.",
		})
	}
}

// Positive outlook but the company turns loss-making under stress.
func checkPositiveOutlookMarginStress(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Insights == nil || b.Scenario == nil {
		return
	}
	outlook := b.Insights.Outlook
	ms := b.Scenario.MarginStress
	if (outlook == "positive" || outlook == "moderately_positive") && ms.State == models.MarginLossMaking {
		adj := "n/a"
		if ms.AdjustedMargin != nil {
			adj = fmt.Sprintf("%.1f", *ms.AdjustedMargin)
		}
		*out = append(*out, models.Contradiction{
			Type:     "outlook_vs_stress",
			Severity: models.SeverityCritical,
			SignalA:  fmt.Sprintf("outlook=%s", outlook),
			SignalB:  fmt.Sprintf("scenario margin state=%s (adj margin=%s)", ms.State, adj),
			Message: fmt.Sprintf(
				"Outlook is '%s' but the company becomes loss-making under the stress scenario (stressed margin: %s%%). Risk of significant reversal under a macro shock.",
				outlook, adj),
		})
	}
}

// High forecast confidence despite historically volatile earnings.
func checkStrongForecastVolatileEarnings(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Forecast == nil || b.Risk == nil {
		return
	}
	conf := b.Forecast.Confidence
	cls := b.Risk.Earnings.Classification
	if conf == nil || *conf <= highForecastConf {
		return
	}
	if cls == models.EarningsHighlyVolatile || cls == "volatile" {
		*out = append(*out, models.Contradiction{
			Type:     "forecast_vs_earnings_stability",
			Severity: models.SeverityWarning,
			SignalA:  fmt.Sprintf("forecast confidence=%.0f%% (high)", *conf*100),
			SignalB:  fmt.Sprintf("earnings stability=%s", cls),
			Message: fmt.Sprintf(
				"Forecast confidence is high (%.0f%%) but historical earnings are %s. High forecast confidence may be overstated given the unpredictable earnings history.",
				*conf*100, cls),
		})
	}
}

// Premium valuation without the growth to support it.
func checkHighPEWeakGrowth(out *[]models.Contradiction, b *models.AnalysisBundle) {
	if b.Fundamentals == nil {
		return
	}
	pe := b.Fundamentals.KPIs.PERatio
	growth := b.Fundamentals.KPIs.RevenueGrowthYoY
	if pe == nil || growth == nil {
		return
	}
	if *pe > highPEThreshold && *growth < lowGrowthThreshold {
		*out = append(*out, models.Contradiction{
			Type:     "valuation_vs_growth",
			Severity: models.SeverityWarning,
			SignalA:  fmt.Sprintf("PE ratio=%.1f (premium valuation)", *pe),
			SignalB:  fmt.Sprintf("revenue growth=%.1f%% (low)", *growth),
			Message: fmt.Sprintf(
				"Trades at a premium P/E of %.1fx but revenue growth is only %.1f%%. The premium valuation lacks a high-growth justification and faces compression risk if growth disappoints.",
				*pe, *growth),
		})
	}
}
