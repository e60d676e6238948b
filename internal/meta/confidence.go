package meta

import (
	"fmt"
	"math"

	"RiskScope/internal/domain/models"
)

// Baseline and hard clip range for the composite confidence score.
const (
	BaselineConfidence = 0.55
	MinConfidence      = 0.15
	MaxConfidence      = 0.95
)

// Named adjustments; signs are applied explicitly below.
const (
	adjEarningsStable       = 0.08
	adjEarningsModerate     = 0.02
	adjEarningsVolatile     = 0.10
	adjEarningsInsufficient = 0.05

	adjRiskLow  = 0.06
	adjRiskHigh = 0.10

	adjLowLeverage  = 0.04
	adjHighLeverage = 0.06

	adjDataComplete = 0.05
	adjDataPoor     = 0.08

	adjScenarioResilient = 0.04
	adjScenarioSensitive = 0.06

	adjRichFields       = 0.10
	adjMultiYearHistory = 0.08
	minRichFields       = 5
	minEarningsYears    = 3

	lowLeverageDE  = 0.5
	highLeverageDE = 2.0

	missingFractionThreshold = 0.60
)

// CalculateConfidence scores the reliability of a combined analysis output
// and returns the full factor-by-factor breakdown. The score starts at the
// baseline, each factor applies a named adjustment, and the result is
// clipped to [MinConfidence, MaxConfidence].
func CalculateConfidence(b *models.AnalysisBundle) *models.ConfidenceBreakdown {
	score := BaselineConfidence
	var factors []models.ConfidenceFactor

	apply := func(name string, adj float64, note string) {
		factors = append(factors, models.ConfidenceFactor{
			Factor:     name,
			Adjustment: round3(adj),
			Note:       note,
		})
		score += adj
	}

	applyModelAgreement(b, apply)
	applyEarningsStability(b, apply)
	applyRiskLevel(b, apply)
	applyLeverage(b, apply)
	applyDataCompleteness(b, apply)
	applyScenarioSensitivity(b, apply)
	applyDataRichness(b, apply)

	final := round3(math.Max(MinConfidence, math.Min(MaxConfidence, score)))
	return &models.ConfidenceBreakdown{
		Score:          final,
		Baseline:       BaselineConfidence,
		Factors:        factors,
		Interpretation: interpret(final),
	}
}

type applyFunc func(name string, adj float64, note string)

func applyModelAgreement(b *models.AnalysisBundle, apply applyFunc) {
	if b.Forecast == nil || !b.Forecast.Supported {
		apply("model_agreement", 0, "Forecast unavailable, no adjustment")
		return
	}
	result := EvaluateModelAgreement(b.Forecast)
	apply("model_agreement", result.ConfidenceAdjustment, result.Notes)
}

func applyEarningsStability(b *models.AnalysisBundle, apply applyFunc) {
	cls := models.EarningsInsufficientData
	if b.Risk != nil && b.Risk.Earnings.Classification != "" {
		cls = b.Risk.Earnings.Classification
	}
	switch cls {
	case "very_stable", models.EarningsStable:
		apply("earnings_stability", adjEarningsStable,
			fmt.Sprintf("Stable earnings history (classification=%s)", cls))
	case "moderate":
		apply("earnings_stability", adjEarningsModerate, "Moderate earnings stability")
	case "volatile", models.EarningsHighlyVolatile:
		apply("earnings_stability", -adjEarningsVolatile,
			fmt.Sprintf("Volatile earnings (classification=%s) reduces reliability", cls))
	default:
		apply("earnings_stability", -adjEarningsInsufficient,
			"Insufficient earnings history for reliable assessment")
	}
}

func applyRiskLevel(b *models.AnalysisBundle, apply applyFunc) {
	var overall models.RiskLevel
	if b.Risk != nil {
		overall = b.Risk.OverallRisk
	}
	switch overall {
	case models.RiskLow:
		apply("overall_risk", adjRiskLow, "Low overall risk increases score reliability")
	case models.RiskHigh:
		apply("overall_risk", -adjRiskHigh, "High overall risk, multiple elevated risk indicators")
	default:
		apply("overall_risk", 0, "Moderate risk level, neutral adjustment")
	}
}

func applyLeverage(b *models.AnalysisBundle, apply applyFunc) {
	var de *float64
	if b.Fundamentals != nil {
		de = b.Fundamentals.KPIs.DebtToEquity
	}
	if de == nil {
		apply("leverage", 0, "D/E ratio unavailable, no adjustment")
		return
	}
	switch {
	case *de < lowLeverageDE:
		apply("leverage", adjLowLeverage,
			fmt.Sprintf("Low leverage (D/E=%.2f) strengthens financial position", *de))
	case *de > highLeverageDE:
		apply("leverage", -adjHighLeverage,
			fmt.Sprintf("High leverage (D/E=%.2f) amplifies downside risk", *de))
	default:
		apply("leverage", 0, fmt.Sprintf("Moderate leverage (D/E=%.2f), neutral", *de))
	}
}

func applyDataCompleteness(b *models.AnalysisBundle, apply applyFunc) {
	if b.Fundamentals == nil {
		apply("data_completeness", -adjDataPoor, "No financial data found, very low data quality")
		return
	}
	fields := b.Fundamentals.Raw.CoreFields()
	total := len(fields)
	missing := 0
	for _, f := range fields {
		if f.Value == nil {
			missing++
		}
	}
	frac := float64(missing) / float64(total)
	switch {
	case frac > missingFractionThreshold:
		apply("data_completeness", -adjDataPoor,
			fmt.Sprintf("%d/%d financial fields missing (%.0f%%), incomplete data", missing, total, frac*100))
	case missing == 0:
		apply("data_completeness", adjDataComplete, "All financial fields available, high data quality")
	default:
		apply("data_completeness", 0,
			fmt.Sprintf("%d/%d fields missing (%.0f%%), acceptable", missing, total, frac*100))
	}
}

func applyScenarioSensitivity(b *models.AnalysisBundle, apply applyFunc) {
	var adjConf *float64
	if b.Scenario != nil {
		adjConf = b.Scenario.ForecastAdjustment.AdjustedConfidence
	}
	if adjConf == nil {
		apply("scenario_sensitivity", 0, "No scenario data, no adjustment")
		return
	}
	switch {
	case *adjConf >= 0.90:
		apply("scenario_sensitivity", adjScenarioResilient,
			fmt.Sprintf("Scenario-resilient (adjusted confidence=%.0f%%)", *adjConf*100))
	case *adjConf < 0.80:
		apply("scenario_sensitivity", -adjScenarioSensitive,
			fmt.Sprintf("High macro sensitivity (scenario confidence=%.0f%%), outcome highly dependent on macro conditions", *adjConf*100))
	default:
		apply("scenario_sensitivity", 0,
			fmt.Sprintf("Moderate scenario sensitivity (adjusted confidence=%.0f%%)", *adjConf*100))
	}
}

func applyDataRichness(b *models.AnalysisBundle, apply applyFunc) {
	var adj float64
	var notes []string

	if b.Fundamentals != nil {
		present := 0
		for _, f := range b.Fundamentals.Raw.CoreFields() {
			if f.Value != nil {
				present++
			}
		}
		if present >= minRichFields {
			adj += adjRichFields
			notes = append(notes, fmt.Sprintf("%d core fields available (+%.2f)", present, adjRichFields))
		}
	}
	if b.Risk != nil && b.Risk.Earnings.TotalYearsAnalyzed >= minEarningsYears {
		adj += adjMultiYearHistory
		notes = append(notes, fmt.Sprintf("%d years of earnings history (+%.2f)",
			b.Risk.Earnings.TotalYearsAnalyzed, adjMultiYearHistory))
	}

	if adj == 0 {
		apply("data_richness", 0, "Insufficient data richness, no boost applied")
		return
	}
	note := notes[0]
	if len(notes) > 1 {
		note += "; " + notes[1]
	}
	apply("data_richness", adj, note)
}

func interpret(score float64) string {
	switch {
	case score >= 0.80:
		return "High confidence: strong data quality and model agreement."
	case score >= 0.65:
		return "Moderate-high confidence: reliable signals, minor gaps."
	case score >= 0.50:
		return "Moderate confidence: some uncertainty factors present."
	case score >= 0.35:
		return "Low confidence: significant data gaps or risk factors."
	}
	return "Very low confidence: treat all outputs with caution."
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
