package meta

import (
	"fmt"
	"strings"

	"RiskScope/internal/domain/models"
)

// Uncertainty thresholds.
const (
	missingDataFraction     = 0.60
	highVolatilityCV        = 0.30
	highScenarioSensitivity = 0.80
	minDataQualityNotes     = 5
)

// IdentifyUncertainties scans every dimension of the combined analysis for
// conditions that reduce output reliability. Flags are informational; the
// result is always non-nil.
func IdentifyUncertainties(b *models.AnalysisBundle) []models.UncertaintyFlag {
	flags := []models.UncertaintyFlag{}

	flagMissingFinancialData(&flags, b)
	flagVolatileEarnings(&flags, b)
	flagScenarioSensitivity(&flags, b)
	flagModelDisagreement(&flags, b)
	flagDataQualityNotes(&flags, b)
	flagUnknownRiskComponents(&flags, b)
	flagForecastUnavailable(&flags, b)
	flagPeerGroupMissing(&flags, b)

	return flags
}

func flagMissingFinancialData(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Fundamentals == nil {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "missing_data",
			Severity: models.FlagHigh,
			Field:    "fundamentals",
			Message:  "No financial data available, all analysis is based on defaults.",
		})
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
	if frac > missingDataFraction {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "missing_data",
			Severity: models.FlagMedium,
			Field:    "raw_financials",
			Message: fmt.Sprintf(
				"%d/%d core financial fields unavailable (%.0f%%). Fundamental analysis may be incomplete or unreliable.",
				missing, total, frac*100),
		})
	}
}

func flagVolatileEarnings(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Risk == nil {
		return
	}
	stab := b.Risk.Earnings
	cls := stab.Classification
	years := stab.TotalYearsAnalyzed

	if cls == models.EarningsHighlyVolatile || cls == "volatile" {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "volatile_earnings",
			Severity: models.FlagHigh,
			Field:    "earnings_stability",
			Message: fmt.Sprintf(
				"Earnings classified as '%s' over %d years. High earnings volatility reduces forecast reliability.",
				cls, years),
		})
	} else if cls == models.EarningsInsufficientData || (years > 0 && years < minEarningsYears) {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "insufficient_earnings_history",
			Severity: models.FlagMedium,
			Field:    "earnings_stability",
			Message: fmt.Sprintf(
				"Only %d year(s) of earnings data available (minimum %d required for reliable stability assessment).",
				years, minEarningsYears),
		})
	}

	if stab.VolatilityCV != nil && *stab.VolatilityCV > highVolatilityCV {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "high_earnings_volatility_cv",
			Severity: models.FlagMedium,
			Field:    "earnings_stability.volatility_cv",
			Message: fmt.Sprintf(
				"Earnings coefficient of variation is high (CV=%.2f). The earnings series is unpredictable and forecasts have wider error bands.",
				*stab.VolatilityCV),
		})
	}
}

func flagScenarioSensitivity(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Scenario == nil {
		return
	}
	adjConf := b.Scenario.ForecastAdjustment.AdjustedConfidence
	if adjConf != nil && *adjConf < highScenarioSensitivity {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "high_scenario_sensitivity",
			Severity: models.FlagMedium,
			Field:    "scenario.forecast_adjustment",
			Message: fmt.Sprintf(
				"Scenario analysis reduces forecast confidence to %.0f%%. Company shows elevated sensitivity to macro stress conditions.",
				*adjConf*100),
		})
	}

	if b.Scenario.MarginStress.State == models.MarginLossMaking {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "stress_loss_risk",
			Severity: models.FlagHigh,
			Field:    "scenario.margin_stress",
			Message: "Company becomes loss-making under the stress scenario. " +
				"Significant financial fragility under adverse macro conditions.",
		})
	}
}

func flagModelDisagreement(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Forecast == nil {
		return
	}
	result := EvaluateModelAgreement(b.Forecast)
	if result.Agreement || result.DirectionMatch {
		return
	}
	known := make([]string, 0, len(result.Signals))
	for _, s := range result.Signals {
		if s.Direction != "unknown" {
			known = append(known, fmt.Sprintf("%s=%s", s.Name, strings.ToUpper(s.Direction)))
		}
	}
	if len(known) < 2 {
		return
	}
	*flags = append(*flags, models.UncertaintyFlag{
		Type:     "model_disagreement",
		Severity: models.FlagHigh,
		Field:    "forecast.sub_models",
		Message: fmt.Sprintf(
			"Forecast sub-models disagree: %s. Treat directional forecast with elevated skepticism.",
			strings.Join(known, ", ")),
	})
}

func flagDataQualityNotes(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Fundamentals == nil {
		return
	}
	n := len(b.Fundamentals.DataQualityNotes)
	if n >= minDataQualityNotes {
		*flags = append(*flags, models.UncertaintyFlag{
			Type:     "data_quality",
			Severity: models.FlagMedium,
			Field:    "fundamentals.data_quality_notes",
			Message: fmt.Sprintf(
				"%d financial data quality issue(s) detected. Financial analysis is working with incomplete market data.",
				n),
		})
	}
}

func flagUnknownRiskComponents(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Risk == nil {
		return
	}
	var unknown []string
	if b.Risk.Leverage.Level == models.RiskUnknown {
		unknown = append(unknown, "leverage")
	}
	if b.Risk.Liquidity.Level == models.RiskUnknown {
		unknown = append(unknown, "liquidity")
	}
	if b.Risk.Earnings.Level == models.RiskUnknown {
		unknown = append(unknown, "earnings stability")
	}
	if len(unknown) == 0 {
		return
	}
	*flags = append(*flags, models.UncertaintyFlag{
		Type:     "unknown_risk_components",
		Severity: models.FlagLow,
		Field:    "risk",
		Message: fmt.Sprintf(
			"Risk assessment incomplete for: %s. These areas could not be evaluated due to missing data.",
			strings.Join(unknown, ", ")),
	})
}

func flagForecastUnavailable(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.Forecast == nil || b.Forecast.Supported {
		return
	}
	msg := b.Forecast.Message
	if msg == "" {
		msg = "This ticker is not in the forecasting model universe. Price direction analysis is unavailable."
	}
	*flags = append(*flags, models.UncertaintyFlag{
		Type:     "forecast_unavailable",
		Severity: models.FlagLow,
		Field:    "forecast",
		Message:  msg,
	})
}

func flagPeerGroupMissing(flags *[]models.UncertaintyFlag, b *models.AnalysisBundle) {
	if b.PeerComparison != nil && len(b.PeerComparison.PeerGroup) > 0 {
		return
	}
	*flags = append(*flags, models.UncertaintyFlag{
		Type:     "no_peer_group",
		Severity: models.FlagLow,
		Field:    "peer_comparison",
		Message: "No peer group defined for this ticker. " +
			"Relative valuation and peer benchmarking are unavailable.",
	})
}
