package scenario

import (
	"fmt"

	"RiskScope/internal/domain/models"
)

// Inputs are the baseline values a scenario run stresses. Nil fields mark
// unavailable data and degrade the corresponding transform, never the run.
type Inputs struct {
	RevenueGrowthYoY *float64
	NetProfitMargin  *float64
	DebtToEquity     *float64
	ForecastMovement *float64
	ForecastConf     *float64
	HasForecast      bool
}

// Run executes the full stress pipeline for one ticker and scenario:
// revenue, margin and leverage stress, forecast adjustment, then the
// combined outlook and summary.
func Run(ticker string, s models.ScenarioAssumptions, in Inputs) *models.ScenarioReport {
	revenue := StressRevenue(in.RevenueGrowthYoY, s)
	margin := StressMargin(in.NetProfitMargin, s)
	leverage := StressLeverage(in.DebtToEquity, s)

	var forecast *models.ForecastAdjustment
	if in.HasForecast {
		forecast = StressForecast(in.ForecastMovement, in.ForecastConf, s)
	} else {
		forecast = SynthesizeForecast(s)
	}

	return &models.ScenarioReport{
		Ticker:              ticker,
		Scenario:            s.Key,
		ScenarioLabel:       s.Label,
		ScenarioDescription: s.Description,
		RevenueStress:       *revenue,
		MarginStress:        *margin,
		LeverageStress:      *leverage,
		ForecastAdjustment:  *forecast,
		RiskOutlook:         buildOutlook(s, revenue, margin, leverage),
		Summary:             buildSummary(s.Key, revenue, margin, leverage, forecast),
		AnalysisErrors:      []string{},
	}
}

func buildOutlook(s models.ScenarioAssumptions, revenue *models.RevenueStress, margin *models.MarginStress, leverage *models.LeverageStress) string {
	marginStressed := margin.State == models.MarginLossMaking || margin.State == models.MarginVeryThin

	switch {
	case leverage.AtRisk && marginStressed:
		return fmt.Sprintf("severe risk amplification under %s: earnings and debt servicing both threatened", s.Label)
	case leverage.AtRisk:
		return fmt.Sprintf("elevated leverage risk under %s: debt servicing pressure increases materially", s.Label)
	case revenue.AdjustedGrowth != nil && *revenue.AdjustedGrowth < 0:
		return fmt.Sprintf("revenue likely to contract under %s: earnings outlook deteriorates", s.Label)
	case marginStressed:
		return fmt.Sprintf("margin compression under %s creates profitability risk", s.Label)
	}
	return fmt.Sprintf("moderate risk increase expected under %s: monitor closely", s.Label)
}

func buildSummary(key string, revenue *models.RevenueStress, margin *models.MarginStress, leverage *models.LeverageStress, forecast *models.ForecastAdjustment) []string {
	var points []string

	if revenue.AdjustedGrowth != nil {
		if *revenue.AdjustedGrowth < 0 {
			points = append(points, fmt.Sprintf("revenue expected to decline to %.1f%% growth under this scenario", *revenue.AdjustedGrowth))
		} else {
			points = append(points, fmt.Sprintf("revenue growth moderates to %.1f%% under this scenario", *revenue.AdjustedGrowth))
		}
	}

	if margin.AdjustedMargin != nil {
		switch margin.State {
		case models.MarginLossMaking:
			points = append(points, fmt.Sprintf("profit margins compress to %.1f%%, operating loss territory", *margin.AdjustedMargin))
		case models.MarginVeryThin:
			points = append(points, fmt.Sprintf("margins thin to %.1f%%, minimal buffer against further shocks", *margin.AdjustedMargin))
		default:
			points = append(points, fmt.Sprintf("net margin adjusts to %.1f%% under cost and demand pressure", *margin.AdjustedMargin))
		}
	}

	if leverage.StressedRiskLevel != models.RiskUnknown {
		if leverage.AtRisk {
			points = append(points, fmt.Sprintf("leverage risk escalates to '%s', increased debt servicing burden under this scenario", leverage.StressedRiskLevel))
		} else {
			points = append(points, fmt.Sprintf("leverage stress remains at '%s', manageable under this scenario", leverage.StressedRiskLevel))
		}
	}

	switch forecast.Direction {
	case models.DirectionBearish, models.DirectionBullish:
		cf := ""
		if forecast.AdjustedConfidence != nil && *forecast.AdjustedConfidence != 0 {
			cf = fmt.Sprintf(" (confidence: %.0f%%)", *forecast.AdjustedConfidence*100)
		}
		points = append(points, fmt.Sprintf("forecast outlook turns %s under this scenario%s", forecast.Direction, cf))
	case models.DirectionNeutral:
		points = append(points, "forecast directional bias remains broadly neutral under this scenario")
	}

	if len(points) == 0 {
		points = append(points, fmt.Sprintf("limited quantitative data available to assess '%s' impact", key))
	}
	return points
}
