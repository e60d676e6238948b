package models

// ScenarioAssumptions is an immutable set of deterministic adjustment factors
// for one macroeconomic scenario. Impact fields are fractions (-0.05 = -5%);
// RiskAmplifier and ConfidenceFactor are multipliers.
type ScenarioAssumptions struct {
	Key                   string  `json:"key"`
	Label                 string  `json:"label"`
	Description           string  `json:"description"`
	RevenueGrowthImpact   float64 `json:"revenue_growth_impact"`
	MarginImpact          float64 `json:"margin_impact"`
	ConfidenceFactor      float64 `json:"confidence_factor"`
	MovementImpact        float64 `json:"movement_impact"`
	RiskAmplifier         float64 `json:"risk_amplifier"`
	InterestCostImpactAdd float64 `json:"interest_cost_impact_add"`
}

// GrowthDirection labels for stressed revenue growth.
const (
	GrowthGrowing   = "growing"
	GrowthDeclining = "declining"
	GrowthFlat      = "flat"
	GrowthUnknown   = "unknown"
)

// MarginState classifies a stressed net margin.
type MarginState string

const (
	MarginHealthy    MarginState = "healthy"
	MarginThin       MarginState = "thin"
	MarginVeryThin   MarginState = "very_thin"
	MarginLossMaking MarginState = "loss_making"
	MarginUnknown    MarginState = "unknown"
)

// Forecast direction labels after scenario adjustment.
const (
	DirectionBullish = "bullish"
	DirectionBearish = "bearish"
	DirectionNeutral = "neutral"
	DirectionUnknown = "unknown"
)

// RevenueStress is the stress-adjusted revenue growth projection. All growth
// values are in percent; AdjustmentPP is the percentage-point delta applied.
type RevenueStress struct {
	BaseGrowth     *float64 `json:"base_growth"`
	AdjustmentPP   float64  `json:"scenario_adjustment_pp"`
	AdjustedGrowth *float64 `json:"adjusted_growth"`
	Direction      string   `json:"growth_direction"`
	Notes          string   `json:"notes"`
}

// MarginStress is the stress-adjusted net margin projection.
type MarginStress struct {
	BaseMargin     *float64    `json:"base_margin"`
	AdjustmentPP   float64     `json:"scenario_adjustment_pp"`
	AdjustedMargin *float64    `json:"adjusted_margin"`
	State          MarginState `json:"margin_state"`
	Notes          string      `json:"notes"`
}

// LeverageStress describes how leverage risk amplifies under a scenario.
// AtRisk is true iff the stressed level is high or critical.
type LeverageStress struct {
	BaseDERatio            *float64  `json:"base_de_ratio"`
	Scenario               string    `json:"scenario"`
	RiskAmplifier          float64   `json:"risk_amplifier"`
	InterestCostIncreasePP float64   `json:"interest_cost_increase_pp"`
	BaseRiskLevel          RiskLevel `json:"base_risk_level"`
	StressedRiskLevel      RiskLevel `json:"stressed_risk_level"`
	StressedRiskScore      *float64  `json:"stressed_risk_score"`
	AtRisk                 bool      `json:"at_risk"`
	Notes                  string    `json:"notes"`
}

// ForecastAdjustment is the baseline forecast rescaled for a scenario.
// Synthesized marks a directional stub built without a baseline forecast.
type ForecastAdjustment struct {
	BaseExpectedMovement     *float64 `json:"base_expected_movement"`
	AdjustedExpectedMovement *float64 `json:"adjusted_expected_movement"`
	BaseConfidence           *float64 `json:"base_confidence"`
	AdjustedConfidence       *float64 `json:"adjusted_confidence"`
	Scenario                 string   `json:"scenario"`
	MovementAdjustmentPP     float64  `json:"movement_adjustment_pp"`
	ConfidenceFactor         float64  `json:"confidence_factor"`
	Direction                string   `json:"direction"`
	Synthesized              bool     `json:"synthesized,omitempty"`
	Notes                    string   `json:"notes"`
}

// ScenarioReport is the full scenario stress test output for one company.
type ScenarioReport struct {
	Ticker              string             `json:"ticker"`
	Scenario            string             `json:"scenario"`
	ScenarioLabel       string             `json:"scenario_label"`
	ScenarioDescription string             `json:"scenario_description"`
	RevenueStress       RevenueStress      `json:"revenue_stress"`
	MarginStress        MarginStress       `json:"margin_stress"`
	LeverageStress      LeverageStress     `json:"leverage_stress"`
	ForecastAdjustment  ForecastAdjustment `json:"forecast_adjustment"`
	RiskOutlook         string             `json:"risk_outlook"`
	Summary             []string           `json:"summary"`
	AnalysisErrors      []string           `json:"analysis_errors"`
}
