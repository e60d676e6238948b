package models

// RiskLevel is the graded classification shared by all risk analyzers.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
	RiskUnknown  RiskLevel = "unknown"
)

// AnalysisStatus distinguishes a fully computed report from one where some
// sub-analyses degraded to defaults. A report is never "failed": as long as
// one sub-analysis produced a value the caller gets a full-shaped result.
type AnalysisStatus string

const (
	StatusComplete AnalysisStatus = "complete"
	StatusPartial  AnalysisStatus = "partial"
)

// RiskAssessment is the common result shape of every per-dimension analyzer.
// Score is 0-10 with 10 the highest risk and stays consistent with Level.
type RiskAssessment struct {
	Level   RiskLevel `json:"risk_level"`
	Score   float64   `json:"risk_score"`
	Details string    `json:"details"`
	Flags   []string  `json:"flags"`
}

// LeverageAssessment is the leverage analyzer's result.
type LeverageAssessment struct {
	RiskAssessment
	DebtToEquity *float64 `json:"debt_to_equity"`
	DebtToAssets *float64 `json:"debt_to_assets"`
}

// LiquidityAssessment is the liquidity analyzer's result.
type LiquidityAssessment struct {
	RiskAssessment
	CurrentRatio   *float64 `json:"current_ratio"`
	WorkingCapital *float64 `json:"working_capital"`
}

// CashflowAssessment is the cash flow analyzer's result.
type CashflowAssessment struct {
	RiskAssessment
	FCFToNetIncome *float64 `json:"fcf_to_net_income_ratio"`
	FreeCashFlow   *float64 `json:"free_cash_flow"`
}

// EarningsStability describes historical earnings volatility and trend.
// StabilityScore is nil when fewer than two years of data were available;
// the Classification then reads "insufficient_data" rather than a guess.
type EarningsStability struct {
	StabilityScore      *float64  `json:"stability_score"`
	Classification      string    `json:"classification"`
	EarningsSeries      []float64 `json:"earnings_series"`
	YoYChanges          []float64 `json:"yoy_changes"`
	PositiveGrowthYears int       `json:"positive_growth_years"`
	TotalYearsAnalyzed  int       `json:"total_years_analyzed"`
	VolatilityCV        *float64  `json:"volatility_cv"`
	Trend               string    `json:"trend"`
	Flags               []string  `json:"flags"`
	Level               RiskLevel `json:"risk_level"`
}

// Earnings stability classifications.
const (
	EarningsStable             = "stable"
	EarningsModeratelyStable   = "moderately_stable"
	EarningsModeratelyVolatile = "moderately_volatile"
	EarningsHighlyVolatile     = "highly_volatile"
	EarningsInsufficientData   = "insufficient_data"
)

// Earnings trend labels.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendMixed            = "mixed"
	TrendInsufficientData = "insufficient_data"
)

// OverallRiskReport is the aggregated risk intelligence output for one
// company. OverallRiskScore is nil when no dimension produced a score; the
// level then defaults to moderate, never low.
type OverallRiskReport struct {
	Ticker           string              `json:"ticker"`
	OverallRisk      RiskLevel           `json:"overall_risk"`
	OverallRiskScore *float64            `json:"overall_risk_score"`
	Leverage         LeverageAssessment  `json:"leverage_risk"`
	Liquidity        LiquidityAssessment `json:"liquidity_risk"`
	Earnings         EarningsStability   `json:"earnings_stability"`
	Cashflow         CashflowAssessment  `json:"cashflow_risk"`
	HiddenRisks      []string            `json:"hidden_risks"`
	AnalysisStatus   AnalysisStatus      `json:"analysis_status"`
	Errors           []string            `json:"errors"`
}
