package models

// ConfidenceFactor is one named contribution to the confidence score.
type ConfidenceFactor struct {
	Factor     string  `json:"factor"`
	Adjustment float64 `json:"adjustment"`
	Note       string  `json:"note"`
}

// ConfidenceBreakdown is the confidence score with its factor-by-factor
// derivation. Score is always inside the scorer's fixed clip range.
type ConfidenceBreakdown struct {
	Score          float64            `json:"score"`
	Baseline       float64            `json:"baseline"`
	Factors        []ConfidenceFactor `json:"factors"`
	Interpretation string             `json:"interpretation"`
}

// Contradiction severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityNote     = "note"
)

// Contradiction records two analysis signals that conflict with each other.
type Contradiction struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	SignalA  string `json:"signal_a"`
	SignalB  string `json:"signal_b"`
	Message  string `json:"message"`
}

// Uncertainty flag severities.
const (
	FlagHigh   = "high"
	FlagMedium = "medium"
	FlagLow    = "low"
)

// UncertaintyFlag marks a data-quality or volatility concern. Flags are
// informational and never block a report.
type UncertaintyFlag struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// ModelAgreement is the directional-agreement verdict across the forecast's
// sub-model signals.
type ModelAgreement struct {
	Agreement            bool          `json:"agreement"`
	DirectionMatch       bool          `json:"direction_match"`
	Signals              []ModelSignal `json:"signals"`
	ConfidenceAdjustment float64       `json:"confidence_adjustment"`
	SignalStrength       string        `json:"signal_strength"` // strong | moderate | weak
	Notes                string        `json:"notes"`
}

// AnalysisBundle is the combined analysis input consumed by the meta layer
// (confidence, contradictions, uncertainty). Every field is optional; each
// meta check verifies the inputs it needs and skips otherwise.
type AnalysisBundle struct {
	Fundamentals   *Fundamentals      `json:"fundamentals,omitempty"`
	Forecast       *Forecast          `json:"forecast,omitempty"`
	Risk           *OverallRiskReport `json:"risk,omitempty"`
	Scenario       *ScenarioReport    `json:"scenario,omitempty"`
	Insights       *Insights          `json:"insights,omitempty"`
	PeerComparison *PeerComparison    `json:"peer_comparison,omitempty"`
}

// Review is the meta-analysis output handed back to the orchestrator.
type Review struct {
	Ticker         string              `json:"ticker"`
	Confidence     ConfidenceBreakdown `json:"confidence"`
	Contradictions []Contradiction     `json:"contradictions"`
	Uncertainties  []UncertaintyFlag   `json:"uncertainties"`
}
