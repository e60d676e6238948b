package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type RiskRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,max=10"`
}

type ScenarioRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,max=10"`
	Type   string `query:"type" json:"type" default:"recession" validate:"required"`
}

type ReviewRequest struct {
	Ticker   string `query:"ticker" json:"ticker" validate:"required,max=10"`
	Scenario string `query:"scenario" json:"scenario" default:"recession" validate:"required"`
}
