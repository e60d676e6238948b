package models

// Financials holds raw statement figures for one company, as supplied by the
// upstream data provider. A nil field means the provider had no value for it;
// zero is never used as a stand-in for "missing".
type Financials struct {
	Ticker             string   `json:"ticker"`
	CompanyName        string   `json:"company_name,omitempty"`
	Sector             string   `json:"sector,omitempty"`
	Industry           string   `json:"industry,omitempty"`
	Revenue            *float64 `json:"revenue"`
	NetIncome          *float64 `json:"net_income"`
	OperatingIncome    *float64 `json:"operating_income"`
	TotalAssets        *float64 `json:"total_assets"`
	TotalDebt          *float64 `json:"total_debt"`
	ShareholderEquity  *float64 `json:"shareholder_equity"`
	CurrentAssets      *float64 `json:"current_assets"`
	CurrentLiabilities *float64 `json:"current_liabilities"`
	FreeCashFlow       *float64 `json:"free_cash_flow"`
	MarketCap          *float64 `json:"market_cap"`
	EPS                *float64 `json:"eps"`
	DividendYield      *float64 `json:"dividend_yield"`
}

// OptionalField pairs a field name with its (possibly nil) value so callers
// can iterate the core figures in a fixed order.
type OptionalField struct {
	Name  string
	Value *float64
}

// CoreFields returns the core statement figures in declaration order.
// Completeness checks count nil entries against this list.
func (f *Financials) CoreFields() []OptionalField {
	return []OptionalField{
		{"revenue", f.Revenue},
		{"net_income", f.NetIncome},
		{"operating_income", f.OperatingIncome},
		{"total_assets", f.TotalAssets},
		{"total_debt", f.TotalDebt},
		{"shareholder_equity", f.ShareholderEquity},
		{"current_assets", f.CurrentAssets},
		{"current_liabilities", f.CurrentLiabilities},
		{"free_cash_flow", f.FreeCashFlow},
		{"market_cap", f.MarketCap},
	}
}

// KPIs holds ratios derived from Financials. Margin and growth values are in
// percent (23.5 means 23.5%); the rest are plain ratios.
type KPIs struct {
	NetProfitMargin  *float64 `json:"net_profit_margin"`
	OperatingMargin  *float64 `json:"operating_margin"`
	ROE              *float64 `json:"roe"`
	ROA              *float64 `json:"roa"`
	AssetTurnover    *float64 `json:"asset_turnover"`
	DebtToEquity     *float64 `json:"debt_to_equity"`
	DebtToAssets     *float64 `json:"debt_to_assets"`
	CurrentRatio     *float64 `json:"current_ratio"`
	PERatio          *float64 `json:"pe_ratio"`
	Beta             *float64 `json:"beta"`
	RevenueGrowthYoY *float64 `json:"revenue_growth_yoy"`
}

// Fundamentals bundles the raw figures with their derived ratios and any
// data-quality notes the provider attached.
type Fundamentals struct {
	Raw              Financials `json:"raw_financials"`
	KPIs             KPIs       `json:"kpis"`
	DataQualityNotes []string   `json:"data_quality_notes,omitempty"`
}

// ModelSignal is one forecasting sub-model's directional call.
type ModelSignal struct {
	Name      string `json:"name"`
	Direction string `json:"direction"` // up | down | neutral | unknown
}

// Forecast is the baseline price forecast supplied by the forecasting
// collaborator. ExpectedMovement is in percent; Confidence in [0, 1].
type Forecast struct {
	ExpectedMovement *float64      `json:"expected_movement"`
	Confidence       *float64      `json:"confidence"`
	Direction        string        `json:"direction,omitempty"`
	ProbUp           *float64      `json:"prob_up,omitempty"`
	ProbDown         *float64      `json:"prob_down,omitempty"`
	Models           []ModelSignal `json:"models,omitempty"`
	Supported        bool          `json:"supported"`
	Message          string        `json:"message,omitempty"`
}

// PeerComparison is the peer-benchmarking collaborator's output.
type PeerComparison struct {
	PeerGroup []string `json:"peer_group"`
	Summary   []string `json:"summary,omitempty"`
}

// Insights carries the synthesizer's qualitative outlook label.
type Insights struct {
	Outlook string `json:"outlook"` // positive | moderately_positive | neutral | negative
}

// Float64 returns a pointer to v. Convenience for building optional fields.
func Float64(v float64) *float64 { return &v }
