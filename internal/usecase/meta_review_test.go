package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"RiskScope/internal/domain/models"
	"RiskScope/internal/meta"
	"RiskScope/internal/scenario"
)

func newReviewUseCase(provider *fakeProvider) *MetaReviewUseCase {
	metrics := newFakeMetrics()
	log := testLogger()
	risk := NewRiskReportUseCase(provider, newFakeCache(), metrics, log, time.Minute)
	scenarios := NewScenarioUseCase(provider, provider, newFakeCache(), metrics, log, time.Minute)
	return NewMetaReviewUseCase(provider, provider, provider, risk, scenarios, newFakeCache(), metrics, log, time.Minute)
}

func TestReviewFullBundle(t *testing.T) {
	provider := &fakeProvider{
		fundamentals: healthyFundamentals(),
		earnings:     stableEarnings(),
		forecast: &models.Forecast{
			ExpectedMovement: fptr(5.0),
			Confidence:       fptr(0.8),
			ProbUp:           fptr(0.7),
			ProbDown:         fptr(0.3),
			Models: []models.ModelSignal{
				{Name: "tft", Direction: "up"},
				{Name: "xgb", Direction: "up"},
			},
			Supported: true,
		},
		peers:    &models.PeerComparison{PeerGroup: []string{"WIDG", "GADG"}},
		insights: &models.Insights{Outlook: "positive"},
	}
	uc := newReviewUseCase(provider)

	review, err := uc.Review(context.Background(), "acme", "recession")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Ticker != "ACME" {
		t.Fatalf("expected ACME, got %s", review.Ticker)
	}
	if review.Confidence.Score < meta.MinConfidence || review.Confidence.Score > meta.MaxConfidence {
		t.Fatalf("confidence out of range: %v", review.Confidence.Score)
	}
	if review.Confidence.Baseline != meta.BaselineConfidence {
		t.Fatalf("expected baseline %v, got %v", meta.BaselineConfidence, review.Confidence.Baseline)
	}
	if review.Contradictions == nil || review.Uncertainties == nil {
		t.Fatalf("expected non-nil contradiction and uncertainty slices")
	}
	// Recession drops forecast confidence to 0.60, below the 0.80 trigger.
	found := false
	for _, f := range review.Uncertainties {
		if f.Type == "high_scenario_sensitivity" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected high_scenario_sensitivity flag, got %v", review.Uncertainties)
	}
}

func TestReviewUnknownScenario(t *testing.T) {
	uc := newReviewUseCase(&fakeProvider{fundamentals: healthyFundamentals()})

	_, err := uc.Review(context.Background(), "ACME", "meteor_strike")
	var unknown *scenario.UnknownScenarioError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownScenarioError, got %v", err)
	}
}

func TestReviewDegradedBundle(t *testing.T) {
	provider := &fakeProvider{
		fundErr:     errors.New("down"),
		earnErr:     errors.New("down"),
		forecastErr: errors.New("down"),
		peersErr:    errors.New("down"),
		insightsErr: errors.New("down"),
	}
	uc := newReviewUseCase(provider)

	review, err := uc.Review(context.Background(), "ACME", "recession")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Missing fundamentals must surface as a high severity flag.
	found := false
	for _, f := range review.Uncertainties {
		if f.Type == "missing_data" && f.Severity == models.FlagHigh {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected high severity missing_data flag, got %v", review.Uncertainties)
	}
	if review.Confidence.Score >= meta.BaselineConfidence {
		t.Fatalf("expected confidence below baseline, got %v", review.Confidence.Score)
	}
}
