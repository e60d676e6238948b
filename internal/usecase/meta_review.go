package usecase

import (
	"context"
	"fmt"
	"time"

	"RiskScope/internal/domain/models"
	drepo "RiskScope/internal/domain/repository"
	"RiskScope/internal/meta"
	"RiskScope/pkg/cache"
	"RiskScope/pkg/logger"
)

// MetaReviewUseCase assembles the cross-analysis bundle and runs the meta
// layer over it: confidence scoring, contradiction detection and
// uncertainty flagging. Every bundle input is optional; whatever could be
// gathered is reviewed.
type MetaReviewUseCase struct {
	data      drepo.FundamentalsProvider
	forecasts drepo.ForecastProvider
	peers     drepo.PeerProvider
	risk      *RiskReportUseCase
	scenarios *ScenarioUseCase
	reports   drepo.ReportCache
	metrics   drepo.Metrics
	log       *logger.Logger
	cacheTTL  time.Duration
	timeout   time.Duration
}

func NewMetaReviewUseCase(
	data drepo.FundamentalsProvider,
	forecasts drepo.ForecastProvider,
	peers drepo.PeerProvider,
	risk *RiskReportUseCase,
	scenarios *ScenarioUseCase,
	reports drepo.ReportCache,
	metrics drepo.Metrics,
	log *logger.Logger,
	cacheTTL time.Duration,
) *MetaReviewUseCase {
	return &MetaReviewUseCase{
		data:      data,
		forecasts: forecasts,
		peers:     peers,
		risk:      risk,
		scenarios: scenarios,
		reports:   reports,
		metrics:   metrics,
		log:       log,
		cacheTTL:  cacheTTL,
		timeout:   20 * time.Second,
	}
}

// Review builds the meta-analysis for a ticker under the named scenario.
// The scenario is validated before any data is fetched.
func (uc *MetaReviewUseCase) Review(ctx context.Context, ticker, scenarioName string) (*models.Review, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("ticker required")
	}

	scenarioReport, err := uc.scenarios.Analyze(ctx, ticker, scenarioName)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	key := cache.GenerateKeyWithParams("review", ticker, scenarioReport.Scenario)
	var cached models.Review
	if ok, err := uc.reports.GetJSON(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		uc.log.Warn("review cache read failed", logger.String("ticker", ticker), logger.Error(err))
	}

	start := time.Now()
	bundle := uc.assemble(ctx, ticker)
	bundle.Scenario = scenarioReport

	review := &models.Review{
		Ticker:         ticker,
		Confidence:     *meta.CalculateConfidence(bundle),
		Contradictions: meta.DetectContradictions(bundle),
		Uncertainties:  meta.IdentifyUncertainties(bundle),
	}

	uc.metrics.RecordLatency("meta_review", time.Since(start).Seconds())
	uc.metrics.RecordReport("review", ticker)

	if err := uc.reports.SetJSON(ctx, key, review, uc.cacheTTL); err != nil {
		uc.log.Warn("review cache write failed", logger.String("ticker", ticker), logger.Error(err))
	}
	return review, nil
}

// assemble gathers every bundle input best effort. A failed fetch leaves
// its slot nil, which the meta checks treat as missing data.
func (uc *MetaReviewUseCase) assemble(ctx context.Context, ticker string) *models.AnalysisBundle {
	bundle := &models.AnalysisBundle{}

	if f, err := uc.data.Fundamentals(ctx, ticker); err == nil {
		bundle.Fundamentals = f
	} else {
		uc.log.Warn("fundamentals unavailable for review", logger.String("ticker", ticker), logger.Error(err))
	}

	if fc, err := uc.forecasts.Forecast(ctx, ticker); err == nil {
		bundle.Forecast = fc
	} else {
		uc.log.Warn("forecast unavailable for review", logger.String("ticker", ticker), logger.Error(err))
	}

	if risk, err := uc.risk.Build(ctx, ticker); err == nil {
		bundle.Risk = risk
	} else {
		uc.log.Warn("risk report unavailable for review", logger.String("ticker", ticker), logger.Error(err))
	}

	if ins, err := uc.peers.Insights(ctx, ticker); err == nil {
		bundle.Insights = ins
	} else {
		uc.log.Warn("insights unavailable for review", logger.String("ticker", ticker), logger.Error(err))
	}

	if pc, err := uc.peers.Peers(ctx, ticker); err == nil {
		bundle.PeerComparison = pc
	} else {
		uc.log.Warn("peers unavailable for review", logger.String("ticker", ticker), logger.Error(err))
	}

	return bundle
}
