package usecase

import (
	"context"
	"fmt"
	"time"

	"RiskScope/internal/domain/models"
	drepo "RiskScope/internal/domain/repository"
	"RiskScope/internal/scenario"
	"RiskScope/pkg/cache"
	"RiskScope/pkg/logger"
)

// ScenarioUseCase runs deterministic macro stress tests. An unknown
// scenario name is the only hard failure; missing baseline data degrades
// the affected transforms with notes instead.
type ScenarioUseCase struct {
	data      drepo.FundamentalsProvider
	forecasts drepo.ForecastProvider
	reports   drepo.ReportCache
	metrics   drepo.Metrics
	log       *logger.Logger
	cacheTTL  time.Duration
	timeout   time.Duration
}

func NewScenarioUseCase(
	data drepo.FundamentalsProvider,
	forecasts drepo.ForecastProvider,
	reports drepo.ReportCache,
	metrics drepo.Metrics,
	log *logger.Logger,
	cacheTTL time.Duration,
) *ScenarioUseCase {
	return &ScenarioUseCase{
		data:      data,
		forecasts: forecasts,
		reports:   reports,
		metrics:   metrics,
		log:       log,
		cacheTTL:  cacheTTL,
		timeout:   10 * time.Second,
	}
}

// List returns the supported scenarios in registry order.
func (uc *ScenarioUseCase) List() []models.ScenarioAssumptions {
	return scenario.All()
}

// Analyze stresses the ticker's baseline under the named scenario.
// The scenario is validated before any upstream call is made.
func (uc *ScenarioUseCase) Analyze(ctx context.Context, ticker, scenarioName string) (*models.ScenarioReport, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("ticker required")
	}

	s, err := scenario.Get(scenarioName)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	key := cache.GenerateKeyWithParams("scenario", ticker, s.Key)
	var cached models.ScenarioReport
	if ok, err := uc.reports.GetJSON(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		uc.log.Warn("scenario cache read failed", logger.String("ticker", ticker), logger.Error(err))
	}

	start := time.Now()
	in, analysisErrors := uc.collectInputs(ctx, ticker)
	report := scenario.Run(ticker, s, in)
	report.AnalysisErrors = append(report.AnalysisErrors, analysisErrors...)

	uc.metrics.RecordLatency("scenario_analysis", time.Since(start).Seconds())
	uc.metrics.RecordReport("scenario", ticker)

	if err := uc.reports.SetJSON(ctx, key, report, uc.cacheTTL); err != nil {
		uc.log.Warn("scenario cache write failed", logger.String("ticker", ticker), logger.Error(err))
	}
	return report, nil
}

// collectInputs gathers the baseline values, best effort. Fetch failures
// surface as analysis errors on the report, not as hard failures.
func (uc *ScenarioUseCase) collectInputs(ctx context.Context, ticker string) (scenario.Inputs, []string) {
	var in scenario.Inputs
	errs := []string{}

	f, err := uc.data.Fundamentals(ctx, ticker)
	if err != nil {
		uc.log.Warn("fundamentals unavailable for scenario", logger.String("ticker", ticker), logger.Error(err))
		uc.metrics.RecordDegradation("fundamentals")
		errs = append(errs, fmt.Sprintf("fundamentals unavailable: %v", err))
	} else {
		in.RevenueGrowthYoY = f.KPIs.RevenueGrowthYoY
		in.NetProfitMargin = f.KPIs.NetProfitMargin
		in.DebtToEquity = f.KPIs.DebtToEquity
	}

	fc, err := uc.forecasts.Forecast(ctx, ticker)
	switch {
	case err != nil:
		uc.log.Warn("forecast unavailable for scenario", logger.String("ticker", ticker), logger.Error(err))
		uc.metrics.RecordDegradation("forecast")
		errs = append(errs, fmt.Sprintf("forecast unavailable: %v", err))
	case fc.Supported && fc.ExpectedMovement != nil:
		in.HasForecast = true
		in.ForecastMovement = fc.ExpectedMovement
		in.ForecastConf = fc.Confidence
	}

	return in, errs
}
