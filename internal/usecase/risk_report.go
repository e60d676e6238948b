package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"RiskScope/internal/domain/models"
	drepo "RiskScope/internal/domain/repository"
	"RiskScope/internal/riskengine"
	"RiskScope/pkg/cache"
	"RiskScope/pkg/logger"
)

// RiskReportUseCase builds the overall risk report for a ticker. Each
// analysis dimension degrades independently: a missing input or a failed
// sub-analysis becomes a flagged stub and the report stays full-shaped.
type RiskReportUseCase struct {
	data     drepo.FundamentalsProvider
	reports  drepo.ReportCache
	metrics  drepo.Metrics
	log      *logger.Logger
	cacheTTL time.Duration
	timeout  time.Duration
}

func NewRiskReportUseCase(
	data drepo.FundamentalsProvider,
	reports drepo.ReportCache,
	metrics drepo.Metrics,
	log *logger.Logger,
	cacheTTL time.Duration,
) *RiskReportUseCase {
	return &RiskReportUseCase{
		data:     data,
		reports:  reports,
		metrics:  metrics,
		log:      log,
		cacheTTL: cacheTTL,
		timeout:  10 * time.Second,
	}
}

// Build produces the risk report, serving from cache when possible.
func (uc *RiskReportUseCase) Build(ctx context.Context, ticker string) (*models.OverallRiskReport, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("ticker required")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	key := cache.GenerateKey("risk", ticker)
	var cached models.OverallRiskReport
	if ok, err := uc.reports.GetJSON(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		uc.log.Warn("risk report cache read failed", logger.String("ticker", ticker), logger.Error(err))
	}

	start := time.Now()
	report := uc.build(ctx, ticker)
	uc.metrics.RecordLatency("risk_report", time.Since(start).Seconds())
	uc.metrics.RecordReport("risk", ticker)
	if report.OverallRiskScore != nil {
		uc.metrics.RecordRiskScore(ticker, *report.OverallRiskScore)
	}

	if err := uc.reports.SetJSON(ctx, key, report, uc.cacheTTL); err != nil {
		uc.log.Warn("risk report cache write failed", logger.String("ticker", ticker), logger.Error(err))
	}
	return report, nil
}

func (uc *RiskReportUseCase) build(ctx context.Context, ticker string) *models.OverallRiskReport {
	report := &models.OverallRiskReport{
		Ticker:         ticker,
		AnalysisStatus: models.StatusComplete,
		Errors:         []string{},
	}

	f, err := uc.data.Fundamentals(ctx, ticker)
	if err != nil {
		uc.log.Warn("fundamentals unavailable", logger.String("ticker", ticker), logger.Error(err))
		uc.degrade(report, "fundamentals", fmt.Sprintf("fundamentals unavailable: %v", err))
		f = &models.Fundamentals{}
	}

	uc.analyzeLeverage(report, f)
	uc.analyzeLiquidity(report, f)
	uc.analyzeCashflow(report, f)
	uc.analyzeEarnings(ctx, report, ticker)
	uc.detectHidden(report, f)

	level, score := riskengine.Aggregate(
		&report.Leverage, &report.Liquidity, &report.Earnings, &report.Cashflow, report.HiddenRisks)
	report.OverallRisk = level
	report.OverallRiskScore = score
	return report
}

func (uc *RiskReportUseCase) analyzeLeverage(report *models.OverallRiskReport, f *models.Fundamentals) {
	defer uc.recoverInto(report, "leverage", func(msg string) {
		report.Leverage = models.LeverageAssessment{RiskAssessment: riskengine.ErrorAssessment(msg)}
	})
	report.Leverage = *riskengine.AnalyzeLeverage(f)
}

func (uc *RiskReportUseCase) analyzeLiquidity(report *models.OverallRiskReport, f *models.Fundamentals) {
	defer uc.recoverInto(report, "liquidity", func(msg string) {
		report.Liquidity = models.LiquidityAssessment{RiskAssessment: riskengine.ErrorAssessment(msg)}
	})
	report.Liquidity = *riskengine.AnalyzeLiquidity(f)
}

func (uc *RiskReportUseCase) analyzeCashflow(report *models.OverallRiskReport, f *models.Fundamentals) {
	defer uc.recoverInto(report, "cashflow", func(msg string) {
		report.Cashflow = models.CashflowAssessment{RiskAssessment: riskengine.ErrorAssessment(msg)}
	})
	report.Cashflow = *riskengine.AnalyzeCashflow(f)
}

func (uc *RiskReportUseCase) analyzeEarnings(ctx context.Context, report *models.OverallRiskReport, ticker string) {
	series, err := uc.data.EarningsHistory(ctx, ticker)
	if err != nil {
		uc.log.Warn("earnings history unavailable", logger.String("ticker", ticker), logger.Error(err))
		msg := fmt.Sprintf("earnings history unavailable: %v", err)
		uc.degrade(report, "earnings", msg)
		report.Earnings = earningsErrorStub(msg)
		return
	}

	defer uc.recoverInto(report, "earnings", func(msg string) {
		report.Earnings = earningsErrorStub(msg)
	})
	report.Earnings = *riskengine.AnalyzeEarningsStability(series)
}

func (uc *RiskReportUseCase) detectHidden(report *models.OverallRiskReport, f *models.Fundamentals) {
	defer uc.recoverInto(report, "hidden_risks", func(msg string) {
		report.HiddenRisks = []string{}
	})
	report.HiddenRisks = riskengine.DetectHiddenRisks(f)
}

// recoverInto converts a panicking sub-analysis into a flagged stub so one
// dimension never takes down the whole report.
func (uc *RiskReportUseCase) recoverInto(report *models.OverallRiskReport, component string, stub func(msg string)) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf("%s analysis failed: %v", component, r)
		uc.log.Error("risk sub-analysis panicked",
			logger.String("ticker", report.Ticker),
			logger.String("component", component),
			logger.Any("panic", r))
		uc.degrade(report, component, msg)
		stub(msg)
	}
}

func (uc *RiskReportUseCase) degrade(report *models.OverallRiskReport, component, msg string) {
	report.AnalysisStatus = models.StatusPartial
	report.Errors = append(report.Errors, msg)
	uc.metrics.RecordDegradation(component)
}

func earningsErrorStub(msg string) models.EarningsStability {
	return models.EarningsStability{
		Classification: "error",
		EarningsSeries: []float64{},
		YoYChanges:     []float64{},
		Trend:          models.TrendInsufficientData,
		Flags:          []string{msg},
		Level:          models.RiskModerate,
	}
}

// NormalizeTicker canonicalizes a ticker symbol for lookups and cache keys.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
