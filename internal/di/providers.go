package di

import (
	"fmt"

	"RiskScope/internal/domain/repository"
	"RiskScope/internal/handler/api"
	icache "RiskScope/internal/service/cache"
	"RiskScope/internal/service/marketdata"
	"RiskScope/internal/usecase"
	"RiskScope/pkg/config"
	xhttp "RiskScope/pkg/http"
	applogger "RiskScope/pkg/logger"
	"RiskScope/pkg/metrics"
	"RiskScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	format := "json"
	if cfg.Logging.Pretty {
		format = "console"
	}
	l, err := applogger.New(&applogger.Config{Level: level, Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideReportCache creates the report cache, memory or layered Redis.
func ProvideReportCache(cfg *config.Config) (*icache.ReportCache, error) {
	return icache.New(cfg)
}

// ProvideMarketData creates the upstream market data HTTP client.
func ProvideMarketData(cfg *config.Config, log *applogger.Logger) *marketdata.Client {
	return marketdata.New(cfg, log)
}

// ProvideRiskUseCase creates the risk report use case.
func ProvideRiskUseCase(
	md *marketdata.Client,
	reports *icache.ReportCache,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.RiskReportUseCase {
	return usecase.NewRiskReportUseCase(md, reports, m, log, cfg.MarketData.CacheTTL.Risk)
}

// ProvideScenarioUseCase creates the scenario stress use case.
func ProvideScenarioUseCase(
	md *marketdata.Client,
	reports *icache.ReportCache,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.ScenarioUseCase {
	return usecase.NewScenarioUseCase(md, md, reports, m, log, cfg.MarketData.CacheTTL.Scenario)
}

// ProvideMetaReviewUseCase creates the meta review use case.
func ProvideMetaReviewUseCase(
	md *marketdata.Client,
	risk *usecase.RiskReportUseCase,
	scenarios *usecase.ScenarioUseCase,
	reports *icache.ReportCache,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.MetaReviewUseCase {
	return usecase.NewMetaReviewUseCase(md, md, md, risk, scenarios, reports, m, log, cfg.MarketData.CacheTTL.Review)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(
	log *applogger.Logger,
	risk *usecase.RiskReportUseCase,
	scenarios *usecase.ScenarioUseCase,
	reviews *usecase.MetaReviewUseCase,
	md *marketdata.Client,
) xhttp.Handler {
	return api.NewAnalysisHandler(log, risk, scenarios, reviews, md)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	reports *icache.ReportCache,
) *server.App {
	return server.New(cfg, log, handler, reports)
}
