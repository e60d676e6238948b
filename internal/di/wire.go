//go:build wireinject
// +build wireinject

package di

import (
	"RiskScope/pkg/config"
	"RiskScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideReportCache,
		ProvideMarketData,

		// Use cases
		ProvideRiskUseCase,
		ProvideScenarioUseCase,
		ProvideMetaReviewUseCase,

		// HTTP handler and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
