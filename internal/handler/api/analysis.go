package api

import (
	"errors"
	"net/http"

	models "RiskScope/internal/domain/models"
	drepo "RiskScope/internal/domain/repository"
	"RiskScope/internal/scenario"
	"RiskScope/internal/usecase"
	xhttp "RiskScope/pkg/http"
	xlogger "RiskScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the risk, scenario and review operations over
// Echo-based HTTP handlers.
type AnalysisHandler struct {
	logger    *xlogger.Logger
	risk      *usecase.RiskReportUseCase
	scenarios *usecase.ScenarioUseCase
	reviews   *usecase.MetaReviewUseCase
	upstream  drepo.FundamentalsProvider
}

func NewAnalysisHandler(
	logger *xlogger.Logger,
	risk *usecase.RiskReportUseCase,
	scenarios *usecase.ScenarioUseCase,
	reviews *usecase.MetaReviewUseCase,
	upstream drepo.FundamentalsProvider,
) *AnalysisHandler {
	return &AnalysisHandler{
		logger:    logger,
		risk:      risk,
		scenarios: scenarios,
		reviews:   reviews,
		upstream:  upstream,
	}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/risk", h.Risk)
	g.GET("/scenario", h.Scenario)
	g.GET("/scenarios", h.Scenarios)
	g.GET("/review", h.Review)
	e.GET("/health", h.Health)
}

func (h *AnalysisHandler) Risk(c echo.Context) error {
	req := &models.RiskRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.risk.Build(c.Request().Context(), req.Ticker)
	if err != nil {
		h.logger.Error("risk usecase error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Scenario(c echo.Context) error {
	req := &models.ScenarioRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.scenarios.Analyze(c.Request().Context(), req.Ticker, req.Type)
	if err != nil {
		var unknown *scenario.UnknownScenarioError
		if errors.As(err, &unknown) {
			return xhttp.BadRequestResponse(c, xhttp.BadRequestError(unknown.Error()))
		}
		h.logger.Error("scenario usecase error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Scenarios(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.scenarios.List())
}

func (h *AnalysisHandler) Review(c echo.Context) error {
	req := &models.ReviewRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.reviews.Review(c.Request().Context(), req.Ticker, req.Scenario)
	if err != nil {
		var unknown *scenario.UnknownScenarioError
		if errors.As(err, &unknown) {
			return xhttp.BadRequestResponse(c, xhttp.BadRequestError(unknown.Error()))
		}
		h.logger.Error("review usecase error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Health(c echo.Context) error {
	status := map[string]string{"status": "ok", "upstream": "ok"}
	if err := h.upstream.Health(c.Request().Context()); err != nil {
		status["upstream"] = "unavailable"
	}
	return c.JSON(http.StatusOK, status)
}
