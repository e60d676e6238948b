package marketdata

import (
	"context"
	"fmt"
	"time"

	"RiskScope/internal/domain/models"
	"RiskScope/pkg/config"
	xhttp "RiskScope/pkg/http"
	"RiskScope/pkg/logger"
)

// Client fetches fundamentals, forecasts and peer data from the
// market data service over HTTP. It implements the provider
// interfaces in internal/domain/repository.
type Client struct {
	baseURL string
	apiKey  string
	retries int
	client  *xhttp.Client
	log     *logger.Logger
}

// New builds a market data client with timeout and base URL from config.
func New(cfg *config.Config, log *logger.Logger) *Client {
	timeout := cfg.MarketData.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	retries := cfg.MarketData.Retries
	if retries <= 0 {
		retries = 1
	}
	return &Client{
		baseURL: cfg.MarketData.BaseURL,
		apiKey:  cfg.MarketData.APIKey,
		retries: retries,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		log:     log,
	}
}

// Fundamentals returns raw financials plus derived KPIs for a ticker.
func (c *Client) Fundamentals(ctx context.Context, ticker string) (*models.Fundamentals, error) {
	var out models.Fundamentals
	if err := c.getJSON(ctx, "/v1/fundamentals", ticker, &out); err != nil {
		return nil, fmt.Errorf("fundamentals %s: %w", ticker, err)
	}
	return &out, nil
}

type earningsResponse struct {
	Ticker    string     `json:"ticker"`
	NetIncome []*float64 `json:"net_income_history"`
}

// EarningsHistory returns annual net income figures, oldest first.
// Years the upstream has no data for come back as nil entries.
func (c *Client) EarningsHistory(ctx context.Context, ticker string) ([]*float64, error) {
	var out earningsResponse
	if err := c.getJSON(ctx, "/v1/earnings", ticker, &out); err != nil {
		return nil, fmt.Errorf("earnings history %s: %w", ticker, err)
	}
	return out.NetIncome, nil
}

// Forecast returns the upstream model forecast for a ticker.
func (c *Client) Forecast(ctx context.Context, ticker string) (*models.Forecast, error) {
	var out models.Forecast
	if err := c.getJSON(ctx, "/v1/forecast", ticker, &out); err != nil {
		return nil, fmt.Errorf("forecast %s: %w", ticker, err)
	}
	return &out, nil
}

// Peers returns the peer group comparison for a ticker.
func (c *Client) Peers(ctx context.Context, ticker string) (*models.PeerComparison, error) {
	var out models.PeerComparison
	if err := c.getJSON(ctx, "/v1/peers", ticker, &out); err != nil {
		return nil, fmt.Errorf("peers %s: %w", ticker, err)
	}
	return &out, nil
}

// Insights returns the qualitative outlook for a ticker.
func (c *Client) Insights(ctx context.Context, ticker string) (*models.Insights, error) {
	var out models.Insights
	if err := c.getJSON(ctx, "/v1/insights", ticker, &out); err != nil {
		return nil, fmt.Errorf("insights %s: %w", ticker, err)
	}
	return &out, nil
}

// Health pings the upstream service.
func (c *Client) Health(ctx context.Context) error {
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     c.baseURL + "/healthz",
		Headers: c.headers(),
	}, nil)
	if err != nil {
		return fmt.Errorf("market data health: %w", err)
	}
	return nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		h["X-API-Key"] = c.apiKey
	}
	return h
}

// getJSON issues a GET with up to c.retries attempts and a short
// linear backoff between them.
func (c *Client) getJSON(ctx context.Context, path, ticker string, dest interface{}) error {
	if c.client == nil || c.baseURL == "" {
		return fmt.Errorf("market data client not initialized")
	}

	var err error
	for i := 1; i <= c.retries; i++ {
		err = c.client.SendAndParse(ctx, &xhttp.RequestOptions{
			Method:      xhttp.MethodGet,
			URL:         c.baseURL + path,
			Headers:     c.headers(),
			QueryParams: map[string][]string{"ticker": {ticker}},
		}, dest)
		if err == nil {
			return nil
		}
		if i < c.retries {
			c.log.Warn("market data request failed, retrying",
				logger.String("path", path),
				logger.String("ticker", ticker),
				logger.Int("attempt", i),
				logger.Error(err))
		}
		select {
		case <-time.After(time.Duration(i) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
