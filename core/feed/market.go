package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"coindash/model"
)

// MarketClient fetches market data from the CoinGecko API.
type MarketClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMarketClient creates a market-data client.
func NewMarketClient(baseURL string, timeout time.Duration) *MarketClient {
	return &MarketClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// TopCoins returns the top 20 coins by market capitalization in USD,
// including 7-day sparkline samples.
func (c *MarketClient) TopCoins(ctx context.Context) ([]model.Coin, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", "20")
	params.Set("page", "1")
	params.Set("sparkline", "true")

	reqURL := fmt.Sprintf("%s/coins/markets?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build market data request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data provider returned status %d", resp.StatusCode)
	}

	var coins []model.Coin
	if err := json.NewDecoder(resp.Body).Decode(&coins); err != nil {
		return nil, fmt.Errorf("failed to decode market data response: %w", err)
	}
	return coins, nil
}
