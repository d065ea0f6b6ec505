package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// NewsClient fetches crypto news from the CryptoPanic API.
type NewsClient struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewNewsClient creates a news client. authToken is the CryptoPanic API key.
func NewNewsClient(baseURL, authToken string, timeout time.Duration) *NewsClient {
	return &NewsClient{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// HotNews fetches the "hot" news posts and returns the provider payload
// untouched, so the endpoint proxies it through as-is.
func (c *NewsClient) HotNews(ctx context.Context) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("auth_token", c.authToken)
	params.Set("kind", "news")
	params.Set("filter", "hot")

	reqURL := fmt.Sprintf("%s/posts/?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read news response: %w", err)
	}
	return json.RawMessage(body), nil
}
