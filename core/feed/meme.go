package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"coindash/model"
)

// MemeClient fetches a cryptocurrency-tagged meme image from meme-api.
type MemeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMemeClient creates a meme client.
func NewMemeClient(baseURL string, timeout time.Duration) *MemeClient {
	return &MemeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CryptoMeme fetches one meme from the cryptocurrency subreddit feed.
func (c *MemeClient) CryptoMeme(ctx context.Context) (*model.Meme, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gimme/cryptocurrency", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build meme request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meme: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meme provider returned status %d", resp.StatusCode)
	}

	var meme model.Meme
	if err := json.NewDecoder(resp.Body).Decode(&meme); err != nil {
		return nil, fmt.Errorf("failed to decode meme response: %w", err)
	}
	return &meme, nil
}
