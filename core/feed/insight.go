package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// ErrMissingAPIKey is returned when no generative-text provider key is
// configured. This is the one insight failure that is surfaced as an error
// instead of a fallback.
var ErrMissingAPIKey = errors.New("generative-text provider API key is not configured")

const insightModel = "google/gemini-2.0-flash-exp:free"

const insightPrompt = "Give me one short, profound insight about market psychology or risk management. Keep it under 30 words."

// fallbackInsights are served when the provider fails or rate-limits. Picking
// one is treated as a successful response, not an error.
var fallbackInsights = []string{
	"Market psychology is driven by fear and greed. Stay balanced.",
	"Risk comes from not knowing what you're doing.",
	"The trend is your friend, but don't overstay your welcome.",
	"In trading, patience is just as important as the trade itself.",
}

// RandomFallbackInsight returns a uniformly chosen canned insight.
func RandomFallbackInsight() string {
	return fallbackInsights[rand.Intn(len(fallbackInsights))]
}

// IsFallbackInsight reports whether s is one of the canned insights.
func IsFallbackInsight(s string) bool {
	for _, f := range fallbackInsights {
		if s == f {
			return true
		}
	}
	return false
}

// InsightClient fetches an AI-generated market insight from the OpenRouter
// chat completions API.
type InsightClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewInsightClient creates an insight client. apiKey is the OpenRouter key.
func NewInsightClient(baseURL, apiKey string, timeout time.Duration) *InsightClient {
	return &InsightClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Insight requests a short market-psychology insight at high sampling
// temperature. Callers are expected to fall back to RandomFallbackInsight on
// any error other than ErrMissingAPIKey.
func (c *InsightClient) Insight(ctx context.Context) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := chatRequest{
		Model: insightModel,
		Messages: []chatMessage{
			{Role: "user", Content: insightPrompt},
		},
		Temperature: 0.9,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build insight request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "Crypto Dashboard")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch insight: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight provider returned status %d", resp.StatusCode)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode insight response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("insight provider returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
