package server

import (
	"errors"
	"net/http"
	"strconv"

	"coindash/core/feed"
	"coindash/core/personalize"
	"coindash/logger"
	"coindash/model"
)

// insightResponse is the body served by the insight endpoint.
type insightResponse struct {
	Insight string `json:"insight"`
}

// feedErrorMessages are the client-facing messages for feeds whose policy
// propagates provider errors.
var feedErrorMessages = map[string]string{
	feed.FeedNews: "Error fetching news data",
	feed.FeedMeme: "Error fetching meme",
}

// degradeFeed applies a feed's degrade policy after a provider failure:
// an empty result set, a fallback value served as success, or an explicit
// error status.
func (h *APIHandler) degradeFeed(w http.ResponseWriter, feedName string, err error) {
	switch feed.PolicyFor(feedName) {
	case feed.DegradeToEmpty:
		logger.Error("Feed provider failed, degrading to empty result",
			logger.String("feed", feedName), logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, []model.Coin{})
	case feed.DegradeToFallback:
		logger.Warn("Feed provider failed, using fallback insight",
			logger.String("feed", feedName), logger.ErrorField(err))
		writeJSON(w, http.StatusOK, insightResponse{Insight: feed.RandomFallbackInsight()})
	default: // PropagateError
		logger.Error("Feed provider failed",
			logger.String("feed", feedName), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, feedErrorMessages[feedName])
	}
}

// CryptoHandler proxies the market-data provider. Provider failure degrades
// to an empty list so the dashboard can still render the other feeds. With a
// user_id query parameter the list is filtered to the caller's favorite coins
// (token required, identity must match).
func (h *APIHandler) CryptoHandler(w http.ResponseWriter, r *http.Request) {
	coins, err := h.marketClient.TopCoins(r.Context())
	if err != nil {
		h.degradeFeed(w, feed.FeedMarket, err)
		return
	}
	if coins == nil {
		coins = []model.Coin{}
	}

	if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		claims, err := claimsFromRequest(r)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		if claims.UserID != userID {
			writeMessage(w, http.StatusForbidden, "Forbidden")
			return
		}

		favorites := ""
		if prefs, err := h.prefRepo.GetByUserID(userID); err != nil {
			logger.Error("Failed to load preferences for personalization",
				logger.Int64("userID", userID), logger.ErrorField(err))
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		} else if prefs != nil {
			favorites = prefs.FavoriteCoins
		}

		coins = personalize.Filter(coins, favorites)
	}

	writeJSON(w, http.StatusOK, coins)
}

// NewsHandler proxies the news provider's "hot" feed. Its policy propagates
// provider failures as an explicit error status.
func (h *APIHandler) NewsHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := h.newsClient.HotNews(r.Context())
	if err != nil {
		h.degradeFeed(w, feed.FeedNews, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// InsightHandler proxies the generative-text provider. Its policy degrades
// any provider failure to a canned insight served as success; only a missing
// API key is a server error.
func (h *APIHandler) InsightHandler(w http.ResponseWriter, r *http.Request) {
	insight, err := h.insightClient.Insight(r.Context())
	if err != nil {
		if errors.Is(err, feed.ErrMissingAPIKey) {
			logger.Error("Missing generative-text provider API key")
			writeMessage(w, http.StatusInternalServerError, "Server configuration error")
			return
		}
		h.degradeFeed(w, feed.FeedInsight, err)
		return
	}

	writeJSON(w, http.StatusOK, insightResponse{Insight: insight})
}

// MemeHandler proxies the meme provider. Its policy propagates provider
// failures as an explicit error status.
func (h *APIHandler) MemeHandler(w http.ResponseWriter, r *http.Request) {
	meme, err := h.memeClient.CryptoMeme(r.Context())
	if err != nil {
		h.degradeFeed(w, feed.FeedMeme, err)
		return
	}

	writeJSON(w, http.StatusOK, meme)
}
