package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"coindash/config"
	"coindash/core/auth"
	"coindash/core/feed"
	"coindash/logger"
	"coindash/repository"
)

// APIHandler handles all API requests.
type APIHandler struct {
	userRepo      repository.UserRepository
	prefRepo      repository.PreferenceRepository
	voteRepo      repository.VoteRepository
	marketClient  *feed.MarketClient
	newsClient    *feed.NewsClient
	insightClient *feed.InsightClient
	memeClient    *feed.MemeClient
	cfg           *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	userRepo repository.UserRepository,
	prefRepo repository.PreferenceRepository,
	voteRepo repository.VoteRepository,
	marketClient *feed.MarketClient,
	newsClient *feed.NewsClient,
	insightClient *feed.InsightClient,
	memeClient *feed.MemeClient,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		userRepo:      userRepo,
		prefRepo:      prefRepo,
		voteRepo:      voteRepo,
		marketClient:  marketClient,
		newsClient:    newsClient,
		insightClient: insightClient,
		memeClient:    memeClient,
		cfg:           cfg,
	}
}

// messageResponse is the generic {"message": ...} JSON body.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response", logger.ErrorField(err))
	}
}

// writeMessage writes a {"message": ...} JSON response.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// claimsFromRequest extracts and validates the bearer token from the
// Authorization header.
func claimsFromRequest(r *http.Request) (*auth.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header format")
	}

	return auth.ParseToken(parts[1])
}

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context.
func (h *APIHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r)
		if err != nil {
			logger.Warn("Rejected unauthenticated request",
				logger.String("path", r.URL.Path),
				logger.ErrorField(err))
			writeMessage(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		ctx := context.WithValue(r.Context(), "userID", claims.UserID)
		ctx = context.WithValue(ctx, "email", claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// GetUserIDFromContext extracts the authenticated user ID from the request context.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value("userID").(int64)
	if !ok {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// authorizeUser verifies that the token identity in the context matches the
// user ID the request is acting on. Any caller supplying someone else's
// user_id gets a 403.
func (h *APIHandler) authorizeUser(w http.ResponseWriter, r *http.Request, requestedID int64) bool {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid or missing token")
		return false
	}
	if userID != requestedID {
		logger.Warn("Rejected cross-user request",
			logger.Int64("tokenUserID", userID),
			logger.Int64("requestedUserID", requestedID),
			logger.String("path", r.URL.Path))
		writeMessage(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
