package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPreferencesHandler(t *testing.T) {
	h, users, prefs, _ := newTestHandler(t)
	id := seedUser(t, users, "Alice", "alice@example.com", "secret123")
	token := tokenFor(t, id, "alice@example.com")

	body := PreferencesRequest{
		UserID:             id,
		FavoriteCoins:      "btc, eth",
		InvestorType:       "hodler",
		ContentPreferences: "news,memes",
	}
	rec := doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences", token, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Preferences updated!")

	// The row is stored and the onboarding flag flips together with it.
	stored := prefs.prefs[id]
	require.NotNil(t, stored)
	assert.Equal(t, "btc, eth", stored.FavoriteCoins)
	assert.True(t, users.users[id].IsOnboarded)

	// Second submission conflicts and no second row is created.
	rec = doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already completed onboarding")
	assert.Len(t, prefs.prefs, 1)
}

func TestSubmitPreferencesHandlerUnknownUser(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	token := tokenFor(t, 99, "ghost@example.com")

	rec := doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences", token, PreferencesRequest{UserID: 99})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestSubmitPreferencesHandlerRequiresToken(t *testing.T) {
	h, users, _, _ := newTestHandler(t)
	id := seedUser(t, users, "Alice", "alice@example.com", "secret123")

	rec := doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences", "", PreferencesRequest{UserID: id})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitPreferencesHandlerCrossUserForbidden(t *testing.T) {
	h, users, prefs, _ := newTestHandler(t)
	alice := seedUser(t, users, "Alice", "alice@example.com", "secret123")
	mallory := seedUser(t, users, "Mallory", "mallory@example.com", "secret123")

	token := tokenFor(t, mallory, "mallory@example.com")
	rec := doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences", token, PreferencesRequest{UserID: alice})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, prefs.prefs)
}

func prefRouter(h *APIHandler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/preferences/{userId}", h.AuthMiddleware(h.GetPreferencesHandler)).Methods(http.MethodGet)
	return router
}

func TestGetPreferencesHandler(t *testing.T) {
	h, users, _, _ := newTestHandler(t)
	id := seedUser(t, users, "Alice", "alice@example.com", "secret123")
	token := tokenFor(t, id, "alice@example.com")

	submit := doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences", token, PreferencesRequest{
		UserID: id, FavoriteCoins: "btc", InvestorType: "degen", ContentPreferences: "memes",
	})
	require.Equal(t, http.StatusOK, submit.Code)

	req := httptest.NewRequest(http.MethodGet, "/preferences/"+strconv.FormatInt(id, 10), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	prefRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		FavoriteCoins      string `json:"favorite_coins"`
		InvestorType       string `json:"investor_type"`
		ContentPreferences string `json:"content_preferences"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "btc", resp.FavoriteCoins)
	assert.Equal(t, "degen", resp.InvestorType)
	assert.Equal(t, "memes", resp.ContentPreferences)
}

func TestGetPreferencesHandlerNotFound(t *testing.T) {
	h, users, _, _ := newTestHandler(t)
	id := seedUser(t, users, "Alice", "alice@example.com", "secret123")
	token := tokenFor(t, id, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/preferences/"+strconv.FormatInt(id, 10), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	prefRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No preferences found")
}

func TestGetPreferencesHandlerCrossUserForbidden(t *testing.T) {
	h, users, _, _ := newTestHandler(t)
	alice := seedUser(t, users, "Alice", "alice@example.com", "secret123")
	mallory := seedUser(t, users, "Mallory", "mallory@example.com", "secret123")

	req := httptest.NewRequest(http.MethodGet, "/preferences/"+strconv.FormatInt(alice, 10), nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, mallory, "mallory@example.com"))
	rec := httptest.NewRecorder()
	prefRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitPreferencesHandlerStorageFailure(t *testing.T) {
	h, users, prefs, _ := newTestHandler(t)
	id := seedUser(t, users, "Alice", "alice@example.com", "secret123")
	prefs.fail = true

	rec := doJSON(h.AuthMiddleware(h.SubmitPreferencesHandler), http.MethodPost, "/preferences",
		tokenFor(t, id, "alice@example.com"),
		PreferencesRequest{UserID: id, FavoriteCoins: "btc"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
	assert.False(t, users.users[id].IsOnboarded)
}
