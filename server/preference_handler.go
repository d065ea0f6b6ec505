package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"coindash/logger"
	"coindash/model"

	"github.com/gorilla/mux"
)

// PreferencesRequest represents the onboarding submission body.
type PreferencesRequest struct {
	UserID             int64  `json:"user_id"`
	FavoriteCoins      string `json:"favorite_coins"`
	InvestorType       string `json:"investor_type"`
	ContentPreferences string `json:"content_preferences"`
}

// SubmitPreferencesHandler records a user's onboarding preferences. It is a
// one-time operation: the insert and the is_onboarded flip happen in a single
// transaction, and an already-onboarded user gets a conflict.
func (h *APIHandler) SubmitPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.authorizeUser(w, r, req.UserID) {
		return
	}

	user, err := h.userRepo.GetUserByID(req.UserID)
	if err != nil {
		logger.Error("[Preferences] Failed to query user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusBadRequest, "User not found")
		return
	}

	if user.IsOnboarded {
		writeMessage(w, http.StatusBadRequest, "User already completed onboarding")
		return
	}

	prefs := &model.Preferences{
		UserID:             req.UserID,
		FavoriteCoins:      req.FavoriteCoins,
		InvestorType:       req.InvestorType,
		ContentPreferences: req.ContentPreferences,
	}
	if err := h.prefRepo.CreateWithOnboarding(prefs); err != nil {
		logger.Error("[Preferences] Failed to save preferences", logger.Int64("userID", req.UserID), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	logger.Info("[Preferences] Preferences saved", logger.Int64("userID", req.UserID))
	writeMessage(w, http.StatusOK, "Preferences updated!")
}

// GetPreferencesHandler returns the stored preferences for a user.
func (h *APIHandler) GetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userIDStr := mux.Vars(r)["userId"]
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if !h.authorizeUser(w, r, userID) {
		return
	}

	prefs, err := h.prefRepo.GetByUserID(userID)
	if err != nil {
		logger.Error("[Preferences] Failed to query preferences", logger.Int64("userID", userID), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if prefs == nil {
		writeMessage(w, http.StatusNotFound, "No preferences found")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		FavoriteCoins      string `json:"favorite_coins"`
		InvestorType       string `json:"investor_type"`
		ContentPreferences string `json:"content_preferences"`
	}{
		FavoriteCoins:      prefs.FavoriteCoins,
		InvestorType:       prefs.InvestorType,
		ContentPreferences: prefs.ContentPreferences,
	})
}
