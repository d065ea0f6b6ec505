package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"coindash/logger"
	"coindash/model"
)

// VoteRequest represents the vote submission body. vote_type is stored as
// sent; the client constrains it to up/down.
type VoteRequest struct {
	UserID   int64  `json:"user_id"`
	Category string `json:"category"`
	ItemName string `json:"item_name"`
	VoteType string `json:"vote_type"`
}

// VoteHandler records a single immutable vote. Repeat votes on the same item
// are allowed.
func (h *APIHandler) VoteHandler(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.authorizeUser(w, r, req.UserID) {
		return
	}

	vote := &model.Vote{
		UserID:   req.UserID,
		Category: req.Category,
		ItemName: req.ItemName,
		VoteType: req.VoteType,
	}
	if err := h.voteRepo.CreateVote(vote); err != nil {
		logger.Error("Error saving vote", logger.Int64("userID", req.UserID), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	logger.Info("Vote recorded",
		logger.Int64("userID", req.UserID),
		logger.String("category", req.Category),
		logger.String("itemName", req.ItemName))
	writeMessage(w, http.StatusOK, "Vote recorded!")
}

// ListVotesHandler returns the caller's vote history.
func (h *APIHandler) ListVotesHandler(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if !h.authorizeUser(w, r, userID) {
		return
	}

	votes, err := h.voteRepo.GetVotesByUserID(userID)
	if err != nil {
		logger.Error("Error listing votes", logger.Int64("userID", userID), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if votes == nil {
		votes = []model.Vote{}
	}

	writeJSON(w, http.StatusOK, votes)
}
