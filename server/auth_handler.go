package server

import (
	"encoding/json"
	"net/http"

	"coindash/core/auth"
	"coindash/logger"
	"coindash/model"
)

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler handles user registration requests.
func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	existing, err := h.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		logger.Error("[Register] Failed to check for existing user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if existing != nil {
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Register] Failed to hash password", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsOnboarded:  false,
	}
	id, err := h.userRepo.CreateUser(user)
	if err != nil {
		logger.Error("[Register] Failed to create user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	logger.Info("[Register] User registered", logger.Int64("userID", id), logger.String("email", req.Email))

	writeJSON(w, http.StatusOK, struct {
		Message string           `json:"message"`
		User    model.PublicUser `json:"user"`
	}{
		Message: "Register successfully",
		User:    model.PublicUser{ID: id, Name: req.Name, Email: req.Email},
	})
}

// LoginHandler handles user login requests.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		logger.Error("[Login] Failed to query user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		logger.Warn("[Login] Unknown email", logger.String("email", req.Email))
		writeMessage(w, http.StatusBadRequest, "Email not found")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("[Login] Password verification failed", logger.String("email", req.Email))
		writeMessage(w, http.StatusBadRequest, "Wrong password")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("[Login] Failed to generate token", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	logger.Info("[Login] Login successful", logger.Int64("userID", user.ID))

	writeJSON(w, http.StatusOK, struct {
		Message string            `json:"message"`
		Token   string            `json:"token"`
		User    model.SessionUser `json:"user"`
	}{
		Message: "login successful",
		Token:   token,
		User:    model.SessionUser{ID: user.ID, Name: user.Name, IsOnboarded: user.IsOnboarded},
	})
}
