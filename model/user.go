package model

import "time"

// User represents a registered user.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not exposed in API responses
	IsOnboarded  bool      `json:"is_onboarded"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the subset of User returned by the registration endpoint.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionUser is the subset of User returned by the login endpoint.
type SessionUser struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsOnboarded bool   `json:"is_onboarded"`
}
