package repository

import (
	"database/sql"
	"fmt"

	"coindash/model"
)

// PreferenceRepository defines the interface for user preference operations.
type PreferenceRepository interface {
	// CreateWithOnboarding inserts the preferences row and flips the user's
	// is_onboarded flag in a single transaction.
	CreateWithOnboarding(prefs *model.Preferences) error
	GetByUserID(userID int64) (*model.Preferences, error)
}

// mysqlPreferenceRepository implements PreferenceRepository for MySQL.
type mysqlPreferenceRepository struct {
	db *sql.DB
}

// NewMySQLPreferenceRepository creates a new mysqlPreferenceRepository.
func NewMySQLPreferenceRepository(db *sql.DB) PreferenceRepository {
	return &mysqlPreferenceRepository{db: db}
}

// CreateWithOnboarding inserts the preferences row and marks the user as
// onboarded. Both writes commit or roll back together, so a crash can not
// leave the onboarding flag and the preferences row disagreeing.
func (r *mysqlPreferenceRepository) CreateWithOnboarding(prefs *model.Preferences) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin preferences transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO user_preferences (user_id, favorite_coins, investor_type, content_preferences) VALUES (?, ?, ?, ?)",
		prefs.UserID, prefs.FavoriteCoins, prefs.InvestorType, prefs.ContentPreferences,
	)
	if err != nil {
		return fmt.Errorf("failed to insert preferences for user %d: %w", prefs.UserID, err)
	}

	if _, err := tx.Exec("UPDATE users SET is_onboarded = ? WHERE id = ?", true, prefs.UserID); err != nil {
		return fmt.Errorf("failed to mark user %d as onboarded: %w", prefs.UserID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences transaction: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		prefs.ID = id
	}
	return nil
}

// GetByUserID retrieves the preferences row for a user.
func (r *mysqlPreferenceRepository) GetByUserID(userID int64) (*model.Preferences, error) {
	query := "SELECT id, user_id, favorite_coins, investor_type, content_preferences FROM user_preferences WHERE user_id = ?"
	row := r.db.QueryRow(query, userID)
	prefs := &model.Preferences{}
	err := row.Scan(&prefs.ID, &prefs.UserID, &prefs.FavoriteCoins, &prefs.InvestorType, &prefs.ContentPreferences)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No preferences yet
		}
		return nil, fmt.Errorf("failed to scan preferences row for user %d: %w", userID, err)
	}
	return prefs, nil
}
