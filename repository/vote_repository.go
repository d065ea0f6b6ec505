package repository

import (
	"fmt"

	"coindash/model"

	"gorm.io/gorm"
)

// VoteRepository defines the interface for vote records. Votes are
// append-only; there is no update or delete.
type VoteRepository interface {
	CreateVote(vote *model.Vote) error
	GetVotesByUserID(userID int64) ([]model.Vote, error)
}

// gormVoteRepository implements VoteRepository on the GORM connection.
type gormVoteRepository struct {
	db *gorm.DB
}

// NewGormVoteRepository creates a new gormVoteRepository.
func NewGormVoteRepository(db *gorm.DB) VoteRepository {
	return &gormVoteRepository{db: db}
}

// CreateVote inserts an immutable vote record.
func (r *gormVoteRepository) CreateVote(vote *model.Vote) error {
	if err := r.db.Create(vote).Error; err != nil {
		return fmt.Errorf("failed to insert vote for user %d: %w", vote.UserID, err)
	}
	return nil
}

// GetVotesByUserID returns all votes recorded by a user, newest first.
func (r *gormVoteRepository) GetVotesByUserID(userID int64) ([]model.Vote, error) {
	var votes []model.Vote
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to query votes for user %d: %w", userID, err)
	}
	return votes, nil
}
