package model

import "time"

// Vote is an append-only record of a user's up/down vote on a dashboard item.
// Multiple votes per user per item are allowed; there is no upsert.
type Vote struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Category  string    `gorm:"column:category" json:"category"`
	ItemName  string    `gorm:"column:item_name" json:"item_name"`
	VoteType  string    `gorm:"column:vote_type" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName maps Vote onto the table created by db.InitDB.
func (Vote) TableName() string {
	return "votes"
}
