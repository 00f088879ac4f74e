package models

import "time"

// Follow is a directed edge, UserID receives the posts of AuthorID in the feed.
// The pair is unique, rows are hard deleted on unfollow.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_follow_pair"`
	User     User `json:"user"`
	AuthorID uint `json:"author_id" gorm:"uniqueIndex:idx_follow_pair;index"`
	Author   User `json:"author"`
}
