package models

import (
	"time"
)

// Comment is a mock resource owned by a User and attached to a Post, both
// within the same tenant.
type Comment struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Content      string `gorm:"type:text;not null"`
	UserID       string `gorm:"type:char(36);not null;index"`
	PostID       string `gorm:"type:char(36);not null;index"`
	ApiAccountID string `gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
