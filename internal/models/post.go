package models

import (
	"time"
)

// Post is a mock resource owned by a User within a tenant.
type Post struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Title        string `gorm:"size:255;not null"`
	Content      string `gorm:"type:text;not null"`
	UserID       string `gorm:"type:char(36);not null;index"`
	ApiAccountID string `gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Post
func (Post) TableName() string {
	return "posts"
}
