package models

import (
	"time"
)

// ApiAccount is the identity of an authenticated caller and the unit of
// data isolation: every mock resource row belongs to exactly one account.
type ApiAccount struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Token        string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Users    []User    `gorm:"foreignKey:ApiAccountID;constraint:OnDelete:CASCADE"`
	Posts    []Post    `gorm:"foreignKey:ApiAccountID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:ApiAccountID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for ApiAccount
func (ApiAccount) TableName() string {
	return "api_accounts"
}
