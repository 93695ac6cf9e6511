package models

import (
	"time"
)

// User is a mock resource. Username and email are unique within the owning
// account only; two tenants may each hold a user with the same email.
type User struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Username     string `gorm:"size:255;not null;index:idx_users_account_username,unique"`
	Email        string `gorm:"size:255;not null;index:idx_users_account_email,unique"`
	FirstName    string `gorm:"size:255;not null"`
	LastName     string `gorm:"size:255;not null"`
	Age          *int
	Image        *string `gorm:"size:1024"`
	Job          *string `gorm:"size:255"`
	Bio          *string `gorm:"size:2048"`
	Country      *string `gorm:"size:255"`
	Height       *float64
	Weight       *float64
	ApiAccountID string `gorm:"type:char(36);not null;index;index:idx_users_account_username,unique;index:idx_users_account_email,unique"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts    []Post    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
