package helpers

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
)

// CreateTestAccount inserts an ApiAccount row directly, bypassing signup
// and sandbox seeding
func CreateTestAccount(t *testing.T, db *gorm.DB, email string) models.ApiAccount {
	t.Helper()
	account := models.ApiAccount{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	return account
}

// CreateTestUser inserts a user row owned by the given account
func CreateTestUser(t *testing.T, db *gorm.DB, accountID, username string) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		ApiAccountID: accountID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// CreateTestPost inserts a post row owned by the given account
func CreateTestPost(t *testing.T, db *gorm.DB, accountID, userID, title string) models.Post {
	t.Helper()
	post := models.Post{
		ID:           uuid.NewString(),
		Title:        title,
		Content:      "Test post content.",
		UserID:       userID,
		ApiAccountID: accountID,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}
	return post
}

// CreateTestComment inserts a comment row owned by the given account
func CreateTestComment(t *testing.T, db *gorm.DB, accountID, userID, postID, content string) models.Comment {
	t.Helper()
	comment := models.Comment{
		ID:           uuid.NewString(),
		Content:      content,
		UserID:       userID,
		PostID:       postID,
		ApiAccountID: accountID,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	return comment
}
