package services

import (
	"errors"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"gorm.io/gorm"
)

// Tenant scoping layer: every resource query is conditioned on the caller's
// tenant here and nowhere else. An id owned by another tenant resolves the
// same way as an id that was never issued, so cross-tenant existence is
// never observable.

// scopedUsers returns a User query filtered to the caller's tenant.
func scopedUsers(db *gorm.DB, caller types.CallerContext) *gorm.DB {
	return db.Model(&models.User{}).Where("api_account_id = ?", caller.TenantID)
}

// scopedPosts returns a Post query filtered to the caller's tenant.
func scopedPosts(db *gorm.DB, caller types.CallerContext) *gorm.DB {
	return db.Model(&models.Post{}).Where("api_account_id = ?", caller.TenantID)
}

// scopedComments returns a Comment query filtered to the caller's tenant.
func scopedComments(db *gorm.DB, caller types.CallerContext) *gorm.DB {
	return db.Model(&models.Comment{}).Where("api_account_id = ?", caller.TenantID)
}

// findScopedUser loads a user by id within the caller's tenant. A nil user
// with a nil error means the id does not resolve for this caller.
func findScopedUser(db *gorm.DB, caller types.CallerContext, id string) (*models.User, error) {
	var user models.User
	err := scopedUsers(db, caller).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// findScopedPost loads a post by id within the caller's tenant.
func findScopedPost(db *gorm.DB, caller types.CallerContext, id string) (*models.Post, error) {
	var post models.Post
	err := scopedPosts(db, caller).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// findScopedComment loads a comment by id within the caller's tenant.
func findScopedComment(db *gorm.DB, caller types.CallerContext, id string) (*models.Comment, error) {
	var comment models.Comment
	err := scopedComments(db, caller).Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// usernameInUse checks username uniqueness within the caller's tenant only.
// excludeID skips the record being updated.
func usernameInUse(db *gorm.DB, caller types.CallerContext, username, excludeID string) (bool, error) {
	var count int64
	query := scopedUsers(db, caller).Where("username = ?", username)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// userEmailInUse checks user email uniqueness within the caller's tenant only.
func userEmailInUse(db *gorm.DB, caller types.CallerContext, email, excludeID string) (bool, error) {
	var count int64
	query := scopedUsers(db, caller).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// accountEmailInUse checks ApiAccount email uniqueness. This is the one
// uniqueness check that is global across tenants.
func accountEmailInUse(db *gorm.DB, email, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.ApiAccount{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
