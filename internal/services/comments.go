package services

import (
	"fmt"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/internal/validate"
	"gorm.io/gorm"
)

// CreateCommentInput is the request body for creating a comment.
type CreateCommentInput struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
	PostID  string `json:"postId"`
}

// UpdateCommentInput is the request body for a partial comment update.
type UpdateCommentInput struct {
	Content *string `json:"content"`
	UserID  *string `json:"userId"`
	PostID  *string `json:"postId"`
}

// CommentListResult is the list envelope for comments.
type CommentListResult struct {
	Data  []models.PublicComment `json:"data"`
	Total int64                  `json:"total"`
	Skip  int                    `json:"skip"`
	Take  int                    `json:"take"`
}

// ListComments returns a tenant-scoped page of comments.
func ListComments(db *gorm.DB, caller types.CallerContext, p ListParams) (*CommentListResult, error) {
	var total int64
	if err := scopedComments(db, caller).Count(&total).Error; err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := scopedComments(db, caller).
		Order(p.order()).
		Offset(p.Skip).
		Limit(p.Take).
		Find(&comments).Error; err != nil {
		return nil, err
	}

	data := make([]models.PublicComment, 0, len(comments))
	for _, comment := range comments {
		data = append(data, comment.Public())
	}

	return &CommentListResult{Data: data, Total: total, Skip: p.Skip, Take: p.Take}, nil
}

// GetCommentByID returns the scoped comment or a field error on the id param.
func GetCommentByID(db *gorm.DB, caller types.CallerContext, id string) (*models.PublicComment, error) {
	comment, err := findScopedComment(db, caller, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, commentNotFound(id)
	}
	pub := comment.Public()
	return &pub, nil
}

// CreateComment validates shape and both scoped references before the
// duality branch; a malformed field and a dangling reference surface
// together in one response.
func CreateComment(db *gorm.DB, caller types.CallerContext, in CreateCommentInput) (*models.PublicComment, error) {
	v := validate.New()
	v.RequireString("content", in.Content)
	v.RequireString("userId", in.UserID)
	v.RequireString("postId", in.PostID)

	if in.UserID != "" {
		owner, err := findScopedUser(db, caller, in.UserID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			v.Add("userId", fmt.Sprintf("User with id %q does not exist.", in.UserID), in.UserID)
		}
	}
	if in.PostID != "" {
		parent, err := findScopedPost(db, caller, in.PostID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			v.Add("postId", fmt.Sprintf("Post with id %q does not exist.", in.PostID), in.PostID)
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	id, now := stampNew()
	comment := models.Comment{
		ID:           id,
		Content:      in.Content,
		UserID:       in.UserID,
		PostID:       in.PostID,
		ApiAccountID: caller.TenantID,
	}

	if mocked(caller) {
		comment.CreatedAt = now
		comment.UpdatedAt = now
		pub := comment.Public()
		return &pub, nil
	}

	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	pub := comment.Public()
	return &pub, nil
}

// UpdateComment applies a partial update; changed references must resolve
// within the caller's scope.
func UpdateComment(db *gorm.DB, caller types.CallerContext, id string, in UpdateCommentInput) (*models.PublicComment, error) {
	comment, err := findScopedComment(db, caller, id)
	if err != nil {
		return nil, err
	}

	v := validate.New()
	if comment == nil {
		v.AddAt(types.LocationParams, "id", fmt.Sprintf("Comment with id %q does not exist.", id), id)
	}

	if in.Content != nil {
		v.RequireString("content", *in.Content)
	}
	if in.UserID != nil {
		v.RequireString("userId", *in.UserID)
		if *in.UserID != "" {
			owner, err := findScopedUser(db, caller, *in.UserID)
			if err != nil {
				return nil, err
			}
			if owner == nil {
				v.Add("userId", fmt.Sprintf("User with id %q does not exist.", *in.UserID), *in.UserID)
			}
		}
	}
	if in.PostID != nil {
		v.RequireString("postId", *in.PostID)
		if *in.PostID != "" {
			parent, err := findScopedPost(db, caller, *in.PostID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				v.Add("postId", fmt.Sprintf("Post with id %q does not exist.", *in.PostID), *in.PostID)
			}
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if in.Content != nil {
		comment.Content = *in.Content
	}
	if in.UserID != nil {
		comment.UserID = *in.UserID
	}
	if in.PostID != nil {
		comment.PostID = *in.PostID
	}

	if mocked(caller) {
		_, now := stampNew()
		comment.UpdatedAt = now
		pub := comment.Public()
		return &pub, nil
	}

	if err := db.Save(comment).Error; err != nil {
		return nil, err
	}
	pub := comment.Public()
	return &pub, nil
}

// DeleteComment removes the scoped comment, or echoes it on the mock path.
func DeleteComment(db *gorm.DB, caller types.CallerContext, id string) (*models.PublicComment, error) {
	comment, err := findScopedComment(db, caller, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, commentNotFound(id)
	}

	pub := comment.Public()
	if mocked(caller) {
		return &pub, nil
	}

	if err := db.Delete(comment).Error; err != nil {
		return nil, err
	}
	return &pub, nil
}

func commentNotFound(id string) error {
	return &types.ValidationError{Errors: []types.FieldError{{
		Type:     "field",
		Value:    id,
		Msg:      fmt.Sprintf("Comment with id %q does not exist.", id),
		Path:     "id",
		Location: types.LocationParams,
	}}}
}
