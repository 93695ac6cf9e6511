package services

import (
	"fmt"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/internal/validate"
	"gorm.io/gorm"
)

// CreatePostInput is the request body for creating a post.
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// UpdatePostInput is the request body for a partial post update.
type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	UserID  *string `json:"userId"`
}

// PostListResult is the list envelope for posts.
type PostListResult struct {
	Data  []models.PublicPost `json:"data"`
	Total int64               `json:"total"`
	Skip  int                 `json:"skip"`
	Take  int                 `json:"take"`
}

// ListPosts returns a tenant-scoped page of posts.
func ListPosts(db *gorm.DB, caller types.CallerContext, p ListParams) (*PostListResult, error) {
	var total int64
	if err := scopedPosts(db, caller).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := scopedPosts(db, caller).
		Order(p.order()).
		Offset(p.Skip).
		Limit(p.Take).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	data := make([]models.PublicPost, 0, len(posts))
	for _, post := range posts {
		data = append(data, post.Public())
	}

	return &PostListResult{Data: data, Total: total, Skip: p.Skip, Take: p.Take}, nil
}

// GetPostByID returns the scoped post or a field error on the id param.
func GetPostByID(db *gorm.DB, caller types.CallerContext, id string) (*models.PublicPost, error) {
	post, err := findScopedPost(db, caller, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, postNotFound(id)
	}
	pub := post.Public()
	return &pub, nil
}

// CreatePost validates shape and the scoped owner reference, then applies
// the duality branch.
func CreatePost(db *gorm.DB, caller types.CallerContext, in CreatePostInput) (*models.PublicPost, error) {
	v := validate.New()
	v.RequireString("title", in.Title)
	v.RequireString("content", in.Content)
	v.RequireString("userId", in.UserID)

	if in.UserID != "" {
		owner, err := findScopedUser(db, caller, in.UserID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			v.Add("userId", fmt.Sprintf("User with id %q does not exist.", in.UserID), in.UserID)
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	id, now := stampNew()
	post := models.Post{
		ID:           id,
		Title:        in.Title,
		Content:      in.Content,
		UserID:       in.UserID,
		ApiAccountID: caller.TenantID,
	}

	if mocked(caller) {
		post.CreatedAt = now
		post.UpdatedAt = now
		pub := post.Public()
		return &pub, nil
	}

	if err := db.Create(&post).Error; err != nil {
		return nil, err
	}
	pub := post.Public()
	return &pub, nil
}

// UpdatePost applies a partial update; a changed owner reference must
// resolve within the caller's scope.
func UpdatePost(db *gorm.DB, caller types.CallerContext, id string, in UpdatePostInput) (*models.PublicPost, error) {
	post, err := findScopedPost(db, caller, id)
	if err != nil {
		return nil, err
	}

	v := validate.New()
	if post == nil {
		v.AddAt(types.LocationParams, "id", fmt.Sprintf("Post with id %q does not exist.", id), id)
	}

	if in.Title != nil {
		v.RequireString("title", *in.Title)
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

	if err := v.Err(); err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.UserID != nil {
		post.UserID = *in.UserID
	}

	if mocked(caller) {
		_, now := stampNew()
		post.UpdatedAt = now
		pub := post.Public()
		return &pub, nil
	}

	if err := db.Save(post).Error; err != nil {
		return nil, err
	}
	pub := post.Public()
	return &pub, nil
}

// DeletePost removes the scoped post, or echoes it on the mock path.
func DeletePost(db *gorm.DB, caller types.CallerContext, id string) (*models.PublicPost, error) {
	post, err := findScopedPost(db, caller, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, postNotFound(id)
	}

	pub := post.Public()
	if mocked(caller) {
		return &pub, nil
	}

	if err := db.Delete(post).Error; err != nil {
		return nil, err
	}
	return &pub, nil
}

func postNotFound(id string) error {
	return &types.ValidationError{Errors: []types.FieldError{{
		Type:     "field",
		Value:    id,
		Msg:      fmt.Sprintf("Post with id %q does not exist.", id),
		Path:     "id",
		Location: types.LocationParams,
	}}}
}
