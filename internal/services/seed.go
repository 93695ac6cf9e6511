package services

import (
	"fmt"
	"strings"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed batch sizes. Every tenant sandbox starts from, and resets to, exactly
// this shape.
const (
	SeedUsersPerAccount = 10
	SeedPostsPerUser    = 10
	SeedCommentsPerUser = 25
)

// SeedAccount populates an account's sandbox with the fixed synthetic batch:
// 10 users, 10 posts per user, and 25 comments per user attached to random
// posts of the same tenant. Runs against whatever handle it is given, so
// callers control transactionality.
func SeedAccount(db *gorm.DB, accountID string) error {
	users := make([]models.User, 0, SeedUsersPerAccount)
	posts := make([]models.Post, 0, SeedUsersPerAccount*SeedPostsPerUser)

	for i := 0; i < SeedUsersPerAccount; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		// A numeric suffix keeps usernames and emails unique within the batch
		// regardless of what the generator produces.
		username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), gofakeit.Number(10, 99)*100+i)

		age := gofakeit.Number(18, 80)
		image := gofakeit.URL()
		job := gofakeit.JobTitle()
		bio := gofakeit.Sentence(12)
		country := gofakeit.Country()
		height := gofakeit.Float64Range(150, 200)
		weight := gofakeit.Float64Range(50, 110)

		user := models.User{
			ID:           uuid.NewString(),
			Username:     username,
			Email:        username + "@" + gofakeit.DomainName(),
			FirstName:    first,
			LastName:     last,
			Age:          &age,
			Image:        &image,
			Job:          &job,
			Bio:          &bio,
			Country:      &country,
			Height:       &height,
			Weight:       &weight,
			ApiAccountID: accountID,
		}
		users = append(users, user)

		for j := 0; j < SeedPostsPerUser; j++ {
			posts = append(posts, models.Post{
				ID:           uuid.NewString(),
				Title:        gofakeit.Sentence(4),
				Content:      gofakeit.Paragraph(1, 4, 10, " "),
				UserID:       user.ID,
				ApiAccountID: accountID,
			})
		}
	}

	comments := make([]models.Comment, 0, SeedUsersPerAccount*SeedCommentsPerUser)
	for _, user := range users {
		for k := 0; k < SeedCommentsPerUser; k++ {
			post := posts[gofakeit.Number(0, len(posts)-1)]
			comments = append(comments, models.Comment{
				ID:           uuid.NewString(),
				Content:      gofakeit.Sentence(10),
				UserID:       user.ID,
				PostID:       post.ID,
				ApiAccountID: accountID,
			})
		}
	}

	if err := db.CreateInBatches(users, 50).Error; err != nil {
		return err
	}
	if err := db.CreateInBatches(posts, 100).Error; err != nil {
		return err
	}
	return db.CreateInBatches(comments, 100).Error
}
