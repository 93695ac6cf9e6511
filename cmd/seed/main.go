// Seeds the default (shared sandbox) account at deploy time: creates the
// account row for DEFAULT_ACCOUNT_ID if it is missing, then resets its
// sandbox to the fixed synthetic batch.
package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/database"
	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var account models.ApiAccount
	err = db.Where("id = ?", cfg.DefaultAccountID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The default account is never signed into; the hash only has to be
		// a valid bcrypt value.
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.JWTSecret), cfg.BcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash default account password: %v", err)
		}
		account = models.ApiAccount{
			ID:           cfg.DefaultAccountID,
			Email:        "default@jsonmockdata.local",
			PasswordHash: string(hash),
		}
		if err := db.Create(&account).Error; err != nil {
			log.Fatalf("Failed to create default account: %v", err)
		}
		log.Printf("Created default account %s", account.ID)
	} else if err != nil {
		log.Fatalf("Failed to look up default account: %v", err)
	}

	caller := types.CallerContext{TenantID: account.ID}
	res, err := services.ResetAccountResources(db, caller)
	if err != nil {
		log.Fatalf("Failed to seed default sandbox: %v", err)
	}

	log.Printf("Default sandbox seeded: %d users, %d posts, %d comments",
		res.Users, res.Posts, res.Comments)
}
