package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/validate"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignUpInput is the request body for signup and signin.
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp creates a tenant: validates credentials, hashes the password,
// issues a bearer token, and seeds the sandbox. Account creation and seeding
// commit together or not at all.
func SignUp(db *gorm.DB, cfg *config.Config, in SignUpInput) (*models.AuthAccount, error) {
	v := validate.New()
	v.RequireString("email", in.Email)
	v.Email("email", in.Email)
	v.RequireString("password", in.Password)
	v.MinLen("password", in.Password, 8)

	if in.Email != "" {
		taken, err := accountEmailInUse(db, in.Email, "")
		if err != nil {
			return nil, err
		}
		if taken {
			v.Add("email", "Email already in use.", in.Email)
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	account := models.ApiAccount{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	token, err := issueToken(cfg.JWTSecret, account.ID)
	if err != nil {
		return nil, err
	}
	account.Token = token

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		return SeedAccount(tx, account.ID)
	})
	if err != nil {
		return nil, err
	}

	auth := account.Auth()
	return &auth, nil
}

// SignIn verifies credentials and issues a fresh bearer token, which is also
// stored on the account row.
func SignIn(db *gorm.DB, cfg *config.Config, in SignUpInput) (*models.AuthAccount, error) {
	v := validate.New()
	v.RequireString("email", in.Email)
	v.RequireString("password", in.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var account models.ApiAccount
	err := db.Where("email = ?", in.Email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		v.Add("email", fmt.Sprintf("Account with email %q does not exist.", in.Email), in.Email)
		return nil, v.Err()
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		v.Add("password", "Incorrect password.", nil)
		return nil, v.Err()
	}

	token, err := issueToken(cfg.JWTSecret, account.ID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(&account).Update("token", token).Error; err != nil {
		return nil, err
	}
	account.Token = token

	auth := account.Auth()
	return &auth, nil
}

// ValidateToken verifies a bearer token and resolves it to a live account.
// Any failure, including a token for a deleted account, is an auth failure.
func ValidateToken(db *gorm.DB, secret, tokenString string) (*models.ApiAccount, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parse failed: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("token carries no subject")
	}

	var account models.ApiAccount
	if err := db.Where("id = ?", claims.Subject).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no account for token subject")
		}
		return nil, err
	}
	return &account, nil
}

// issueToken signs an HS256 bearer token carrying the account id. Tokens are
// API keys: no expiry; they stop verifying when the account goes away.
func issueToken(secret, accountID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  accountID,
		IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
