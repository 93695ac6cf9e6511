package services

import (
	"errors"
	"fmt"

	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/internal/validate"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountResources reports how many resources a tenant owns.
type AccountResources struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}

// UpdateEmailInput is the request body for an account email change.
type UpdateEmailInput struct {
	Email string `json:"email"`
}

// UpdatePasswordInput is the request body for an account password change.
// The current password must be re-entered.
type UpdatePasswordInput struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// GetAccountResources counts the caller's owned users, posts, and comments.
func GetAccountResources(db *gorm.DB, caller types.CallerContext) (*AccountResources, error) {
	var res AccountResources
	if err := scopedUsers(db, caller).Count(&res.Users).Error; err != nil {
		return nil, err
	}
	if err := scopedPosts(db, caller).Count(&res.Posts).Error; err != nil {
		return nil, err
	}
	if err := scopedComments(db, caller).Count(&res.Comments).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// ClearAccountResources deletes every resource the caller owns in a single
// transaction and returns the (zero) counts.
func ClearAccountResources(db *gorm.DB, caller types.CallerContext) (*AccountResources, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		return clearResources(tx, caller.TenantID)
	})
	if err != nil {
		return nil, err
	}
	return &AccountResources{}, nil
}

// ResetAccountResources clears the sandbox and reseeds the fixed batch in
// one transaction, so a failure rolls back to the pre-reset state rather
// than leaving a partially seeded tenant.
func ResetAccountResources(db *gorm.DB, caller types.CallerContext) (*AccountResources, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := clearResources(tx, caller.TenantID); err != nil {
			return err
		}
		return SeedAccount(tx, caller.TenantID)
	})
	if err != nil {
		return nil, err
	}
	return GetAccountResources(db, caller)
}

func clearResources(tx *gorm.DB, accountID string) error {
	// Children first; the store cascade would handle it, but explicit order
	// keeps this correct on dialects running without FK enforcement.
	if err := tx.Where("api_account_id = ?", accountID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("api_account_id = ?", accountID).Delete(&models.Post{}).Error; err != nil {
		return err
	}
	return tx.Where("api_account_id = ?", accountID).Delete(&models.User{}).Error
}

// UpdateAccountEmail changes the account email; account emails are the one
// globally unique field across tenants.
func UpdateAccountEmail(db *gorm.DB, accountID string, in UpdateEmailInput) (*models.PublicAccount, error) {
	account, err := findAccount(db, accountID)
	if err != nil {
		return nil, err
	}

	v := validate.New()
	v.RequireString("email", in.Email)
	v.Email("email", in.Email)
	if in.Email != "" && in.Email != account.Email {
		taken, err := accountEmailInUse(db, in.Email, account.ID)
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

	if err := db.Model(account).Update("email", in.Email).Error; err != nil {
		return nil, err
	}
	account.Email = in.Email
	pub := account.Public()
	return &pub, nil
}

// UpdateAccountPassword changes the account password, gated by re-entry of
// the current one.
func UpdateAccountPassword(db *gorm.DB, cfg *config.Config, accountID string, in UpdatePasswordInput) (*models.PublicAccount, error) {
	account, err := findAccount(db, accountID)
	if err != nil {
		return nil, err
	}

	v := validate.New()
	v.RequireString("password", in.Password)
	v.RequireString("newPassword", in.NewPassword)
	v.MinLen("newPassword", in.NewPassword, 8)

	if in.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
			v.Add("password", "Incorrect password.", nil)
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	if err := db.Model(account).Update("password_hash", string(hash)).Error; err != nil {
		return nil, err
	}
	pub := account.Public()
	return &pub, nil
}

// DeleteAccount removes the account; the store cascade removes every
// resource it owns.
func DeleteAccount(db *gorm.DB, accountID string) (*models.PublicAccount, error) {
	account, err := findAccount(db, accountID)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Mirror of clearResources: keeps dialects without FK enforcement
		// consistent with the cascade contract.
		if err := clearResources(tx, account.ID); err != nil {
			return err
		}
		return tx.Delete(account).Error
	})
	if err != nil {
		return nil, err
	}
	pub := account.Public()
	return &pub, nil
}

func findAccount(db *gorm.DB, accountID string) (*models.ApiAccount, error) {
	var account models.ApiAccount
	err := db.Where("id = ?", accountID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &types.ValidationError{Errors: []types.FieldError{{
			Type:     "field",
			Value:    accountID,
			Msg:      fmt.Sprintf("Account with id %q does not exist.", accountID),
			Path:     "id",
			Location: types.LocationParams,
		}}}
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
