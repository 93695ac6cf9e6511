package services_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/tests/helpers"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "unit-test-secret",
		BcryptCost:       bcrypt.MinCost,
		DefaultAccountID: "default-account",
	}
}

func TestSignUpSeedsSandbox(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	account, err := services.SignUp(db, cfg, services.SignUpInput{
		Email:    "new@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if account.Token == "" {
		t.Error("Expected a bearer token")
	}

	res, err := services.GetAccountResources(db, types.CallerContext{TenantID: account.ID})
	if err != nil {
		t.Fatalf("GetAccountResources failed: %v", err)
	}
	if res.Users != 10 || res.Posts != 100 || res.Comments != 250 {
		t.Errorf("Expected the fixed seed batch 10/100/250, got %+v", res)
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	in := services.SignUpInput{Email: "dup@example.com", Password: "password123"}
	if _, err := services.SignUp(db, cfg, in); err != nil {
		t.Fatalf("First SignUp failed: %v", err)
	}

	_, err := services.SignUp(db, cfg, in)
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "email", types.LocationBody)
}

func TestSignUpValidatesCredentialShape(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	_, err := services.SignUp(db, cfg, services.SignUpInput{
		Email:    "not-an-email",
		Password: "short",
	})
	ve := validationErr(t, err)

	if len(ve.Errors) != 2 {
		t.Fatalf("Expected 2 field errors, got %d: %+v", len(ve.Errors), ve.Errors)
	}
	helpers.AssertFieldError(t, ve.Errors, "email", types.LocationBody)
	helpers.AssertFieldError(t, ve.Errors, "password", types.LocationBody)
}

func TestSignInIssuesWorkingToken(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	created, err := services.SignUp(db, cfg, services.SignUpInput{
		Email:    "login@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	signed, err := services.SignIn(db, cfg, services.SignUpInput{
		Email:    "login@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if signed.ID != created.ID {
		t.Errorf("Expected the same account, got %q and %q", signed.ID, created.ID)
	}

	account, err := services.ValidateToken(db, cfg.JWTSecret, signed.Token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if account.ID != created.ID {
		t.Errorf("Token resolved to %q, want %q", account.ID, created.ID)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	if _, err := services.SignUp(db, cfg, services.SignUpInput{
		Email:    "victim@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	_, err := services.SignIn(db, cfg, services.SignUpInput{
		Email:    "victim@example.com",
		Password: "wrong-password",
	})
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "password", types.LocationBody)
}

func TestSignInUnknownEmail(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	_, err := services.SignIn(db, cfg, services.SignUpInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "email", types.LocationBody)
}

func TestValidateTokenRejectsBadTokens(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cfg := testConfig()

	account, err := services.SignUp(db, cfg, services.SignUpInput{
		Email:    "tok@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if _, err := services.ValidateToken(db, cfg.JWTSecret, account.Token+"x"); err == nil {
		t.Error("Expected a tampered token to be rejected")
	}
	if _, err := services.ValidateToken(db, "another-secret", account.Token); err == nil {
		t.Error("Expected a token verified with the wrong secret to be rejected")
	}

	// A valid token for a deleted account stops working
	if _, err := services.DeleteAccount(db, account.ID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	if _, err := services.ValidateToken(db, cfg.JWTSecret, account.Token); err == nil {
		t.Error("Expected the token of a deleted account to be rejected")
	}
}
