package services_test

import (
	"testing"

	"gorm.io/gorm"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/tests/helpers"
)

// liveTenant creates an account and returns the caller acting on it
func liveTenant(t *testing.T, db *gorm.DB, email string) types.CallerContext {
	t.Helper()
	account := helpers.CreateTestAccount(t, db, email)
	return types.CallerContext{TenantID: account.ID}
}

// defaultTenant creates the shared sandbox account and returns the
// unauthenticated caller resolved to it
func defaultTenant(t *testing.T, db *gorm.DB) types.CallerContext {
	t.Helper()
	account := helpers.CreateTestAccount(t, db, "default@example.com")
	return types.CallerContext{TenantID: account.ID, IsDefaultTenant: true}
}

func countUsers(t *testing.T, db *gorm.DB, accountID string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.User{}).Where("api_account_id = ?", accountID).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	return n
}

func validationErr(t *testing.T, err error) *types.ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("Expected a validation error, got nil")
	}
	ve, ok := err.(*types.ValidationError)
	if !ok {
		t.Fatalf("Expected *types.ValidationError, got %T: %v", err, err)
	}
	return ve
}

func TestCreateUserPersistsForTenant(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	created, err := services.CreateUser(db, caller, services.CreateUserInput{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected a generated id")
	}
	if created.Username != "jdoe" || created.Email != "jdoe@example.com" {
		t.Errorf("Unexpected record: %+v", created)
	}
	if n := countUsers(t, db, caller.TenantID); n != 1 {
		t.Errorf("Expected 1 persisted user, got %d", n)
	}
}

func TestCreateUserReportsEveryFieldError(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	_, err := services.CreateUser(db, caller, services.CreateUserInput{})
	ve := validationErr(t, err)

	if len(ve.Errors) != 4 {
		t.Fatalf("Expected 4 field errors, got %d: %+v", len(ve.Errors), ve.Errors)
	}
	for _, path := range []string{"username", "email", "firstName", "lastName"} {
		helpers.AssertFieldError(t, ve.Errors, path, types.LocationBody)
	}
}

func TestCreateUserDefaultTenantIsSimulated(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := defaultTenant(t, db)

	in := services.CreateUserInput{
		Username:  "ghost",
		Email:     "ghost@example.com",
		FirstName: "Gg",
		LastName:  "Host",
	}

	first, err := services.CreateUser(db, caller, in)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	second, err := services.CreateUser(db, caller, in)
	if err != nil {
		t.Fatalf("Repeated CreateUser failed: %v", err)
	}

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Errorf("Expected distinct fabricated ids, got %q and %q", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("Expected fabricated timestamps")
	}
	if n := countUsers(t, db, caller.TenantID); n != 0 {
		t.Errorf("Expected no persisted rows for the default tenant, got %d", n)
	}
}

func TestUsernameUniquenessIsTenantScoped(t *testing.T) {
	db := helpers.OpenTestDB(t)
	callerA := liveTenant(t, db, "a@example.com")
	callerB := liveTenant(t, db, "b@example.com")

	in := services.CreateUserInput{
		Username:  "shared",
		Email:     "shared@example.com",
		FirstName: "First",
		LastName:  "Last",
	}

	if _, err := services.CreateUser(db, callerA, in); err != nil {
		t.Fatalf("CreateUser in tenant A failed: %v", err)
	}
	// Same username and email in another tenant is allowed
	if _, err := services.CreateUser(db, callerB, in); err != nil {
		t.Fatalf("CreateUser in tenant B failed: %v", err)
	}

	// But not a second time within the same tenant
	_, err := services.CreateUser(db, callerA, in)
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "username", types.LocationBody)
	helpers.AssertFieldError(t, ve.Errors, "email", types.LocationBody)
}

func TestGetUserDoesNotResolveAcrossTenants(t *testing.T) {
	db := helpers.OpenTestDB(t)
	callerA := liveTenant(t, db, "a@example.com")
	callerB := liveTenant(t, db, "b@example.com")

	user := helpers.CreateTestUser(t, db, callerA.TenantID, "hidden")

	if _, err := services.GetUserByID(db, callerA, user.ID); err != nil {
		t.Fatalf("Owner lookup failed: %v", err)
	}

	_, err := services.GetUserByID(db, callerB, user.ID)
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "id", types.LocationParams)
}

func TestUpdateUserAppliesOnlyProvidedFields(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")
	user := helpers.CreateTestUser(t, db, caller.TenantID, "partial")

	newFirst := "Changed"
	updated, err := services.UpdateUser(db, caller, user.ID, services.UpdateUserInput{
		FirstName: &newFirst,
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if updated.FirstName != "Changed" {
		t.Errorf("Expected firstName to change, got %q", updated.FirstName)
	}
	if updated.Username != user.Username || updated.Email != user.Email {
		t.Errorf("Expected untouched fields to survive, got %+v", updated)
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if stored.FirstName != "Changed" || stored.LastName != user.LastName {
		t.Errorf("Persisted row does not match: %+v", stored)
	}
}

func TestUpdateUserAggregatesNotFoundWithFieldErrors(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	badEmail := "not-an-email"
	_, err := services.UpdateUser(db, caller, "no-such-id", services.UpdateUserInput{
		Email: &badEmail,
	})
	ve := validationErr(t, err)

	if len(ve.Errors) != 2 {
		t.Fatalf("Expected 2 field errors, got %d: %+v", len(ve.Errors), ve.Errors)
	}
	helpers.AssertFieldError(t, ve.Errors, "id", types.LocationParams)
	helpers.AssertFieldError(t, ve.Errors, "email", types.LocationBody)
}

func TestDeleteUserCascadesOwnedResources(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	user := helpers.CreateTestUser(t, db, caller.TenantID, "author")
	post := helpers.CreateTestPost(t, db, caller.TenantID, user.ID, "A post")
	helpers.CreateTestComment(t, db, caller.TenantID, user.ID, post.ID, "A comment")

	deleted, err := services.DeleteUser(db, caller, user.ID)
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if deleted.ID != user.ID {
		t.Errorf("Expected the deleted record to be echoed, got %+v", deleted)
	}

	res, err := services.GetAccountResources(db, caller)
	if err != nil {
		t.Fatalf("GetAccountResources failed: %v", err)
	}
	if res.Users != 0 || res.Posts != 0 || res.Comments != 0 {
		t.Errorf("Expected cascade to remove everything, got %+v", res)
	}
}

func TestDeleteUserDefaultTenantEchoesWithoutDeleting(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := defaultTenant(t, db)

	user := helpers.CreateTestUser(t, db, caller.TenantID, "sandboxed")

	deleted, err := services.DeleteUser(db, caller, user.ID)
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if deleted.ID != user.ID {
		t.Errorf("Expected the record to be echoed, got %+v", deleted)
	}
	if n := countUsers(t, db, caller.TenantID); n != 1 {
		t.Errorf("Expected the sandbox row to survive, got %d rows", n)
	}
}
