package services_test

import (
	"fmt"
	"testing"

	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/tests/helpers"
)

func TestCreatePostRejectsCrossTenantOwner(t *testing.T) {
	db := helpers.OpenTestDB(t)
	callerA := liveTenant(t, db, "a@example.com")
	callerB := liveTenant(t, db, "b@example.com")

	owner := helpers.CreateTestUser(t, db, callerA.TenantID, "owner")

	// The owner exists, but not in tenant B's scope
	_, err := services.CreatePost(db, callerB, services.CreatePostInput{
		Title:   "Trespassing",
		Content: "Content.",
		UserID:  owner.ID,
	})
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "userId", types.LocationBody)
}

func TestCreateCommentReportsShapeAndReferenceErrorsTogether(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	_, err := services.CreateComment(db, caller, services.CreateCommentInput{
		UserID: "no-such-user",
		PostID: "no-such-post",
	})
	ve := validationErr(t, err)

	if len(ve.Errors) != 3 {
		t.Fatalf("Expected 3 field errors, got %d: %+v", len(ve.Errors), ve.Errors)
	}
	helpers.AssertFieldError(t, ve.Errors, "content", types.LocationBody)
	helpers.AssertFieldError(t, ve.Errors, "userId", types.LocationBody)
	helpers.AssertFieldError(t, ve.Errors, "postId", types.LocationBody)
}

func TestCreateCommentDefaultTenantIsSimulated(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := defaultTenant(t, db)

	user := helpers.CreateTestUser(t, db, caller.TenantID, "commenter")
	post := helpers.CreateTestPost(t, db, caller.TenantID, user.ID, "Sandbox post")

	created, err := services.CreateComment(db, caller, services.CreateCommentInput{
		Content: "Looks good.",
		UserID:  user.ID,
		PostID:  post.ID,
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("Expected a fabricated record, got %+v", created)
	}

	result, err := services.ListComments(db, caller, services.DefaultListParams())
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("Expected nothing persisted for the default tenant, got total %d", result.Total)
	}
}

func TestListCommentsPaginationWindow(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	user := helpers.CreateTestUser(t, db, caller.TenantID, "author")
	post := helpers.CreateTestPost(t, db, caller.TenantID, user.ID, "Threaded")
	for i := 0; i < 12; i++ {
		helpers.CreateTestComment(t, db, caller.TenantID, user.ID, post.ID, fmt.Sprintf("Comment %d", i))
	}

	p := services.DefaultListParams()
	p.Skip = 2
	p.Take = 5

	result, err := services.ListComments(db, caller, p)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(result.Data) != 5 {
		t.Errorf("Expected a page of 5, got %d", len(result.Data))
	}
	if result.Total != 12 {
		t.Errorf("Expected total 12, got %d", result.Total)
	}
	if result.Skip != 2 || result.Take != 5 {
		t.Errorf("Expected the window echoed back, got skip=%d take=%d", result.Skip, result.Take)
	}
}

func TestUpdatePostOwnerMustResolveInScope(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	user := helpers.CreateTestUser(t, db, caller.TenantID, "author")
	other := helpers.CreateTestUser(t, db, caller.TenantID, "editor")
	post := helpers.CreateTestPost(t, db, caller.TenantID, user.ID, "Reassignable")

	// Reassigning to a user of the same tenant works
	updated, err := services.UpdatePost(db, caller, post.ID, services.UpdatePostInput{
		UserID: &other.ID,
	})
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if updated.UserID != other.ID {
		t.Errorf("Expected owner %q, got %q", other.ID, updated.UserID)
	}

	// A dangling reference does not
	bogus := "no-such-user"
	_, err = services.UpdatePost(db, caller, post.ID, services.UpdatePostInput{
		UserID: &bogus,
	})
	ve := validationErr(t, err)
	helpers.AssertFieldError(t, ve.Errors, "userId", types.LocationBody)
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := helpers.OpenTestDB(t)
	caller := liveTenant(t, db, "tenant@example.com")

	user := helpers.CreateTestUser(t, db, caller.TenantID, "author")
	post := helpers.CreateTestPost(t, db, caller.TenantID, user.ID, "Doomed")
	helpers.CreateTestComment(t, db, caller.TenantID, user.ID, post.ID, "On the doomed post")

	if _, err := services.DeletePost(db, caller, post.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}

	res, err := services.GetAccountResources(db, caller)
	if err != nil {
		t.Fatalf("GetAccountResources failed: %v", err)
	}
	if res.Posts != 0 || res.Comments != 0 {
		t.Errorf("Expected the post and its comments gone, got %+v", res)
	}
	if res.Users != 1 {
		t.Errorf("Expected the author to survive, got %+v", res)
	}
}
