package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
)

// DoJSON performs a request with an optional JSON body and bearer token.
// The timeout is disabled: signup seeds the whole sandbox in one request.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// SignUpAccount registers a tenant through the API and returns the
// token-bearing account
func SignUpAccount(t *testing.T, app *fiber.App, email, password string) models.AuthAccount {
	t.Helper()

	resp := DoJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	AssertStatus(t, resp, 200)

	var account models.AuthAccount
	ParseJSON(t, resp, &account)
	if account.Token == "" {
		t.Fatal("Expected signup to return a bearer token")
	}
	return account
}
