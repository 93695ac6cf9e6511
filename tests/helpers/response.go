package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
)

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseErrors decodes an error envelope body
func ParseErrors(t *testing.T, resp *http.Response) []types.FieldError {
	t.Helper()
	var envelope struct {
		Errors []types.FieldError `json:"errors"`
	}
	ParseJSON(t, resp, &envelope)
	if len(envelope.Errors) == 0 {
		t.Fatal("Expected at least one error in the envelope")
	}
	return envelope.Errors
}

// AssertFieldError verifies that the error set contains an error for the
// given path at the given location
func AssertFieldError(t *testing.T, errs []types.FieldError, path, location string) {
	t.Helper()
	for _, fe := range errs {
		if fe.Path == path && fe.Location == location {
			return
		}
	}
	t.Errorf("Expected a field error for path %q at location %q, got %+v", path, location, errs)
}
