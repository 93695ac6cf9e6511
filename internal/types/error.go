package types

import (
	"fmt"
	"strings"
)

// FieldError is a single machine-checkable validation failure, shaped for
// form-level mapping on the client.
type FieldError struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Path     string      `json:"path"`
	Location string      `json:"location"`
}

// Field error locations.
const (
	LocationBody    = "body"
	LocationParams  = "params"
	LocationQuery   = "query"
	LocationHeaders = "headers"
)

// ValidationError aggregates every field error found for a request.
// All applicable checks run before this is returned, so a single response
// carries the complete set.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Path, fe.Msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewFieldError builds a body-scoped field error.
func NewFieldError(path, msg string, value interface{}) FieldError {
	return FieldError{
		Type:     "field",
		Value:    value,
		Msg:      msg,
		Path:     path,
		Location: LocationBody,
	}
}

// AuthError covers missing/invalid bearer tokens and cross-tenant account
// access. It carries its HTTP status so the global error handler can map it.
type AuthError struct {
	Code int
	Msg  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Msg)
}

// FieldErrors renders the auth failure in the standard errors envelope.
func (e *AuthError) FieldErrors() []FieldError {
	return []FieldError{{
		Type:     "auth",
		Msg:      e.Msg,
		Path:     "authorization",
		Location: LocationHeaders,
	}}
}
