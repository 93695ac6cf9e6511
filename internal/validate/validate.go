// Package validate collects request validation failures instead of stopping
// at the first one, so a response carries every applicable field error.
package validate

import (
	"fmt"
	"regexp"

	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Collector accumulates field errors for a single request.
type Collector struct {
	errs []types.FieldError
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{}
}

// Add records a body-scoped field error.
func (v *Collector) Add(path, msg string, value interface{}) {
	v.errs = append(v.errs, types.NewFieldError(path, msg, value))
}

// AddAt records a field error at an explicit location (params, query, ...).
func (v *Collector) AddAt(location, path, msg string, value interface{}) {
	fe := types.NewFieldError(path, msg, value)
	fe.Location = location
	v.errs = append(v.errs, fe)
}

// RequireString checks that a required string field is present and non-empty.
func (v *Collector) RequireString(path, value string) {
	if value == "" {
		v.Add(path, fmt.Sprintf("The %s field is required.", path), nil)
	}
}

// Email checks a non-empty value for a plausible email shape.
func (v *Collector) Email(path, value string) {
	if value != "" && !emailPattern.MatchString(value) {
		v.Add(path, fmt.Sprintf("The %s field must be a valid email.", path), value)
	}
}

// MinLen checks a non-empty value for a minimum length.
func (v *Collector) MinLen(path, value string, n int) {
	if value != "" && len(value) < n {
		v.Add(path, fmt.Sprintf("The %s field must be at least %d characters.", path, n), value)
	}
}

// Empty reports whether no errors have been collected.
func (v *Collector) Empty() bool {
	return len(v.errs) == 0
}

// Err returns the aggregated ValidationError, or nil when every check passed.
func (v *Collector) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &types.ValidationError{Errors: v.errs}
}
