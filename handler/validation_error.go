package handler

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/reviewer/pkg/validator"
)

// ValidationError represents field validation errors keyed by field name.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error returns a summary with the first message of every field, in field
// order.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom groups failure messages by field. Failures with the same
// field and message are kept once.
func ValidationErrorFrom(failures validator.Failures) ValidationError {
	e := NewValidationError()
	for _, f := range failures {
		if !slices.Contains(e[f.Field], f.Message) {
			e.Add(f.Field, f.Message)
		}
	}
	return e
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the field names in sorted order.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}
