package validator_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/reviewer/pkg/validator"
)

type basket struct {
	Items []string
	Tags  []string
}

func basketItems(b *basket) *[]string { return &b.Items }

func TestSlice(t *testing.T) {
	t.Parallel()

	v := validator.MustNew("basket", func(r *validator.Rules[basket]) {
		validator.Slice(r, basketItems).NotEmpty().MaxItems(3)
		validator.Slice(r, func(b *basket) *[]string { return &b.Tags }).MinItems(2).WithMessage("at least two tags")
	})

	tests := []struct {
		name     string
		in       basket
		failures validator.Failures
	}{
		{
			name: "nil slices",
			in:   basket{},
			failures: validator.Failures{
				{Field: "Items", Code: "NotEmpty", Message: "'Items' must not be empty."},
				{Field: "Tags", Code: "MinItems", Message: "at least two tags"},
			},
		},
		{
			name: "too many items",
			in:   basket{Items: []string{"a", "b", "c", "d"}, Tags: []string{"x", "y"}},
			failures: validator.Failures{
				{Field: "Items", Code: "MaxItems", Message: "'Items' must have at most 3 items."},
			},
		},
		{
			name: "valid",
			in:   basket{Items: []string{"a"}, Tags: []string{"x", "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.in)
			assert.Equal(t, tt.failures, res.Failures)
		})
	}
}

func TestSlice_Must(t *testing.T) {
	t.Parallel()

	v := validator.MustNew("basket", func(r *validator.Rules[basket]) {
		validator.Slice(r, basketItems).Must(func(items []string) bool {
			return !slices.Contains(items, "")
		}, "NoBlankItems", "items must not contain blanks")
	})

	assert.True(t, v.Validate(basket{Items: []string{"a"}}).IsValid())
	assert.Equal(t, []string{"NoBlankItems"}, v.Validate(basket{Items: []string{"a", ""}}).Failures.Codes("Items"))
}
