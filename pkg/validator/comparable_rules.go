package validator

import (
	"fmt"
	"slices"
)

// FieldRuleBuilder declares rules for a field of any comparable type.
type FieldRuleBuilder[T any, F comparable] struct {
	c *chain[T, F]
}

// Field starts a rule chain for a comparable field such as a bool, an enum
// string type, a uuid.UUID or a nested value struct.
func Field[T any, F comparable](r *Rules[T], accessor func(*T) *F) *FieldRuleBuilder[T, F] {
	return &FieldRuleBuilder[T, F]{c: newChain(r, accessor, func(p *F) F { return *p })}
}

// NotZero fails when the field holds its zero value.
func (b *FieldRuleBuilder[T, F]) NotZero() *FieldRuleBuilder[T, F] {
	var zero F
	b.c.check("NotZero", fmt.Sprintf("%s is required.", b.c.displayName()), func(v F) bool {
		return v == zero
	})
	return b
}

// Equal fails when the field differs from want.
func (b *FieldRuleBuilder[T, F]) Equal(want F) *FieldRuleBuilder[T, F] {
	msg := fmt.Sprintf("%s must be equal to '%v'.", b.c.displayName(), want)
	b.c.check("Equal", msg, func(v F) bool { return v != want })
	return b
}

// NotEqual fails when the field equals unwanted.
func (b *FieldRuleBuilder[T, F]) NotEqual(unwanted F) *FieldRuleBuilder[T, F] {
	msg := fmt.Sprintf("%s must not be equal to '%v'.", b.c.displayName(), unwanted)
	b.c.check("NotEqual", msg, func(v F) bool { return v == unwanted })
	return b
}

// In fails when the field is not one of allowed.
func (b *FieldRuleBuilder[T, F]) In(allowed ...F) *FieldRuleBuilder[T, F] {
	allowed = slices.Clone(allowed)
	msg := fmt.Sprintf("%s has a range of values which does not include the given value.", b.c.displayName())
	b.c.check("In", msg, func(v F) bool { return !slices.Contains(allowed, v) })
	return b
}

// Must registers a custom check; pred reports whether the value is valid.
func (b *FieldRuleBuilder[T, F]) Must(pred func(F) bool, code, message string) *FieldRuleBuilder[T, F] {
	b.c.check(code, message, func(v F) bool { return !pred(v) })
	return b
}

// WithMessage overrides the message of the check declared just before it.
func (b *FieldRuleBuilder[T, F]) WithMessage(message string) *FieldRuleBuilder[T, F] {
	b.c.withMessage(message)
	return b
}
