package validator

import "fmt"

// NumberRuleBuilder declares rules for one numeric field.
type NumberRuleBuilder[T any, N Numeric] struct {
	c *chain[T, N]
}

// Number starts a rule chain for a numeric field.
//
//	validator.Number(r, func(p *Product) *float64 { return &p.Price }).GreaterThan(10)
func Number[T any, N Numeric](r *Rules[T], accessor func(*T) *N) *NumberRuleBuilder[T, N] {
	return &NumberRuleBuilder[T, N]{c: newChain(r, accessor, func(p *N) N { return *p })}
}

// GreaterThan fails when the value is less than or equal to bound.
func (b *NumberRuleBuilder[T, N]) GreaterThan(bound N) *NumberRuleBuilder[T, N] {
	msg := fmt.Sprintf("%s must be greater than '%v'.", b.c.displayName(), bound)
	b.c.check("GreaterThan", msg, func(v N) bool { return v <= bound })
	return b
}

// GreaterThanOrEqual fails when the value is less than bound.
func (b *NumberRuleBuilder[T, N]) GreaterThanOrEqual(bound N) *NumberRuleBuilder[T, N] {
	msg := fmt.Sprintf("%s must be greater than or equal to '%v'.", b.c.displayName(), bound)
	b.c.check("GreaterThanOrEqual", msg, func(v N) bool { return v < bound })
	return b
}

// LessThan fails when the value is greater than or equal to bound.
func (b *NumberRuleBuilder[T, N]) LessThan(bound N) *NumberRuleBuilder[T, N] {
	msg := fmt.Sprintf("%s must be less than '%v'.", b.c.displayName(), bound)
	b.c.check("LessThan", msg, func(v N) bool { return v >= bound })
	return b
}

// LessThanOrEqual fails when the value is greater than bound.
func (b *NumberRuleBuilder[T, N]) LessThanOrEqual(bound N) *NumberRuleBuilder[T, N] {
	msg := fmt.Sprintf("%s must be less than or equal to '%v'.", b.c.displayName(), bound)
	b.c.check("LessThanOrEqual", msg, func(v N) bool { return v > bound })
	return b
}

// InclusiveBetween fails when the value is outside [min, max].
func (b *NumberRuleBuilder[T, N]) InclusiveBetween(min, max N) *NumberRuleBuilder[T, N] {
	msg := fmt.Sprintf("%s must be between %v and %v.", b.c.displayName(), min, max)
	b.c.check("InclusiveBetween", msg, func(v N) bool { return v < min || v > max })
	return b
}

// Must registers a custom check; pred reports whether the value is valid.
func (b *NumberRuleBuilder[T, N]) Must(pred func(N) bool, code, message string) *NumberRuleBuilder[T, N] {
	b.c.check(code, message, func(v N) bool { return !pred(v) })
	return b
}

// WithMessage overrides the message of the check declared just before it.
func (b *NumberRuleBuilder[T, N]) WithMessage(message string) *NumberRuleBuilder[T, N] {
	b.c.withMessage(message)
	return b
}
