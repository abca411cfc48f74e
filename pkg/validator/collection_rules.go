package validator

import "fmt"

// SliceRuleBuilder declares rules for one slice field.
type SliceRuleBuilder[T, E any] struct {
	c *chain[T, []E]
}

// Slice starts a rule chain for a slice field.
func Slice[T, E any](r *Rules[T], accessor func(*T) *[]E) *SliceRuleBuilder[T, E] {
	return &SliceRuleBuilder[T, E]{c: newChain(r, accessor, func(p *[]E) []E { return *p })}
}

// NotEmpty fails for a nil or empty slice.
func (b *SliceRuleBuilder[T, E]) NotEmpty() *SliceRuleBuilder[T, E] {
	b.c.check("NotEmpty", fmt.Sprintf("%s must not be empty.", b.c.displayName()), func(v []E) bool {
		return len(v) == 0
	})
	return b
}

// MinItems fails when the slice has fewer than min items.
func (b *SliceRuleBuilder[T, E]) MinItems(min int) *SliceRuleBuilder[T, E] {
	msg := fmt.Sprintf("%s must have at least %d items.", b.c.displayName(), min)
	b.c.check("MinItems", msg, func(v []E) bool { return len(v) < min })
	return b
}

// MaxItems fails when the slice has more than max items.
func (b *SliceRuleBuilder[T, E]) MaxItems(max int) *SliceRuleBuilder[T, E] {
	msg := fmt.Sprintf("%s must have at most %d items.", b.c.displayName(), max)
	b.c.check("MaxItems", msg, func(v []E) bool { return len(v) > max })
	return b
}

// Must registers a custom check; pred reports whether the slice is valid.
// The slice must not be modified by pred.
func (b *SliceRuleBuilder[T, E]) Must(pred func([]E) bool, code, message string) *SliceRuleBuilder[T, E] {
	b.c.check(code, message, func(v []E) bool { return !pred(v) })
	return b
}

// WithMessage overrides the message of the check declared just before it.
func (b *SliceRuleBuilder[T, E]) WithMessage(message string) *SliceRuleBuilder[T, E] {
	b.c.withMessage(message)
	return b
}
