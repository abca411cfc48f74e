package validator

import "fmt"

// chain is the state shared by every typed rule builder: one field of T, a
// getter producing the value checks run against, and the index of the last
// rule this chain registered.
type chain[T, V any] struct {
	rules  *Rules[T]
	field  string
	value  func(*T) V
	last   int
	broken bool
}

func newChain[T, F, V any](r *Rules[T], accessor func(*T) *F, value func(*F) V) *chain[T, V] {
	r.mustBeOpen()

	c := &chain[T, V]{rules: r, last: -1}
	name, err := resolveField(accessor, r.tagName)
	if err != nil {
		r.fail(err)
		c.broken = true
		return c
	}

	c.field = name
	c.value = func(instance *T) V { return value(accessor(instance)) }
	return c
}

// check registers a rule that fails when fails returns true for the field value.
func (c *chain[T, V]) check(code, message string, fails func(V) bool) {
	c.rules.mustBeOpen()
	if c.broken {
		return
	}

	value := c.value
	c.last = c.rules.addRule(c.field, code, message, func(instance *T) bool {
		return fails(value(instance))
	})
}

// withMessage overrides the message of the rule this chain added last, as long
// as no other rule has been registered since.
func (c *chain[T, V]) withMessage(message string) {
	c.rules.mustBeOpen()
	if c.broken {
		return
	}

	if c.last < 0 || c.last != c.rules.lastIndex() {
		c.rules.fail(fmt.Errorf("%w: field %q", ErrMessageWithoutCheck, c.field))
		c.broken = true
		return
	}
	if err := c.rules.overrideLastMessage(message); err != nil {
		c.rules.fail(err)
		c.broken = true
	}
}

// displayName is the field name as it appears in default messages.
func (c *chain[T, V]) displayName() string {
	return "'" + c.field + "'"
}
