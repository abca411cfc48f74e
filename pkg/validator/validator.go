package validator

import (
	"fmt"
	"reflect"
)

// Option configures validator construction.
type Option func(*options)

type options struct {
	tagName string
}

// WithTagName names failing fields after the given struct tag (for example
// "json") instead of the Go field name. Fields without the tag keep their Go name.
func WithTagName(tag string) Option {
	return func(o *options) { o.tagName = tag }
}

// Validator is a named, immutable set of rules for the struct type T.
// It is safe for concurrent use once New returns.
type Validator[T any] struct {
	name  string
	rules []rule[T]
	infos []RuleInfo
}

// New builds a validator by running define against a fresh rule set.
// Any definition error (unresolvable accessor, misplaced WithMessage) is
// returned and no validator is produced.
//
// Example:
//
//	v, err := validator.New("product.create", func(r *validator.Rules[CreateProduct]) {
//		validator.String(r, func(p *CreateProduct) *string { return &p.Name }).
//			NotEmpty().WithMessage("name is required")
//		validator.Number(r, func(p *CreateProduct) *float64 { return &p.Price }).
//			GreaterThan(10)
//	})
func New[T any](name string, define func(r *Rules[T]), opts ...Option) (*Validator[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if t := reflect.TypeFor[T](); t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidRuleDefinition, t)
	}

	r := newRules[T](o.tagName)
	if define != nil {
		define(r)
	}
	r.seal()

	if err := r.err(); err != nil {
		return nil, fmt.Errorf("validator %q: %w", name, err)
	}

	return &Validator[T]{
		name:  name,
		rules: r.rules,
		infos: r.Describe(),
	}, nil
}

// MustNew is like New but panics on definition errors. Use it for validators
// declared at package level or during startup.
func MustNew[T any](name string, define func(r *Rules[T]), opts ...Option) *Validator[T] {
	v, err := New(name, define, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the name the validator was created with.
func (v *Validator[T]) Name() string {
	return v.name
}

// Rules returns a copy of the rule descriptions in evaluation order.
func (v *Validator[T]) Rules() []RuleInfo {
	out := make([]RuleInfo, len(v.infos))
	copy(out, v.infos)
	return out
}

// Validate runs every rule in declaration order against instance.
// Exact duplicate failures are reported once.
func (v *Validator[T]) Validate(instance T) Result {
	var res Result
	seen := make(map[Failure]struct{})
	for _, rl := range v.rules {
		if failure, failed := rl.eval(&instance); failed {
			res.Failures = appendUnique(res.Failures, seen, failure)
		}
	}
	return res
}

// ValidateAll runs each validator against instance and unions their failures.
func ValidateAll[T any](instance T, validators ...*Validator[T]) Result {
	results := make([]Result, 0, len(validators))
	for _, v := range validators {
		if v == nil {
			panic(fmt.Errorf("%w: nil validator for %s", ErrInvalidValidator, reflect.TypeFor[T]()))
		}
		results = append(results, v.Validate(instance))
	}
	return Combine(results...)
}
