package validator

import (
	"errors"
	"fmt"
	"reflect"
)

// RuleInfo describes a registered rule.
type RuleInfo struct {
	Field   string `json:"field" yaml:"field"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// rule is a compiled check bound to one field.
type rule[T any] struct {
	info RuleInfo
	eval func(*T) (Failure, bool)
}

// Rules holds the ordered rules of one validator while it is being defined.
// It is handed to the definition callback of New and must not be retained.
type Rules[T any] struct {
	rules   []rule[T]
	errs    []error
	sealed  bool
	tagName string
	shape   reflect.Type
}

func newRules[T any](tagName string) *Rules[T] {
	return &Rules[T]{
		tagName: tagName,
		shape:   reflect.TypeFor[T](),
	}
}

// addRule appends a rule whose fails predicate reports a failure for the
// given instance. It returns the index of the new rule.
func (r *Rules[T]) addRule(field, code, message string, fails func(*T) bool) int {
	r.mustBeOpen()

	info := RuleInfo{Field: field, Code: code, Message: message}
	r.rules = append(r.rules, rule[T]{
		info: info,
		eval: func(instance *T) (Failure, bool) {
			if !fails(instance) {
				return Failure{}, false
			}
			return Failure{Field: info.Field, Code: info.Code, Message: info.Message}, true
		},
	})
	return len(r.rules) - 1
}

// overrideLastMessage replaces the message produced by the most recently
// added rule. Earlier rules are never touched.
func (r *Rules[T]) overrideLastMessage(message string) error {
	r.mustBeOpen()

	if len(r.rules) == 0 {
		return fmt.Errorf("%w: no rule has been added yet", ErrMessageWithoutCheck)
	}

	last := &r.rules[len(r.rules)-1]
	prev := last.eval
	last.info.Message = message
	last.eval = func(instance *T) (Failure, bool) {
		failure, failed := prev(instance)
		if !failed {
			return Failure{}, false
		}
		failure.Message = message
		return failure, true
	}
	return nil
}

// lastIndex returns the index of the most recent rule, or -1 when empty.
func (r *Rules[T]) lastIndex() int {
	return len(r.rules) - 1
}

func (r *Rules[T]) fail(err error) {
	r.mustBeOpen()
	r.errs = append(r.errs, err)
}

func (r *Rules[T]) err() error {
	return errors.Join(r.errs...)
}

func (r *Rules[T]) seal() {
	r.sealed = true
}

func (r *Rules[T]) mustBeOpen() {
	if r.sealed {
		panic(fmt.Errorf("%w: rules cannot change after construction", ErrSealed))
	}
}

// Len returns the number of rules declared so far.
func (r *Rules[T]) Len() int {
	return len(r.rules)
}

// Describe returns the declared rules in evaluation order.
func (r *Rules[T]) Describe() []RuleInfo {
	infos := make([]RuleInfo, 0, len(r.rules))
	for _, rl := range r.rules {
		infos = append(infos, rl.info)
	}
	return infos
}
