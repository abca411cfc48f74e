package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Numeric is the constraint accepted by Number rule chains.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Failure is the output of one failed rule.
// Two failures are equal when all three fields match.
type Failure struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Failures is an ordered collection of failures that satisfies the error interface.
type Failures []Failure

func (f Failures) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(f))
	for _, failure := range f {
		parts = append(parts, fmt.Sprintf("%s: %s", failure.Field, failure.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (f Failures) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether any failure belongs to field.
func (f Failures) Has(field string) bool {
	for _, failure := range f {
		if failure.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field, in order.
func (f Failures) Get(field string) []string {
	var messages []string
	for _, failure := range f {
		if failure.Field == field {
			messages = append(messages, failure.Message)
		}
	}
	return messages
}

// Codes returns the error codes reported for field, in order.
func (f Failures) Codes(field string) []string {
	var codes []string
	for _, failure := range f {
		if failure.Field == field {
			codes = append(codes, failure.Code)
		}
	}
	return codes
}

// Fields returns the distinct failing fields in first-failure order.
func (f Failures) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, failure := range f {
		if !seen[failure.Field] {
			fields = append(fields, failure.Field)
			seen[failure.Field] = true
		}
	}
	return fields
}

// Messages returns every message in order.
func (f Failures) Messages() []string {
	messages := make([]string, 0, len(f))
	for _, failure := range f {
		messages = append(messages, failure.Message)
	}
	return messages
}

// IsEmpty reports whether there are no failures.
func (f Failures) IsEmpty() bool {
	return len(f) == 0
}

// LogValue renders failures as a group of "field: message" entries.
func (f Failures) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(f))
	for i, failure := range f {
		attrs = append(attrs, slog.String(strconv.Itoa(i), failure.Field+": "+failure.Message))
	}
	return slog.GroupValue(attrs...)
}

// Result is the outcome of running one or more validators against an instance.
type Result struct {
	Failures Failures `json:"errors"`
}

// IsValid reports whether no rule failed.
func (r Result) IsValid() bool {
	return len(r.Failures) == 0
}

// Err returns nil for a valid result and the failures otherwise.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r.Failures
}

// Combine unions results in order, dropping exact duplicates while keeping
// the first occurrence of each failure.
func Combine(results ...Result) Result {
	var out Result
	seen := make(map[Failure]struct{})
	for _, res := range results {
		out.Failures = appendUnique(out.Failures, seen, res.Failures...)
	}
	return out
}

func appendUnique(dst Failures, seen map[Failure]struct{}, failures ...Failure) Failures {
	for _, failure := range failures {
		if _, ok := seen[failure]; ok {
			continue
		}
		seen[failure] = struct{}{}
		dst = append(dst, failure)
	}
	return dst
}

// ExtractFailures extracts Failures from an error chain.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}

	return nil
}

// IsValidationError reports whether err wraps Failures.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var failures Failures
	return errors.As(err, &failures)
}
