package validator

import "errors"

// Definition errors. They are returned by New (or raised by MustNew) and mean
// the validator itself is broken, never that the input is invalid.
var (
	// ErrInvalidRuleDefinition is returned when an accessor does not resolve to
	// a field of the validated struct, or the validated type is not a struct.
	ErrInvalidRuleDefinition = errors.New("invalid rule definition")

	// ErrMessageWithoutCheck is returned when WithMessage is not immediately
	// preceded by a check in the same chain.
	ErrMessageWithoutCheck = errors.New("message override without a preceding check")

	// ErrSealed is raised when a builder retained past construction is used to
	// add rules to a published validator.
	ErrSealed = errors.New("validator is sealed")

	// ErrInvalidValidator is raised when a nil validator is registered or combined.
	ErrInvalidValidator = errors.New("invalid validator")
)

// ErrValidationFailed is the sentinel matched by Failures through errors.Is.
var ErrValidationFailed = errors.New("validation failed")
