// Package validator provides a declarative, type-safe validation engine for
// Go structs built around a fluent rule builder.
//
// A Validator is declared once for a struct type by running a definition
// callback against a Rules value. Each rule chain starts from a typed
// constructor (String, NullableString, Number, Field, Slice) that receives an
// accessor returning the address of the field being validated. The accessor is
// resolved to a field name when the validator is built, so a typo or an
// accessor that does not point into the struct fails construction instead of
// failing at request time.
//
// # Usage
//
//	type CreateProduct struct {
//		Name  string
//		Price float64
//	}
//
//	var createProduct = validator.MustNew("product.create", func(r *validator.Rules[CreateProduct]) {
//		validator.String(r, func(p *CreateProduct) *string { return &p.Name }).
//			NotEmpty().WithMessage("name is required")
//		validator.Number(r, func(p *CreateProduct) *float64 { return &p.Price }).
//			GreaterThan(10)
//	})
//
//	res := createProduct.Validate(CreateProduct{Name: "", Price: 5})
//	if !res.IsValid() {
//		for _, f := range res.Failures {
//			fmt.Println(f.Field, f.Code, f.Message)
//		}
//	}
//
// # Messages
//
// Every built-in check has a stable error code ("NotEmpty", "GreaterThan", ...)
// and a default message naming the field. WithMessage replaces the message of
// the check written immediately before it in the same chain and nothing else.
//
// # Errors
//
// Definition mistakes are reported by New as errors wrapping
// ErrInvalidRuleDefinition or ErrMessageWithoutCheck; MustNew panics with them.
// Invalid input is never an error: it is reported as Failures inside a Result.
// Result.Err converts a failed result into an error matching ErrValidationFailed.
//
// # Aggregation
//
// Validate reports failures in declaration order and drops exact duplicates
// (same field, code and message). ValidateAll and Registry.Validate apply the
// same rule across several validators for one shape type. Registry is an
// explicit mapping from shape type to validators, filled at startup with
// Register.
//
// # Concurrency
//
// A Validator never changes after New returns, so Validate may be called from
// many goroutines at once. Construction itself is single-threaded.
package validator
