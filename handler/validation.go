package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/reviewer/pkg/logger"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

// RejectionPolicy turns the failures of a rejected request into a status
// code and a response body.
type RejectionPolicy func(failures validator.Failures) (status int, body any)

// FieldMessage is one entry of a ProblemDetails body.
type FieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProblemDetailsBody is the body written by the ProblemDetails policy.
type ProblemDetailsBody struct {
	Title  string         `json:"title"`
	Status int            `json:"status"`
	Errors []FieldMessage `json:"errors"`
}

// EnvelopeBody is the body written by the Envelope policy.
type EnvelopeBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// ProblemDetails rejects with 400 and a list of field/message pairs. Failures
// that differ only in their code are listed once.
func ProblemDetails() RejectionPolicy {
	return func(failures validator.Failures) (int, any) {
		errs := make([]FieldMessage, 0, len(failures))
		seen := make(map[FieldMessage]struct{}, len(failures))
		for _, f := range failures {
			fm := FieldMessage{Field: f.Field, Message: f.Message}
			if _, ok := seen[fm]; ok {
				continue
			}
			seen[fm] = struct{}{}
			errs = append(errs, fm)
		}
		return http.StatusBadRequest, ProblemDetailsBody{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Errors: errs,
		}
	}
}

// Envelope rejects with 403 and the failure messages in order.
func Envelope() RejectionPolicy {
	return func(failures validator.Failures) (int, any) {
		return http.StatusForbidden, EnvelopeBody{
			Success: false,
			Message: "Validation errors occurred",
			Errors:  failures.Messages(),
		}
	}
}

// ValidationOption configures the validation decorators.
type ValidationOption func(*validationConfig)

type validationConfig struct {
	policy RejectionPolicy
	log    *slog.Logger
}

// WithRejection sets how rejected requests are rendered. Defaults to
// ProblemDetails.
func WithRejection(policy RejectionPolicy) ValidationOption {
	return func(c *validationConfig) {
		if policy != nil {
			c.policy = policy
		}
	}
}

// WithValidationLogger logs every rejected request at debug level.
func WithValidationLogger(log *slog.Logger) ValidationOption {
	return func(c *validationConfig) {
		if log != nil {
			c.log = log
		}
	}
}

func newValidationConfig(opts []ValidationOption) *validationConfig {
	cfg := &validationConfig{
		policy: ProblemDetails(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate runs every validator registered in reg for the bound request and
// rejects the request before the handler runs when any rule fails. Request
// types without registered validators pass through.
//
//	r.Post("/products", handler.Wrap(create,
//		handler.WithBinder[handler.Context, CreateRequest](binder.JSON()),
//		handler.WithDecorators(handler.Validate[handler.Context, CreateRequest](reg,
//			handler.WithRejection(handler.Envelope()),
//		)),
//	))
func Validate[C Context, R any](reg *validator.Registry, opts ...ValidationOption) Decorator[C, R] {
	if reg == nil {
		panic(ErrNoValidators)
	}
	cfg := newValidationConfig(opts)

	return decorate[C, R](cfg, func(req R) (validator.Result, []string) {
		return reg.Validate(req), reg.Names(req)
	})
}

// ValidateWith validates the bound request with an explicit list of
// validators instead of a registry.
func ValidateWith[C Context, R any](policy RejectionPolicy, validators ...*validator.Validator[R]) Decorator[C, R] {
	if len(validators) == 0 {
		panic(ErrNoValidators)
	}
	cfg := newValidationConfig([]ValidationOption{WithRejection(policy)})

	names := make([]string, 0, len(validators))
	for _, v := range validators {
		if v == nil {
			panic(fmt.Errorf("%w: nil validator for %s", validator.ErrInvalidValidator, reflect.TypeFor[R]()))
		}
		names = append(names, v.Name())
	}

	return decorate[C, R](cfg, func(req R) (validator.Result, []string) {
		return validator.ValidateAll(req, validators...), names
	})
}

func decorate[C Context, R any](cfg *validationConfig, run func(R) (validator.Result, []string)) Decorator[C, R] {
	shape := reflect.TypeFor[R]().String()

	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			res, names := run(req)
			if res.IsValid() {
				return next(ctx, req)
			}

			status, body := cfg.policy(res.Failures)
			cfg.log.DebugContext(ctx, "request rejected by validation",
				logger.Shape(shape),
				logger.Validators(names...),
				logger.Failures(res.Failures),
				logger.Status(status),
				logger.Component("validation"),
			)
			return RawJSON(body, WithJSONStatus(status))
		}
	}
}
