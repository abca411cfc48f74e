package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reviewer/pkg/logger"
	"github.com/dmitrymomot/reviewer/pkg/requestid"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Key        string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status code. Validation failures win over an
// HTTPError found in the same chain.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) || validator.IsValidationError(err) {
		info.StatusCode = http.StatusBadRequest
		info.Key = "validation_error"
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler returns an ErrorHandler that logs the error and answers
// with a JSON error body. Validation errors keep their per-field details; the
// text of unclassified errors is not exposed to the client.
// Configure it once in main.go and pass it to every Wrap call.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		detail := &ErrorDetail{
			Code:    info.Key,
			Message: http.StatusText(info.StatusCode),
		}
		if info.Key == "validation_error" {
			detail = validationDetail(err, validationErrorOf(err))
		}

		resp := JSONError(detail, WithJSONStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx)),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

func validationErrorOf(err error) ValidationError {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}
	return ValidationErrorFrom(validator.ExtractFailures(err))
}
