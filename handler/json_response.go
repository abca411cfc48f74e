package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/reviewer/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to an enveloped response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if body, ok := r.body.(JSONResponse); ok {
			body.Meta = meta
			r.body = body
		}
	}
}

// JSON creates a JSON response wrapped in the JSONResponse envelope.
// Errors are converted to an ErrorDetail with a matching status code.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body = JSONResponse{Error: val}
		r.status = http.StatusInternalServerError
	case error:
		r.body = JSONResponse{Error: errorToDetail(val, &r.status)}
	default:
		r.body = JSONResponse{Data: v}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError creates a JSON error response from an error with options
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   JSONResponse{},
	}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body = JSONResponse{Error: e}
	case error:
		r.body = JSONResponse{Error: errorToDetail(e, &r.status)}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RawJSON writes v as the whole response body, without the JSONResponse
// envelope.
//
//	return handler.RawJSON(problem, handler.WithJSONStatus(http.StatusBadRequest))
func RawJSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail converts err to an ErrorDetail and sets the matching status
func errorToDetail(err error, status *int) *ErrorDetail {
	if *status == http.StatusOK {
		*status = http.StatusInternalServerError
	}

	var failures validator.Failures
	if errors.As(err, &failures) {
		*status = http.StatusUnprocessableEntity
		return validationDetail(err, ValidationErrorFrom(failures))
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		*status = http.StatusUnprocessableEntity
		return validationDetail(err, valErr)
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	return &ErrorDetail{
		Code:    "internal_error",
		Message: err.Error(),
	}
}

func validationDetail(err error, valErr ValidationError) *ErrorDetail {
	detail := &ErrorDetail{
		Code:    "validation_error",
		Message: err.Error(),
	}
	if len(valErr) > 0 {
		detail.Details = map[string][]string(valErr)
	}
	return detail
}
