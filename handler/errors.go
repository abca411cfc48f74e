package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNoValidators indicates a validation decorator was built without validators
	ErrNoValidators = errors.New("no validators configured")
)
