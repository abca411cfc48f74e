package binder

import "errors"

var (
	// ErrBinderNotApplicable means the binder does not handle this request and
	// the next binder should be tried.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrRequestTooLarge      = errors.New("request body too large")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
)
