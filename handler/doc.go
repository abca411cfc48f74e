// Package handler provides typed HTTP handlers and the validation boundary
// of the service.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binders, and returns a Response:
//
//	func create(ctx handler.Context, req CreateRequest) handler.Response {
//		return handler.EmptyWithStatus(http.StatusOK)
//	}
//
//	r.Post("/products", handler.Wrap(create,
//		handler.WithBinder[handler.Context, CreateRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, CreateRequest](handler.NewErrorHandler(log)),
//	))
//
// # Validation
//
// Validate and ValidateWith are decorators that run validators against the
// bound request before the handler is called. A rejected request is rendered
// by a RejectionPolicy:
//
//	ProblemDetails()  400 {"title":"Validation Failed","status":400,"errors":[{"field":..,"message":..}]}
//	Envelope()        403 {"success":false,"message":"Validation errors occurred","errors":[..]}
//
// # Responses
//
//	handler.JSON(data)                            // 200 with {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.JSONError(err)                        // {"error": {...}}
//	handler.RawJSON(v)                            // v as the whole body
//	handler.Empty()                               // 204
//
// # Errors
//
// Binder failures are wrapped with an HTTPError (400, 413 or 415).
// NewErrorHandler logs the error with the request ID and renders a JSON error;
// validator.Failures and ValidationError keep their per-field details.
package handler
