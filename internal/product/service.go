package product

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/reviewer/handler"
	"github.com/dmitrymomot/reviewer/pkg/binder"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

// Service serves the product endpoints.
type Service struct {
	registry     *validator.Registry
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates the product service. A nil log discards output and a nil
// errorHandler defaults to handler.NewErrorHandler.
func NewService(registry *validator.Registry, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log)
	}
	return &Service{
		registry:     registry,
		log:          log,
		errorHandler: errorHandler,
	}
}

// Handle returns the product routes. Unknown body members are ignored.
//
//	POST /api/products  rejects invalid bodies with 403 and a message list
//	POST /products      rejects invalid bodies with 400 and field/message pairs
//	GET  /validators    lists the registered validators as JSON, or YAML on request
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/products", handler.Wrap(s.create,
		handler.WithBinder[handler.Context, CreateRequest](binder.JSON(binder.WithUnknownFields())),
		handler.WithErrorHandler[handler.Context, CreateRequest](s.errorHandler),
		handler.WithDecorators(handler.Validate[handler.Context, CreateRequest](s.registry,
			handler.WithRejection(handler.Envelope()),
			handler.WithValidationLogger(s.log),
		)),
	))

	r.Post("/products", handler.Wrap(s.createChecked,
		handler.WithBinder[handler.Context, CreateRequest](binder.JSON(binder.WithUnknownFields())),
		handler.WithErrorHandler[handler.Context, CreateRequest](s.errorHandler),
		handler.WithDecorators(handler.Validate[handler.Context, CreateRequest](s.registry,
			handler.WithRejection(handler.ProblemDetails()),
			handler.WithValidationLogger(s.log),
		)),
	))

	r.Get("/validators", handler.Wrap(s.listValidators,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) create(ctx handler.Context, req CreateRequest) handler.Response {
	return handler.EmptyWithStatus(http.StatusOK)
}

// createChecked validates req again with CreateValidator and answers 500 with
// the failures if it does not pass. The registry decorator normally rejects
// such a request first.
func (s *Service) createChecked(ctx handler.Context, req CreateRequest) handler.Response {
	if res := CreateValidator.Validate(req); !res.IsValid() {
		return handler.RawJSON(res.Failures, handler.WithJSONStatus(http.StatusInternalServerError))
	}
	return handler.EmptyWithStatus(http.StatusOK)
}

func (s *Service) listValidators(ctx handler.Context, _ struct{}) handler.Response {
	validators := s.registry.Describe()
	if wantsYAML(ctx.Request()) {
		return handler.YAML(validators)
	}
	return handler.JSON(validators)
}

func wantsYAML(r *http.Request) bool {
	if r.URL.Query().Get("format") == "yaml" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/yaml") || strings.Contains(accept, "application/x-yaml")
}
