package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/reviewer/handler"
	"github.com/dmitrymomot/reviewer/internal/product"
	"github.com/dmitrymomot/reviewer/pkg/config"
	"github.com/dmitrymomot/reviewer/pkg/environment"
	"github.com/dmitrymomot/reviewer/pkg/httpserver"
	"github.com/dmitrymomot/reviewer/pkg/logger"
	"github.com/dmitrymomot/reviewer/pkg/requestid"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"reviewer"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	envFile := flag.String("env-file", "", "path to a .env file to load before reading configuration")
	flag.Parse()

	if err := config.LoadEnv(nonEmpty(*envFile)...); err != nil {
		slog.Error("failed to load env file", logger.Error(err))
		os.Exit(1)
	}

	var (
		appCfg    appConfig
		serverCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg := validator.NewRegistry()
	product.Register(reg)

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router(appCfg, reg, log)); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func router(cfg appConfig, reg *validator.Registry, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
	)

	errorHandler := handler.NewErrorHandler(log)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, func(context.Context) error {
		if len(reg.Describe()) == 0 {
			return errors.New("no validators registered")
		}
		return nil
	}))

	r.Mount("/", product.NewService(reg, log, errorHandler).Handle())
	return r
}

func nonEmpty(paths ...string) []string {
	out := paths[:0]
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
