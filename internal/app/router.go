package app

import (
	"net/http"

	"github.com/avc-dev/base62-shortener/internal/config"
	"github.com/avc-dev/base62-shortener/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const servicePrefix = "/-"

// newRouter создает и настраивает роутер приложения
func newRouter(deps dependencies, logger *zap.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	h := deps.handler

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	if deps.metrics != nil {
		r.Use(middleware.Metrics(deps.metrics))
	}
	if cfg.TracingEndpoint != "" {
		r.Use(middleware.TraceName)
	}
	r.Use(middleware.Gzip(logger))

	// Routes
	r.Get("/", h.Home)
	r.Post("/", h.CreateURL)
	r.Post("/shorten", h.CreateURLJSON)
	// "shorten" тоже валидный код, GET по нему должен редиректить
	r.Get("/shorten", h.GetURL)
	r.Get("/{id}", h.GetURL)

	// Служебные маршруты под префиксом "-": этот символ не входит в алфавит кодов
	r.Route(servicePrefix, func(r chi.Router) {
		r.Get("/ping", h.Ping)
		if deps.metrics != nil {
			r.Handle("/metrics", deps.metrics.Handler())
		}
	})

	if cfg.TracingEndpoint != "" {
		return otelhttp.NewHandler(r, "http")
	}

	return r
}
