package app

import (
	"github.com/avc-dev/base62-shortener/internal/config"
	"github.com/avc-dev/base62-shortener/internal/handler"
	"github.com/avc-dev/base62-shortener/internal/metrics"
	"github.com/avc-dev/base62-shortener/internal/repository"
	"github.com/avc-dev/base62-shortener/internal/store"
	"github.com/avc-dev/base62-shortener/internal/usecase"
	"github.com/avc-dev/base62-shortener/internal/validator"
	"go.uber.org/zap"
)

// dependencies собранный граф объектов приложения
type dependencies struct {
	handler *handler.Handler
	metrics *metrics.Metrics
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger, generator store.Generator) dependencies {
	repo := repository.New(store.NewStore(generator))

	var m *metrics.Metrics
	var usecaseMetrics usecase.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(repo)
		usecaseMetrics = m
	}

	logger.Info("Using in-memory storage")

	urlUsecase := usecase.NewURLUsecase(repo, validator.IsValidURL, usecaseMetrics, cfg, logger)

	return dependencies{
		handler: handler.New(urlUsecase, logger),
		metrics: m,
	}
}
