package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/base62-shortener/internal/config"
	"github.com/avc-dev/base62-shortener/internal/service"
	"github.com/avc-dev/base62-shortener/internal/tracing"
	"go.uber.org/zap"
)

// App представляет приложение URL shortener
type App struct {
	config          *config.Config
	logger          *zap.Logger
	router          http.Handler
	shutdownTracing tracing.ShutdownFunc
}

// New создает новый экземпляр приложения
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	shutdownTracing, err := tracing.Init(ctx, cfg.TracingEndpoint, cfg.ServiceName)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if cfg.TracingEndpoint != "" {
		logger.Info("Tracing enabled", zap.String("endpoint", cfg.TracingEndpoint))
	}

	deps := initDependencies(cfg, logger, service.NewCodeGenerator())

	return &App{
		config:          cfg,
		logger:          logger,
		router:          newRouter(deps, logger, cfg),
		shutdownTracing: shutdownTracing,
	}, nil
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if err := a.shutdownTracing(ctx); err != nil {
			a.logger.Error("Failed to shutdown tracing", zap.Error(err))
		}
	}

	_ = a.logger.Sync()
}

// Run запускает приложение и блокируется до получения SIGINT или SIGTERM
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.start(ctx)
}

// newLogger создает production логгер с заданным уровнем
func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomicLevel

	return zapConfig.Build()
}
