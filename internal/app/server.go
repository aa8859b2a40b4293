package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avc-dev/base62-shortener/internal/config"
	"go.uber.org/zap"
)

// newServer создает HTTP сервер с таймаутами из конфигурации
func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddress.String(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// start запускает HTTP сервер и останавливает его при отмене ctx
func (a *App) start(ctx context.Context) error {
	srv := newServer(a.config, a.router)

	a.logger.Info("Starting server",
		zap.String("address", a.config.ServerAddress.String()),
		zap.String("base_url", a.config.BaseURL.String()),
	)

	if err := runWithGracefulShutdown(ctx, srv, a.config.ShutdownTimeout); err != nil {
		a.logger.Error("Server failed", zap.Error(err))
		return err
	}

	a.logger.Info("Server stopped")

	return nil
}

// runWithGracefulShutdown обслуживает запросы до отмены ctx,
// после чего дает активным запросам завершиться в пределах shutdownTimeout
func runWithGracefulShutdown(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
