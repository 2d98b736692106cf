package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// start запускает HTTP сервер и останавливает его при отмене контекста
func (a *App) start(ctx context.Context) error {
	router := newRouter(a.handler, a.logger)

	server := &http.Server{
		Addr:    a.config.Address.String(),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", zap.String("address", a.config.Address.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.logger.Info("Server stopped")
	return nil
}
