package app

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/cache"
	"github.com/nstepanov-dev/shortener/internal/config"
	"github.com/nstepanov-dev/shortener/internal/config/db"
	"github.com/nstepanov-dev/shortener/internal/handler"
	"github.com/nstepanov-dev/shortener/internal/repository"
)

// App представляет приложение сервиса сокращения URL
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	repo     *repository.Repository
	database db.Database
	urlCache *cache.URLCache
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  deps.handler,
		repo:     deps.repo,
		database: deps.database,
		urlCache: deps.urlCache,
	}, nil
}

// Run собирает приложение и обслуживает HTTP запросы до сигнала остановки
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.urlCache != nil {
		if err := a.urlCache.Close(); err != nil {
			a.logger.Warn("Failed to close cache", zap.Error(err))
		}
	}

	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.logger.Warn("Failed to close storage", zap.Error(err))
		}
	}

	// Адаптер закрывает и pgxpool, и sql.DB подключение миграций
	if a.database != nil {
		a.database.Close()
	}
}
