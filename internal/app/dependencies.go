package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/cache"
	"github.com/nstepanov-dev/shortener/internal/config"
	"github.com/nstepanov-dev/shortener/internal/config/db"
	"github.com/nstepanov-dev/shortener/internal/handler"
	"github.com/nstepanov-dev/shortener/internal/migrations"
	"github.com/nstepanov-dev/shortener/internal/repository"
	"github.com/nstepanov-dev/shortener/internal/service"
	"github.com/nstepanov-dev/shortener/internal/store"
	"github.com/nstepanov-dev/shortener/internal/usecase"
)

// dependencies объединяет собранные компоненты приложения
type dependencies struct {
	handler  *handler.Handler
	repo     *repository.Repository
	database db.Database
	urlCache *cache.URLCache
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)

	// Кэш опционален: при пустом адресе usecase работает напрямую с хранилищем
	var urlCache *cache.URLCache
	var cacheForUsecase usecase.URLCache
	if cfg.RedisAddress != "" {
		urlCache, err = cache.New(ctx, cfg.RedisAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cacheForUsecase = urlCache
		logger.Info("Using Redis cache", zap.String("address", cfg.RedisAddress))
	}

	generator := service.NewCodeGenerator(cfg.CodeLength, cfg.MaxGenerateAttempts)
	resolver := service.NewBatchResolver()
	urlUsecase := usecase.NewURLUsecase(repo, generator, resolver, cacheForUsecase, cfg, logger)
	h := handler.New(urlUsecase, logger)

	return &dependencies{
		handler:  h,
		repo:     repo,
		database: database,
		urlCache: urlCache,
	}, nil
}

// initStorage создает хранилище на основе конфигурации.
// Приоритет: PostgreSQL, затем файловое хранилище, затем память
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN != "" {
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		migrator := migrations.NewMigrator(database.DB(), logger)
		if err := migrator.RunUp(); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		if version, dirty, err := migrator.Version(); err == nil {
			logger.Info("Database schema ready",
				zap.Uint("version", version),
				zap.Bool("dirty", dirty),
			)
		}

		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database), database, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}
