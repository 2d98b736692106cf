package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/config"
	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/service"
)

// URLRepository определяет интерфейс для работы с хранилищем URL
type URLRepository interface {
	CreateURL(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error)
	CreateURLsBatch(ctx context.Context, urls map[model.Code]model.URL) error
	GetURLByCode(ctx context.Context, code model.Code) (model.URLMapping, error)
	GetCodeByURL(ctx context.Context, url model.URL) (model.Code, bool, error)
	ResolveURL(ctx context.Context, code model.Code) (model.URL, error)
	AddClick(ctx context.Context, code model.Code) error
	Exists(ctx context.Context, code model.Code) (bool, error)
	Ping(ctx context.Context) error
}

// CodeGenerator определяет интерфейс генератора коротких кодов
type CodeGenerator interface {
	GenerateUniqueCode(ctx context.Context, exists service.CodeChecker) (model.Code, error)
}

// URLCache определяет интерфейс кэша маппингов код-URL.
// Кэш опционален: при nil все запросы идут в хранилище
type URLCache interface {
	Get(ctx context.Context, code model.Code) (model.URL, bool, error)
	Set(ctx context.Context, code model.Code, url model.URL) error
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	repo      URLRepository
	generator CodeGenerator
	resolver  *service.BatchResolver
	cache     URLCache
	cfg       *config.Config
	logger    *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, generator CodeGenerator, resolver *service.BatchResolver, cache URLCache, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:      repo,
		generator: generator,
		resolver:  resolver,
		cache:     cache,
		cfg:       cfg,
		logger:    logger,
	}
}
