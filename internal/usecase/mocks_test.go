package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/config"
	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/repository"
	"github.com/nstepanov-dev/shortener/internal/service"
	"github.com/nstepanov-dev/shortener/internal/store"
)

// mockRepository позволяет подменять отдельные операции хранилища.
// Незаданные операции ведут себя как пустое исправное хранилище
type mockRepository struct {
	createURLFunc       func(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error)
	createURLsBatchFunc func(ctx context.Context, urls map[model.Code]model.URL) error
	getURLByCodeFunc    func(ctx context.Context, code model.Code) (model.URLMapping, error)
	getCodeByURLFunc    func(ctx context.Context, url model.URL) (model.Code, bool, error)
	resolveURLFunc      func(ctx context.Context, code model.Code) (model.URL, error)
	addClickFunc        func(ctx context.Context, code model.Code) error
	existsFunc          func(ctx context.Context, code model.Code) (bool, error)
	pingFunc            func(ctx context.Context) error
}

func (m *mockRepository) CreateURL(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error) {
	if m.createURLFunc != nil {
		return m.createURLFunc(ctx, code, url)
	}
	return model.URLMapping{ShortCode: code, OriginalURL: url}, nil
}

func (m *mockRepository) CreateURLsBatch(ctx context.Context, urls map[model.Code]model.URL) error {
	if m.createURLsBatchFunc != nil {
		return m.createURLsBatchFunc(ctx, urls)
	}
	return nil
}

func (m *mockRepository) GetURLByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	if m.getURLByCodeFunc != nil {
		return m.getURLByCodeFunc(ctx, code)
	}
	return model.URLMapping{}, store.ErrNotFound
}

func (m *mockRepository) GetCodeByURL(ctx context.Context, url model.URL) (model.Code, bool, error) {
	if m.getCodeByURLFunc != nil {
		return m.getCodeByURLFunc(ctx, url)
	}
	return "", false, nil
}

func (m *mockRepository) ResolveURL(ctx context.Context, code model.Code) (model.URL, error) {
	if m.resolveURLFunc != nil {
		return m.resolveURLFunc(ctx, code)
	}
	return "", store.ErrNotFound
}

func (m *mockRepository) AddClick(ctx context.Context, code model.Code) error {
	if m.addClickFunc != nil {
		return m.addClickFunc(ctx, code)
	}
	return nil
}

func (m *mockRepository) Exists(ctx context.Context, code model.Code) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, code)
	}
	return false, nil
}

func (m *mockRepository) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// mockCache позволяет подменять операции кэша
type mockCache struct {
	getFunc func(ctx context.Context, code model.Code) (model.URL, bool, error)
	setFunc func(ctx context.Context, code model.Code, url model.URL) error
}

func (m *mockCache) Get(ctx context.Context, code model.Code) (model.URL, bool, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, code)
	}
	return "", false, nil
}

func (m *mockCache) Set(ctx context.Context, code model.Code, url model.URL) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, code, url)
	}
	return nil
}

// newMemoryUsecase собирает usecase поверх настоящего in-memory хранилища
func newMemoryUsecase(t *testing.T) *URLUsecase {
	t.Helper()

	cfg := config.NewDefaultConfig()
	repo := repository.New(store.NewStore())
	generator := service.NewCodeGenerator(cfg.CodeLength, cfg.MaxGenerateAttempts)

	return NewURLUsecase(repo, generator, service.NewBatchResolver(), nil, cfg, zap.NewNop())
}

// newMockUsecase собирает usecase поверх mockRepository
func newMockUsecase(repo URLRepository, cache URLCache) *URLUsecase {
	cfg := config.NewDefaultConfig()
	generator := service.NewCodeGenerator(cfg.CodeLength, cfg.MaxGenerateAttempts)

	return NewURLUsecase(repo, generator, service.NewBatchResolver(), cache, cfg, zap.NewNop())
}
