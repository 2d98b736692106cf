package handler

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// MockUsecase позволяет подменять операции бизнес-логики в тестах хендлеров
type MockUsecase struct {
	CreateShortURLFunc       func(ctx context.Context, urlString string) (model.ShortenResponse, error)
	CreateShortURLsBatchFunc func(ctx context.Context, items []model.BatchShortenRequest) ([]model.BatchShortenResponse, error)
	GetOriginalURLFunc       func(ctx context.Context, code string) (string, error)
	GetURLStatsFunc          func(ctx context.Context, code string) (model.StatsResponse, error)
	PingStorageFunc          func(ctx context.Context) error
}

func (m *MockUsecase) CreateShortURL(ctx context.Context, urlString string) (model.ShortenResponse, error) {
	if m.CreateShortURLFunc != nil {
		return m.CreateShortURLFunc(ctx, urlString)
	}
	return model.ShortenResponse{}, nil
}

func (m *MockUsecase) CreateShortURLsBatch(ctx context.Context, items []model.BatchShortenRequest) ([]model.BatchShortenResponse, error) {
	if m.CreateShortURLsBatchFunc != nil {
		return m.CreateShortURLsBatchFunc(ctx, items)
	}
	return nil, nil
}

func (m *MockUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	if m.GetOriginalURLFunc != nil {
		return m.GetOriginalURLFunc(ctx, code)
	}
	return "", nil
}

func (m *MockUsecase) GetURLStats(ctx context.Context, code string) (model.StatsResponse, error) {
	if m.GetURLStatsFunc != nil {
		return m.GetURLStatsFunc(ctx, code)
	}
	return model.StatsResponse{}, nil
}

func (m *MockUsecase) PingStorage(ctx context.Context) error {
	if m.PingStorageFunc != nil {
		return m.PingStorageFunc(ctx)
	}
	return nil
}

// newTestHandler создает Handler с mock usecase для тестов
func newTestHandler(t *testing.T, usecase *MockUsecase) *Handler {
	t.Helper()
	return New(usecase, zap.NewNop())
}
