package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// URLUsecase определяет операции бизнес-логики, доступные HTTP слою
type URLUsecase interface {
	CreateShortURL(ctx context.Context, urlString string) (model.ShortenResponse, error)
	CreateShortURLsBatch(ctx context.Context, items []model.BatchShortenRequest) ([]model.BatchShortenResponse, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetURLStats(ctx context.Context, code string) (model.StatsResponse, error)
	PingStorage(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы сервиса
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает новый Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}
