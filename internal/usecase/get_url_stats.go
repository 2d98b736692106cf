package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/store"
)

// GetURLStats возвращает статистику переходов по короткому коду.
// Чтение статистики не засчитывается как переход
func (u *URLUsecase) GetURLStats(ctx context.Context, code string) (model.StatsResponse, error) {
	mapping, err := u.repo.GetURLByCode(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.StatsResponse{}, fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}
		u.logger.Error("failed to get URL stats",
			zap.String("code", code),
			zap.Error(err),
		)
		return model.StatsResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return model.StatsResponse{
		ShortCode:   string(mapping.ShortCode),
		OriginalURL: string(mapping.OriginalURL),
		CreatedAt:   mapping.CreatedAt,
		Clicks:      mapping.Clicks,
	}, nil
}
