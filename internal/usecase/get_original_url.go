package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/store"
)

// GetOriginalURL возвращает оригинальный URL по короткому коду и засчитывает
// переход. Поиск и инкремент счётчика выполняются хранилищем как одна операция
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	shortCode := model.Code(code)

	// Попадание в кэш избавляет от чтения URL из хранилища,
	// но переход всё равно засчитывается атомарным инкрементом
	if originalURL, found := u.lookupCache(ctx, shortCode); found {
		if err := u.repo.AddClick(ctx, shortCode); err == nil {
			return originalURL.String(), nil
		}
	}

	originalURL, err := u.repo.ResolveURL(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}
		u.logger.Error("failed to resolve URL",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.storeCache(ctx, shortCode, originalURL)

	return originalURL.String(), nil
}

// lookupCache читает маппинг из кэша. Ошибки кэша логируются и не влияют
// на обработку запроса
func (u *URLUsecase) lookupCache(ctx context.Context, code model.Code) (model.URL, bool) {
	if u.cache == nil {
		return "", false
	}

	originalURL, found, err := u.cache.Get(ctx, code)
	if err != nil {
		u.logger.Warn("cache lookup failed",
			zap.String("code", string(code)),
			zap.Error(err),
		)
		return "", false
	}

	return originalURL, found
}

// storeCache сохраняет маппинг в кэш. Ошибки кэша логируются и не влияют
// на обработку запроса
func (u *URLUsecase) storeCache(ctx context.Context, code model.Code, url model.URL) {
	if u.cache == nil {
		return
	}

	if err := u.cache.Set(ctx, code, url); err != nil {
		u.logger.Warn("cache store failed",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}
}
