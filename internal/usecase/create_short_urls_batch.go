package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/service"
	"github.com/nstepanov-dev/shortener/internal/store"
)

// MaxBatchSize ограничивает количество URL в одном батчевом запросе
const MaxBatchSize = 100

// CreateShortURLsBatch создает короткие URL для нескольких оригинальных URL.
// Валидация выполняется для каждого элемента, любой невалидный элемент
// отклоняет весь батч. Вставка новых записей выполняется одной операцией
func (u *URLUsecase) CreateShortURLsBatch(ctx context.Context, items []model.BatchShortenRequest) ([]model.BatchShortenResponse, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(items) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d items, limit is %d", ErrBatchTooLarge, len(items), MaxBatchSize)
	}

	originalURLs := make([]model.URL, len(items))

	// Валидируем и очищаем все URL
	for i, item := range items {
		urlString := strings.TrimSpace(item.OriginalURL)
		urlString = strings.Trim(urlString, `"'`)

		if urlString == "" {
			return nil, fmt.Errorf("%w: empty URL at index %d", ErrEmptyURL, i)
		}

		parsedURL, err := url.Parse(urlString)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid URL at index %d: %w", ErrInvalidURL, i, err)
		}

		if parsedURL.Scheme == "" {
			return nil, fmt.Errorf("%w: scheme is missing at index %d", ErrInvalidURL, i)
		}

		if parsedURL.Host == "" {
			return nil, fmt.Errorf("%w: host is missing at index %d", ErrInvalidURL, i)
		}

		originalURLs[i] = model.URL(urlString)
	}

	codes, err := u.shortenBatch(ctx, originalURLs)
	if err != nil {
		u.logger.Error("failed to create short URLs batch",
			zap.Int("count", len(items)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	// Формируем полные короткие URL
	responses := make([]model.BatchShortenResponse, len(items))
	for i, code := range codes {
		shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(code))
		if err != nil {
			u.logger.Error("failed to build short URL",
				zap.String("base_url", u.cfg.BaseURL.String()),
				zap.String("code", string(code)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
		}
		responses[i] = model.BatchShortenResponse{
			CorrelationID: items[i].CorrelationID,
			ShortURL:      shortURL,
		}
	}

	return responses, nil
}

// shortenBatch возвращает коды для всех URL батча: ранее выданные коды
// переиспользуются, для остальных генерируются новые.
// Повторы одного URL внутри батча получают один код
func (u *URLUsecase) shortenBatch(ctx context.Context, originalURLs []model.URL) ([]model.Code, error) {
	existing, err := u.resolver.ResolveExisting(ctx, originalURLs, u.repo.GetCodeByURL)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < u.cfg.MaxGenerateAttempts; attempt++ {
		codes := make([]model.Code, len(originalURLs))
		toInsert := make(map[model.Code]model.URL)
		seenInBatch := make(map[model.URL]model.Code)

		// Проверка занятости учитывает и хранилище, и коды этого же батча
		exists := func(ctx context.Context, code model.Code) (bool, error) {
			if _, taken := toInsert[code]; taken {
				return true, nil
			}
			return u.repo.Exists(ctx, code)
		}

		for i, originalURL := range originalURLs {
			if existing[i].Found {
				codes[i] = existing[i].Code
				continue
			}
			if code, ok := seenInBatch[originalURL]; ok {
				codes[i] = code
				continue
			}

			code, err := u.generator.GenerateUniqueCode(ctx, exists)
			if err != nil {
				return nil, err
			}
			codes[i] = code
			toInsert[code] = originalURL
			seenInBatch[originalURL] = code
		}

		if len(toInsert) == 0 {
			return codes, nil
		}

		err = u.repo.CreateURLsBatch(ctx, toInsert)
		if err == nil {
			return codes, nil
		}
		if !errors.Is(err, store.ErrCodeExists) {
			return nil, err
		}
		// Один из кодов заняли параллельно, собираем батч заново
	}

	return nil, fmt.Errorf("after %d attempts: %w", u.cfg.MaxGenerateAttempts, service.ErrGeneratorExhausted)
}
