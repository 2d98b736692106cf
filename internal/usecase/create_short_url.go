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

// CreateShortURL создает короткий URL из строки оригинального URL.
// Выполняет валидацию, очистку, дедупликацию и генерацию короткого кода
func (u *URLUsecase) CreateShortURL(ctx context.Context, urlString string) (model.ShortenResponse, error) {
	urlString = strings.TrimSpace(urlString)
	urlString = strings.Trim(urlString, `"'`)

	if urlString == "" {
		return model.ShortenResponse{}, ErrEmptyURL
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return model.ShortenResponse{}, ErrInvalidURL
	}

	code, err := u.shortenURL(ctx, model.URL(urlString))
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", urlString),
			zap.Error(err),
		)
		return model.ShortenResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(code))
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", string(code)),
			zap.Error(err),
		)
		return model.ShortenResponse{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return model.ShortenResponse{
		OriginalURL: urlString,
		ShortURL:    shortURL,
	}, nil
}

// shortenURL возвращает существующий код для URL или создает новый.
// Дедупликация нестрогая: между проверкой и вставкой другой запрос мог
// создать код для того же URL, тогда появятся две записи.
// Занятый код при вставке приводит к прозрачной повторной генерации
func (u *URLUsecase) shortenURL(ctx context.Context, originalURL model.URL) (model.Code, error) {
	code, found, err := u.repo.GetCodeByURL(ctx, originalURL)
	if err != nil {
		return "", err
	}
	if found {
		return code, nil
	}

	for attempt := 0; attempt < u.cfg.MaxGenerateAttempts; attempt++ {
		code, err := u.generator.GenerateUniqueCode(ctx, u.repo.Exists)
		if err != nil {
			return "", err
		}

		_, err = u.repo.CreateURL(ctx, code, originalURL)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, store.ErrCodeExists) {
			return "", err
		}
		// Код заняли между проверкой и вставкой, пробуем новый
	}

	return "", fmt.Errorf("after %d attempts: %w", u.cfg.MaxGenerateAttempts, service.ErrGeneratorExhausted)
}
