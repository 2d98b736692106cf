package repository

import (
	"context"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// ResolveURL возвращает оригинальный URL и засчитывает переход.
// Хранилище выполняет поиск и инкремент одной операцией
func (r Repository) ResolveURL(ctx context.Context, code model.Code) (model.URL, error) {
	url, err := r.underlying.ResolveURL(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to resolve URL: %w", err)
	}

	return url, nil
}

// AddClick засчитывает переход без чтения URL
func (r Repository) AddClick(ctx context.Context, code model.Code) error {
	if err := r.underlying.AddClick(ctx, code); err != nil {
		return fmt.Errorf("failed to add click: %w", err)
	}

	return nil
}
