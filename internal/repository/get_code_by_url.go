package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/store"
)

// GetCodeByURL возвращает ранее выданный код для URL.
// Возвращает found=false, если URL ещё не сокращался
func (r Repository) GetCodeByURL(ctx context.Context, url model.URL) (model.Code, bool, error) {
	code, err := r.underlying.FindCodeByURL(ctx, url)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get code by URL: %w", err)
	}

	return code, true, nil
}
