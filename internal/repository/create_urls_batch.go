package repository

import (
	"context"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
)

func (r Repository) CreateURLsBatch(ctx context.Context, urls map[model.Code]model.URL) error {
	if err := r.underlying.CreateBatch(ctx, urls); err != nil {
		return fmt.Errorf("failed to create URLs batch: %w", err)
	}

	return nil
}
