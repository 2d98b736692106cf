package repository

import (
	"context"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
)

func (r Repository) GetURLByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := r.underlying.FindByCode(ctx, code)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get URL by code: %w", err)
	}

	return mapping, nil
}
