package repository

import (
	"context"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
)

func (r Repository) CreateURL(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error) {
	mapping, err := r.underlying.CreateURL(ctx, code, url)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to create URL: %w", err)
	}

	return mapping, nil
}
