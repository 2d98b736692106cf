package repository

import (
	"context"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// Exists проверяет существование кода в хранилище
// Возвращает true если код существует, false если код свободен
// Возвращает ошибку только в случае проблем с хранилищем (не "not found")
func (r Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.CodeExists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}
